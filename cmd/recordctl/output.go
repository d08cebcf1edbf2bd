package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fulldump/recordlist/listing"
)

const maxCellWidth = 48

func truncate(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}

func wantsJSON(cmd *cobra.Command) bool {
	j, _ := cmd.Flags().GetBool("json")
	return j
}

func printJSON(w io.Writer, v any) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}

func printPage(cmd *cobra.Command, page *listing.Page) error {

	w := cmd.OutOrStdout()
	if wantsJSON(cmd) {
		return printJSON(w, page)
	}

	if len(page.Records) == 0 {
		fmt.Fprintln(w, "no records")
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tAUTHOR\tTITLE\tBODY")
		for _, r := range page.Records {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", r.ID, r.AuthorID, truncate(r.Title, maxCellWidth), truncate(r.Body, maxCellWidth))
		}
		tw.Flush()
	}

	p := page.Pagination
	fmt.Fprintf(w, "Page %d of %d (%d total)\n", p.CurrentPage, p.TotalPages, p.TotalItems)

	return nil
}

func printRecord(cmd *cobra.Command, r *listing.Record) error {

	w := cmd.OutOrStdout()
	if wantsJSON(cmd) {
		return printJSON(w, r)
	}

	fmt.Fprintf(w, "id:     %d\nauthor: %d\ntitle:  %s\n\n%s\n", r.ID, r.AuthorID, r.Title, r.Body)
	return nil
}
