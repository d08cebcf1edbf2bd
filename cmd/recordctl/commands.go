package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fulldump/recordlist/listing"
)

func pageCommand(use, short, method, path string, body func(cmd *cobra.Command, args []string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload any
			if body != nil {
				var err error
				payload, err = body(cmd, args)
				if err != nil {
					return err
				}
			}

			page := &listing.Page{}
			err := newAPIClient(cmd).do(cmd.Context(), method, path, payload, page)
			if err != nil {
				return err
			}
			return printPage(cmd, page)
		},
	}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("bad record id '%s'", arg)
	}
	return id, nil
}

var listCmd = pageCommand("list", "Show the current page", "GET", "/records", nil)

var nextCmd = pageCommand("next", "Go to the next page", "POST", "/records:nextPage", nil)

var prevCmd = pageCommand("prev", "Go to the previous page", "POST", "/records:previousPage", nil)

var loadCmd = pageCommand("load", "Reload every record from the source", "POST", "/records:load", nil)

var searchCmd = func() *cobra.Command {
	cmd := pageCommand("search [query]", "Filter records by title or body", "POST", "/records:search",
		func(cmd *cobra.Command, args []string) (any, error) {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return map[string]any{"query": query}, nil
		})
	cmd.Args = cobra.MaximumNArgs(1)
	return cmd
}()

var sortCmd = func() *cobra.Command {
	cmd := pageCommand("sort <field>", "Sort records by id, title, body or authorId", "POST", "/records:sort",
		func(cmd *cobra.Command, args []string) (any, error) {
			desc, _ := cmd.Flags().GetBool("desc")
			order := listing.Ascending
			if desc {
				order = listing.Descending
			}
			return map[string]any{"field": args[0], "order": order}, nil
		})
	cmd.Args = cobra.ExactArgs(1)
	cmd.Flags().Bool("desc", false, "sort in descending order")
	return cmd
}()

var pageSizeCmd = func() *cobra.Command {
	cmd := pageCommand("page-size <n>", "Change the number of records per page", "POST", "/records:pageSize",
		func(cmd *cobra.Command, args []string) (any, error) {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("bad page size '%s'", args[0])
			}
			return map[string]any{"pageSize": n}, nil
		})
	cmd.Args = cobra.ExactArgs(1)
	return cmd
}()

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		r := &listing.Record{}
		err = newAPIClient(cmd).do(cmd.Context(), "GET", fmt.Sprintf("/records/%d", id), nil, r)
		if err != nil {
			return err
		}
		return printRecord(cmd, r)
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a record",
	Long: `Create a record.

Examples:
  recordctl add --title "Hello" --body "A body with enough text"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		body, _ := cmd.Flags().GetString("body")

		r := &listing.Record{}
		err := newAPIClient(cmd).do(cmd.Context(), "POST", "/records", map[string]any{
			"title": title,
			"body":  body,
		}, r)
		if err != nil {
			return err
		}
		return printRecord(cmd, r)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace title and body of a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		c := newAPIClient(cmd)

		current := &listing.Record{}
		err = c.do(cmd.Context(), "GET", fmt.Sprintf("/records/%d", id), nil, current)
		if err != nil {
			return err
		}

		title, body := current.Title, current.Body
		if cmd.Flags().Changed("title") {
			title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("body") {
			body, _ = cmd.Flags().GetString("body")
		}

		r := &listing.Record{}
		err = c.do(cmd.Context(), "PATCH", fmt.Sprintf("/records/%d", id), map[string]any{
			"title": title,
			"body":  body,
		}, r)
		if err != nil {
			return err
		}
		return printRecord(cmd, r)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		page := &listing.Page{}
		err = newAPIClient(cmd).do(cmd.Context(), "DELETE", fmt.Sprintf("/records/%d", id), nil, page)
		if err != nil {
			return err
		}
		return printPage(cmd, page)
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show search, sorting and paging settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := map[string]any{}
		err := newAPIClient(cmd).do(cmd.Context(), "GET", "/settings", nil, &settings)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), settings)
	},
}

func init() {
	addCmd.Flags().String("title", "", "record title (at least 3 characters)")
	addCmd.Flags().String("body", "", "record body (at least 10 characters)")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("body")

	updateCmd.Flags().String("title", "", "new title")
	updateCmd.Flags().String("body", "", "new body")
}
