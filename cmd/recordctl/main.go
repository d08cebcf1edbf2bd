package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "recordctl",
	Short:         "Browse and edit the records served by recordlist",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("addr", "http://127.0.0.1:8080", "recordlist base URL")
	rootCmd.PersistentFlags().String("api-key", os.Getenv("RECORDLIST_API_KEY"), "API key")
	rootCmd.PersistentFlags().String("api-secret", os.Getenv("RECORDLIST_API_SECRET"), "API secret")
	rootCmd.PersistentFlags().Bool("json", false, "print raw JSON")

	rootCmd.AddCommand(
		listCmd,
		searchCmd,
		sortCmd,
		pageSizeCmd,
		nextCmd,
		prevCmd,
		getCmd,
		addCmd,
		updateCmd,
		deleteCmd,
		loadCmd,
		settingsCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
