// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubfetch/internal/export"
	"github.com/pdiddy/pubfetch/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List fetch runs archived with --db",
	Long: `History lists the runs archived in a SQLite database by previous
invocations with --db. Use --run to print the papers of one run in the
same table format as a live fetch.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if runID, _ := cmd.Flags().GetInt64("run"); runID > 0 {
		records, err := st.Papers(cmd.Context(), runID)
		if err != nil {
			return err
		}
		export.FormatTable(records, os.Stdout)
		return nil
	}

	runs, err := st.Runs(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No archived runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-40s  %-22s  %s\n", "Run", "Query", "Archived", "Papers")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))
	for _, r := range runs {
		query := r.Query
		if len(query) > 40 {
			query = query[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-6d  %-40s  %-22s  %d\n", r.ID, query, r.CreatedAt, r.Papers)
	}
	return nil
}

func init() {
	historyCmd.Flags().String("db", "pubfetch.db", "path to the SQLite archive database")
	historyCmd.Flags().Int64("run", 0, "print the papers of this run ID")

	rootCmd.AddCommand(historyCmd)
}
