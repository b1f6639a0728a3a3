// Copyright Daniel Amado, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TDanyStark/pdf-to-pptx/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversion jobs",
	Long: `History lists conversions recorded by previous runs, newest first,
with their outcome and output location.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of jobs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.Open(historyConfig().Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tSTATE\tPAGES\tINPUT\tOUTPUT")
	for _, r := range records {
		out := r.PPTXPath
		if out == "" {
			out = r.Error
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			r.FinishedAt.Local().Format("2006-01-02 15:04"),
			r.State, r.Pages, filepath.Base(r.InputPath), out)
	}
	return w.Flush()
}
