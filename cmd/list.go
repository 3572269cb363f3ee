package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dleamy/daila/internal/activity"
	"github.com/dleamy/daila/internal/calendar"
	"github.com/dleamy/daila/internal/ui"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities",
	Long:  "List activity types in id order with their completion totals and longest streaks.",
	Example: `  daila list
  daila list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(os.Stdout, listJSON)
	},
}

func listRun(w io.Writer, asJSON bool) error {
	reg, log, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}

	today := calendar.FromTime(now())
	types := reg.List()
	stats := make([]activity.Stats, len(types))
	for i, t := range types {
		stats[i] = activity.ComputeStats(log, t, today)
	}
	summaries := ui.ToSummaries(stats)

	if asJSON {
		return ui.FormatJSON(w, summaries)
	}
	var buf bytes.Buffer
	ui.FormatActivityList(&buf, summaries)
	return ui.OutputOrPage(w, buf.String(), ui.ResolveTheme(appConfig.Theme))
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(listCmd)
}
