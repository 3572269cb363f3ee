package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dleamy/daila/internal/calendar"
	"github.com/dleamy/daila/internal/ui"
)

var (
	reportYear int
	reportRaw  bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a yearly activity report",
	Long: `Show per-activity completion totals, streaks and monthly counts for a year.

The report is rendered as markdown and paged when it does not fit the
terminal. Use --raw to print the markdown source.`,
	Example: `  daila report
  daila report --year 2024
  daila report --raw > report.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportRun(os.Stdout, reportYear, reportRaw)
	},
}

func reportRun(w io.Writer, year int, raw bool) error {
	reg, log, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}

	today := calendar.FromTime(now())
	if year == 0 {
		year = today.Year
	}
	md := ui.BuildYearReport(reg, log, year, today)
	if raw {
		_, err := io.WriteString(w, md)
		return err
	}

	theme := ui.ResolveTheme(appConfig.Theme)
	rendered := ui.RenderMarkdownWithStyle(md, reportWidth(), theme.MarkdownStyle)
	return ui.OutputOrPage(w, rendered+"\n", theme)
}

// reportWidth is the terminal width capped to the pager width.
func reportWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return ui.DefaultPagerWidth
	}
	return min(width, ui.DefaultPagerWidth)
}

func init() {
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "year to report (default current year)")
	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "print the markdown source")
	rootCmd.AddCommand(reportCmd)
}
