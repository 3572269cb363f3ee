package cmd

import (
	"fmt"
	"io"
	"os"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/dleamy/daila/internal/calendar"
	"github.com/dleamy/daila/internal/shell"
	"github.com/dleamy/daila/internal/ui"
)

// now is swapped out by tests.
var now = time.Now

// statusData holds the template data for status formatting.
type statusData struct {
	Date       string
	Done       int
	Total      int
	Streak     int
	Icon       string
	StreakIcon string
	Backend    string
	Activities []ui.ActivityStatus
}

type statusOptions struct {
	date    string
	json    bool
	env     bool
	refresh bool
	format  string
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's activity status",
	Long: `Show which activities are done for a day, with current streaks.

Use --env to output shell environment variable assignments for prompt
integration. The --env output is cached for shell.cache_ttl; use --refresh
to force a recomputation.
Use --format with a Go template for custom output.`,
	Example: `  daila status
  daila status --date 2024-06-01
  daila status --json
  daila status --env
  daila status --format "{{.Done}}/{{.Total}} {{.Streak}}{{.StreakIcon}}"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts statusOptions
		opts.date, _ = cmd.Flags().GetString("date")
		opts.json, _ = cmd.Flags().GetBool("json")
		opts.env, _ = cmd.Flags().GetBool("env")
		opts.refresh, _ = cmd.Flags().GetBool("refresh")
		opts.format, _ = cmd.Flags().GetString("format")
		return statusRun(os.Stdout, opts)
	},
}

func statusRun(w io.Writer, opts statusOptions) error {
	date := calendar.FromTime(now())
	if opts.date != "" {
		d, err := calendar.Parse(opts.date)
		if err != nil {
			return err
		}
		date = d
	}

	if opts.env {
		cache, err := promptCache(opts.refresh)
		if err != nil {
			return err
		}
		return outputEnv(w, cache)
	}

	reg, log, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading activities: %w", err)
	}
	report := ui.BuildStatus(reg, log, date)

	switch {
	case opts.json:
		return ui.FormatJSON(w, report)
	case opts.format != "":
		return outputTemplate(w, buildStatusData(report), opts.format)
	}
	ui.FormatStatus(w, report)
	return nil
}

// promptCache returns today's prompt status, recomputing it when the cache
// is stale.
func promptCache(refresh bool) (*shell.PromptCache, error) {
	ttl, err := time.ParseDuration(appConfig.Shell.CacheTTL)
	if err != nil {
		ttl = 5 * time.Minute
	}

	t := now()
	cache := shell.ReadCache(appConfig.DataDir)
	if !refresh && cache.IsFresh(t, ttl) {
		return cache, nil
	}

	reg, log, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	report := ui.BuildStatus(reg, log, calendar.FromTime(t))
	cache = &shell.PromptCache{
		Date:      report.Date,
		Done:      report.Done,
		Total:     report.Total,
		Streak:    report.Streak,
		Backend:   appConfig.Storage,
		UpdatedAt: t,
	}
	if err := shell.WriteCache(appConfig.DataDir, cache); err != nil {
		// A missing cache only slows the next prompt down.
		fmt.Fprintln(os.Stderr, "Warning: could not write cache:", err)
	}
	return cache, nil
}

func buildStatusData(r ui.StatusReport) statusData {
	return statusData{
		Date:       r.Date.String(),
		Done:       r.Done,
		Total:      r.Total,
		Streak:     r.Streak,
		Icon:       statusIcon(r.Done, r.Total),
		StreakIcon: appConfig.Shell.StreakIcon,
		Backend:    appConfig.Storage,
		Activities: r.Activities,
	}
}

// statusIcon is the done icon once every activity is done.
func statusIcon(done, total int) string {
	if total > 0 && done == total {
		return appConfig.Shell.DoneIcon
	}
	return appConfig.Shell.PendingIcon
}

func outputEnv(w io.Writer, c *shell.PromptCache) error {
	fmt.Fprintf(w, "export DAILA_ICON=%q\n", statusIcon(c.Done, c.Total))
	fmt.Fprintf(w, "export DAILA_DONE=%q\n", fmt.Sprint(c.Done))
	fmt.Fprintf(w, "export DAILA_TOTAL=%q\n", fmt.Sprint(c.Total))
	fmt.Fprintf(w, "export DAILA_STREAK=%q\n", fmt.Sprint(c.Streak))
	fmt.Fprintf(w, "export DAILA_STREAK_ICON=%q\n", appConfig.Shell.StreakIcon)
	if c.Backend != "" {
		fmt.Fprintf(w, "export DAILA_BACKEND=%q\n", c.Backend)
	}
	return nil
}

func outputTemplate(w io.Writer, data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing format template: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

func init() {
	statusCmd.Flags().String("date", "", "day to report (YYYY-MM-DD, default today)")
	statusCmd.Flags().Bool("json", false, "output in JSON format")
	statusCmd.Flags().Bool("env", false, "output shell environment variable assignments")
	statusCmd.Flags().Bool("refresh", false, "force prompt cache refresh")
	statusCmd.Flags().String("format", "", "Go template format string")
	rootCmd.AddCommand(statusCmd)
}
