package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dleamy/daila/internal/activity"
	"github.com/dleamy/daila/internal/calendar"
)

const (
	statusDone    = "✅"
	statusPending = "―"
)

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ActivityStatus is one activity's state on the status date.
type ActivityStatus struct {
	ID            activity.ID `json:"id"`
	Name          string      `json:"name"`
	Done          bool        `json:"done"`
	Streak        int         `json:"streak"`
	LongestStreak int         `json:"longest_streak"`
	Total         int         `json:"total"`
}

// StatusReport summarizes every activity for one date.
type StatusReport struct {
	Date       calendar.Date    `json:"date"`
	Done       int              `json:"done"`
	Total      int              `json:"total"`
	Streak     int              `json:"streak"`
	Activities []ActivityStatus `json:"activities"`
}

// BuildStatus computes the status report for date. Streak is the best
// current streak across activities.
func BuildStatus(reg *activity.Registry, log *activity.Log, date calendar.Date) StatusReport {
	types := reg.List()
	report := StatusReport{
		Date:       date,
		Total:      len(types),
		Activities: make([]ActivityStatus, 0, len(types)),
	}
	for _, t := range types {
		s := activity.ComputeStats(log, t, date)
		if s.CompletedOn {
			report.Done++
		}
		report.Streak = max(report.Streak, s.CurrentStreak)
		report.Activities = append(report.Activities, ActivityStatus{
			ID:            t.ID,
			Name:          t.Name,
			Done:          s.CompletedOn,
			Streak:        s.CurrentStreak,
			LongestStreak: s.LongestStreak,
			Total:         s.Total,
		})
	}
	return report
}

// FormatStatus writes the status report as plain text.
func FormatStatus(w io.Writer, r StatusReport) {
	fmt.Fprintf(w, "%s  %d/%d done\n", r.Date.Format("Monday, 2 January 2006"), r.Done, r.Total)
	if len(r.Activities) == 0 {
		fmt.Fprintln(w, "No activities found.")
		return
	}
	width := 0
	for _, a := range r.Activities {
		width = max(width, len([]rune(a.Name)))
	}
	for _, a := range r.Activities {
		mark := statusPending
		if a.Done {
			mark = statusDone
		}
		line := fmt.Sprintf("%s %-*s", mark, width, a.Name)
		if a.Streak > 0 {
			line += fmt.Sprintf("  streak %d", a.Streak)
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// ActivitySummary is the list representation of an activity type.
type ActivitySummary struct {
	ID            activity.ID `json:"id"`
	Name          string      `json:"name"`
	Total         int         `json:"total"`
	LongestStreak int         `json:"longest_streak"`
	Last          string      `json:"last,omitempty"`
}

// ToSummaries converts stats to the list representation.
func ToSummaries(stats []activity.Stats) []ActivitySummary {
	out := make([]ActivitySummary, len(stats))
	for i, s := range stats {
		out[i] = ActivitySummary{
			ID:            s.Type.ID,
			Name:          s.Type.Name,
			Total:         s.Total,
			LongestStreak: s.LongestStreak,
		}
		if !s.Last.IsZero() {
			out[i].Last = s.Last.String()
		}
	}
	return out
}

// FormatActivityList formats activity types as a table.
func FormatActivityList(w io.Writer, summaries []ActivitySummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No activities found.")
		return
	}
	for _, s := range summaries {
		last := s.Last
		if last == "" {
			last = "never"
		}
		fmt.Fprintf(w, "%3d  %s  total %d  longest %d  last %s\n",
			s.ID, s.Name, s.Total, s.LongestStreak, last)
	}
}

// FormatPurged reports how many orphan records were removed.
func FormatPurged(w io.Writer, n int) {
	switch n {
	case 0:
		fmt.Fprintln(w, "No orphan records found.")
	case 1:
		fmt.Fprintln(w, "Removed 1 orphan record.")
	default:
		fmt.Fprintf(w, "Removed %d orphan records.\n", n)
	}
}

// BuildYearReport renders a markdown summary of year. today bounds the
// current streak column.
func BuildYearReport(reg *activity.Registry, log *activity.Log, year int, today calendar.Date) string {
	from, to := calendar.YearRange(year)
	var b strings.Builder
	fmt.Fprintf(&b, "# Activity report %d\n\n", year)

	types := reg.List()
	if len(types) == 0 {
		b.WriteString("No activities found.\n")
		return b.String()
	}

	b.WriteString("| Activity | Days | Longest streak | Current streak |\n")
	b.WriteString("|---|---:|---:|---:|\n")
	for _, t := range types {
		s := activity.ComputeStats(log, t, today)
		fmt.Fprintf(&b, "| %s | %d | %d | %d |\n",
			escapeCell(t.Name),
			activity.CompletionsBetween(log, t.ID, from, to),
			s.LongestStreak,
			s.CurrentStreak,
		)
	}

	for _, t := range types {
		fmt.Fprintf(&b, "\n## %s\n\n", t.Name)
		b.WriteString("| Month | Days |\n|---|---:|\n")
		for m := time.January; m <= time.December; m++ {
			start := calendar.New(year, m, 1)
			end := calendar.New(year, m+1, 1).Prev()
			fmt.Fprintf(&b, "| %s | %d |\n", m.String()[:3], activity.CompletionsBetween(log, t.ID, start, end))
		}
	}

	if n := len(log.Orphans(reg)); n > 0 {
		fmt.Fprintf(&b, "\n> %d records belong to deleted activities. Run `daila purge` to remove them.\n", n)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
