package activity

import "github.com/dleamy/daila/internal/calendar"

// Stats summarizes the completion history of one activity type.
type Stats struct {
	Type          Type
	Total         int
	CompletedOn   bool
	CurrentStreak int
	LongestStreak int
	Last          calendar.Date
}

// ComputeStats builds Stats for t as of date.
func ComputeStats(log *Log, t Type, date calendar.Date) Stats {
	days := completionSet(log, t.ID)
	s := Stats{
		Type:          t,
		Total:         len(days),
		CompletedOn:   days[date],
		CurrentStreak: streakEndingOn(days, date),
		LongestStreak: longestStreak(log, t.ID),
	}
	for d := range days {
		if d.After(s.Last) {
			s.Last = d
		}
	}
	return s
}

// CurrentStreak counts consecutive completed days going back from date.
// It is zero when date itself is not completed.
func CurrentStreak(log *Log, id ID, date calendar.Date) int {
	return streakEndingOn(completionSet(log, id), date)
}

// LongestStreak returns the longest run of consecutive completed days.
func LongestStreak(log *Log, id ID) int {
	return longestStreak(log, id)
}

// CompletionsBetween counts the distinct days in [from, to] on which id was
// completed.
func CompletionsBetween(log *Log, id ID, from, to calendar.Date) int {
	n := 0
	for d := range completionSet(log, id) {
		if !d.Before(from) && !d.After(to) {
			n++
		}
	}
	return n
}

func completionSet(log *Log, id ID) map[calendar.Date]bool {
	set := make(map[calendar.Date]bool)
	for _, r := range log.RecordsOfType(id) {
		set[r.Date] = true
	}
	return set
}

func streakEndingOn(days map[calendar.Date]bool, date calendar.Date) int {
	streak := 0
	for check := date; days[check]; check = check.Prev() {
		streak++
	}
	return streak
}

func longestStreak(log *Log, id ID) int {
	longest, run := 0, 0
	var prev calendar.Date
	for _, r := range log.RecordsOfType(id) {
		switch {
		case run > 0 && r.Date == prev:
			continue
		case run > 0 && r.Date == prev.Next():
			run++
		default:
			run = 1
		}
		prev = r.Date
		if run > longest {
			longest = run
		}
	}
	return longest
}
