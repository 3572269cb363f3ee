package activity

import (
	"encoding/json"
	"sort"

	"github.com/dleamy/daila/internal/calendar"
)

// Log groups completion records by date. Within a day, records keep their
// insertion order. Duplicates read from disk are preserved.
type Log struct {
	days map[calendar.Date][]Record
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{days: make(map[calendar.Date][]Record)}
}

// Add appends rec to its day.
func (l *Log) Add(rec Record) {
	l.days[rec.Date] = append(l.days[rec.Date], rec)
}

// Remove deletes every record on rec.Date with rec.TypeID. A day left with no
// records is dropped from the log.
func (l *Log) Remove(rec Record) {
	day, ok := l.days[rec.Date]
	if !ok {
		return
	}
	kept := day[:0]
	for _, r := range day {
		if r.TypeID != rec.TypeID {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		delete(l.days, rec.Date)
		return
	}
	l.days[rec.Date] = kept
}

// CompletedOn reports whether any record on date has the given type.
func (l *Log) CompletedOn(date calendar.Date, id ID) bool {
	for _, r := range l.days[date] {
		if r.TypeID == id {
			return true
		}
	}
	return false
}

// Toggle flips the completion of id on date and returns the new state.
func (l *Log) Toggle(id ID, date calendar.Date) bool {
	rec := Record{TypeID: id, Date: date}
	if l.CompletedOn(date, id) {
		l.Remove(rec)
		return false
	}
	l.Add(rec)
	return true
}

// RecordsOfType returns every record of the given type, ascending by date.
func (l *Log) RecordsOfType(id ID) []Record {
	var out []Record
	for _, date := range l.Dates() {
		for _, r := range l.days[date] {
			if r.TypeID == id {
				out = append(out, r)
			}
		}
	}
	return out
}

// Day returns a copy of the records on date in stored order.
func (l *Log) Day(date calendar.Date) []Record {
	day := l.days[date]
	if len(day) == 0 {
		return nil
	}
	out := make([]Record, len(day))
	copy(out, day)
	return out
}

// Dates returns the dates holding at least one record, ascending.
func (l *Log) Dates() []calendar.Date {
	dates := make([]calendar.Date, 0, len(l.days))
	for d := range l.days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Len returns the total number of records.
func (l *Log) Len() int {
	n := 0
	for _, day := range l.days {
		n += len(day)
	}
	return n
}

// Orphans returns the records whose type is not registered, ascending by
// date.
func (l *Log) Orphans(reg *Registry) []Record {
	var out []Record
	for _, date := range l.Dates() {
		for _, r := range l.days[date] {
			if !reg.Has(r.TypeID) {
				out = append(out, r)
			}
		}
	}
	return out
}

// PurgeOrphans removes records whose type is not registered and returns how
// many were removed. Records are matched under the day they are filed in,
// which for legacy data may differ from their own date.
func (l *Log) PurgeOrphans(reg *Registry) int {
	removed := 0
	for date, day := range l.days {
		kept := day[:0]
		for _, r := range day {
			if reg.Has(r.TypeID) {
				kept = append(kept, r)
			}
		}
		removed += len(day) - len(kept)
		if len(kept) == 0 {
			delete(l.days, date)
			continue
		}
		l.days[date] = kept
	}
	return removed
}

// MarshalJSON encodes the log as {"YYYY-MM-DD": [records...]}.
func (l *Log) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.days)
}

// UnmarshalJSON decodes the log document without deduplicating.
func (l *Log) UnmarshalJSON(data []byte) error {
	var days map[calendar.Date][]Record
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	if days == nil {
		days = make(map[calendar.Date][]Record)
	}
	l.days = days
	return nil
}
