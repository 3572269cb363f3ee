// Package activity holds the activity-day domain: named activity types and
// the log of days on which each type was completed.
package activity

import (
	"errors"
	"strings"

	"github.com/dleamy/daila/internal/calendar"
)

// ErrEmptyName is returned by ValidateName for blank names.
var ErrEmptyName = errors.New("activity name is empty")

// ID identifies an activity type. IDs are small, stable across save/load and
// reused after deletion (see Registry.Create).
type ID uint32

// Type is a named category of daily action.
type Type struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Record asserts that the activity TypeID was completed on Date.
type Record struct {
	TypeID ID            `json:"activity_id"`
	Date   calendar.Date `json:"date"`
}

// HeatMapDate implements heatmap.Value.
func (r Record) HeatMapDate() calendar.Date { return r.Date }

// HeatMapValue implements heatmap.Value. Completion is binary.
func (r Record) HeatMapValue() float32 { return 1.0 }

// ValidateName checks that an activity name is non-blank.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Option pairs an activity type with its completion state on one date. It is
// what the selector displays.
type Option struct {
	Type      Type
	Completed bool
}

// Options returns one option per registered type, ascending by id, with the
// completion state on date.
func Options(reg *Registry, log *Log, date calendar.Date) []Option {
	types := reg.List()
	options := make([]Option, len(types))
	for i, t := range types {
		options[i] = Option{Type: t, Completed: log.CompletedOn(date, t.ID)}
	}
	return options
}
