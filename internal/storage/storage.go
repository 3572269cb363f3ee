package storage

import (
	"errors"

	"github.com/dleamy/daila/internal/activity"
)

// Sentinel errors for storage operations.
var (
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

// Backend names accepted by the "storage" config key.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Store persists the activity registry and log.
//
// Load returns empty values when nothing has been saved yet. Save replaces
// the stored state with reg and log as a whole.
type Store interface {
	Load() (*activity.Registry, *activity.Log, error)
	Save(reg *activity.Registry, log *activity.Log) error
	Close() error
}
