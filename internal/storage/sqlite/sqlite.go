package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dleamy/daila/internal/activity"
	"github.com/dleamy/daila/internal/calendar"
	"github.com/dleamy/daila/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
)

// DBFile is the database file name inside the data directory.
const DBFile = "daila.db"

// Store implements storage.Store using SQLite via Turso/libSQL.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database in dataDir.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, DBFile)
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// The pragma answers with the resulting mode, so it has to be read as a row.
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode=WAL").Scan(&mode); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// schema is applied one statement at a time; libSQL runs only the first
// statement of a multi-statement Exec.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS activity_types (
		id   INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		seq         INTEGER PRIMARY KEY,
		activity_id INTEGER NOT NULL,
		day         INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_day ON activities(day, seq)`,
}

func createSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
		}
	}
	return nil
}

// Days are stored as YYYYMMDD integers. The driver turns date-like TEXT into
// timestamps, and integers sort the same way the dates do.
func dayKey(d calendar.Date) int64 {
	return int64(d.Year)*10000 + int64(d.Month)*100 + int64(d.Day)
}

func keyDay(k int64) (calendar.Date, error) {
	y, m, d := int(k/10000), time.Month(k/100%100), int(k%100)
	date := calendar.New(y, m, d)
	if date.Year != y || date.Month != m || date.Day != d {
		return calendar.Date{}, fmt.Errorf("invalid day %d", k)
	}
	return date, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the registry and the log. Records of a day come back in the
// order they were saved.
func (s *Store) Load() (*activity.Registry, *activity.Log, error) {
	reg := activity.NewRegistry()
	rows, err := s.db.Query("SELECT id, name FROM activity_types ORDER BY id")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: listing activity types: %v", storage.ErrStorage, err)
	}
	defer rows.Close()
	for rows.Next() {
		var t activity.Type
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, nil, fmt.Errorf("%w: scanning activity type: %v", storage.ErrStorage, err)
		}
		reg.Put(t)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: listing activity types: %v", storage.ErrStorage, err)
	}

	log := activity.NewLog()
	recs, err := s.db.Query("SELECT activity_id, day FROM activities ORDER BY day, seq")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: listing activities: %v", storage.ErrStorage, err)
	}
	defer recs.Close()
	for recs.Next() {
		var id activity.ID
		var key int64
		if err := recs.Scan(&id, &key); err != nil {
			return nil, nil, fmt.Errorf("%w: scanning activity: %v", storage.ErrStorage, err)
		}
		date, err := keyDay(key)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", storage.ErrStorage, err)
		}
		log.Add(activity.Record{TypeID: id, Date: date})
	}
	if err := recs.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: listing activities: %v", storage.ErrStorage, err)
	}

	return reg, log, nil
}

// Save replaces the stored registry and log in a single transaction.
func (s *Store) Save(reg *activity.Registry, log *activity.Log) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", storage.ErrStorage, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM activity_types"); err != nil {
		return fmt.Errorf("%w: clearing activity types: %v", storage.ErrStorage, err)
	}
	if _, err := tx.Exec("DELETE FROM activities"); err != nil {
		return fmt.Errorf("%w: clearing activities: %v", storage.ErrStorage, err)
	}

	for _, t := range reg.List() {
		if _, err := tx.Exec(
			"INSERT INTO activity_types (id, name) VALUES (?, ?)",
			int64(t.ID), t.Name,
		); err != nil {
			return fmt.Errorf("%w: inserting activity type: %v", storage.ErrStorage, err)
		}
	}

	seq := 0
	for _, date := range log.Dates() {
		for _, r := range log.Day(date) {
			if _, err := tx.Exec(
				"INSERT INTO activities (seq, activity_id, day) VALUES (?, ?, ?)",
				seq, int64(r.TypeID), dayKey(date),
			); err != nil {
				return fmt.Errorf("%w: inserting activity: %v", storage.ErrStorage, err)
			}
			seq++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", storage.ErrStorage, err)
	}
	return nil
}
