package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/dleamy/daila/internal/activity"
	"github.com/dleamy/daila/internal/calendar"
	"github.com/dleamy/daila/internal/storage"
	"github.com/dleamy/daila/internal/storage/jsonfile"
	"github.com/dleamy/daila/internal/storage/sqlite"
)

type storageFactory func(t *testing.T, dir string) storage.Store

func jsonFactory(t *testing.T, dir string) storage.Store {
	t.Helper()
	s, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("creating json storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sqliteFactory(t *testing.T, dir string) storage.Store {
	t.Helper()
	s, err := sqlite.New(dir)
	if err != nil {
		t.Fatalf("creating sqlite storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func date(y int, m time.Month, d int) calendar.Date { return calendar.New(y, m, d) }

func sampleState() (*activity.Registry, *activity.Log) {
	reg := activity.NewRegistry()
	reg.Put(activity.Type{ID: 0, Name: "Meditate"})
	reg.Put(activity.Type{ID: 2, Name: "🏃 Run"})

	log := activity.NewLog()
	log.Add(activity.Record{TypeID: 0, Date: date(2024, time.March, 14)})
	log.Add(activity.Record{TypeID: 2, Date: date(2024, time.March, 15)})
	log.Add(activity.Record{TypeID: 0, Date: date(2024, time.March, 15)})
	log.Add(activity.Record{TypeID: 0, Date: date(2024, time.March, 15)})
	// orphan
	log.Add(activity.Record{TypeID: 9, Date: date(2023, time.December, 31)})
	return reg, log
}

func runContractTests(t *testing.T, name string, factory storageFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Load empty", func(t *testing.T) {
			s := factory(t, filepath.Join(t.TempDir(), "data"))
			reg, log, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if reg.Count() != 0 || log.Len() != 0 {
				t.Errorf("expected empty state, got %d types and %d records", reg.Count(), log.Len())
			}
		})

		t.Run("Save then Load is identity", func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "nested", "data")
			s := factory(t, dir)
			reg, log := sampleState()
			if err := s.Save(reg, log); err != nil {
				t.Fatalf("Save: %v", err)
			}

			gotReg, gotLog, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(gotReg.List(), reg.List()) {
				t.Errorf("registry = %v, want %v", gotReg.List(), reg.List())
			}
			if !reflect.DeepEqual(gotLog.Dates(), log.Dates()) {
				t.Fatalf("dates = %v, want %v", gotLog.Dates(), log.Dates())
			}
			for _, d := range log.Dates() {
				if !reflect.DeepEqual(gotLog.Day(d), log.Day(d)) {
					t.Errorf("day %s = %v, want %v", d, gotLog.Day(d), log.Day(d))
				}
			}
		})

		t.Run("Save replaces previous state", func(t *testing.T) {
			s := factory(t, t.TempDir())
			reg, log := sampleState()
			if err := s.Save(reg, log); err != nil {
				t.Fatalf("Save: %v", err)
			}
			reg.Delete(2)
			log.Toggle(0, date(2024, time.March, 14))
			if err := s.Save(reg, log); err != nil {
				t.Fatalf("second Save: %v", err)
			}
			gotReg, gotLog, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if gotReg.Count() != 1 {
				t.Errorf("Count = %d, want 1", gotReg.Count())
			}
			if gotLog.CompletedOn(date(2024, time.March, 14), 0) {
				t.Error("toggled-off record came back")
			}
			if gotLog.Len() != log.Len() {
				t.Errorf("Len = %d, want %d", gotLog.Len(), log.Len())
			}
		})

		t.Run("Orphans survive round trip", func(t *testing.T) {
			s := factory(t, t.TempDir())
			reg, log := sampleState()
			if err := s.Save(reg, log); err != nil {
				t.Fatalf("Save: %v", err)
			}
			gotReg, gotLog, err := s.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if n := len(gotLog.Orphans(gotReg)); n != 1 {
				t.Errorf("Orphans = %d, want 1", n)
			}
		})
	})
}

func TestStorageContract(t *testing.T) {
	runContractTests(t, "json", jsonFactory)
	runContractTests(t, "sqlite", sqliteFactory)
}

func TestJSONFileFormat(t *testing.T) {
	dir := t.TempDir()
	types := `{ "0": {"id": 0, "name": "Meditate"},
  "2": {"id": 2, "name": "Run", "icon": "x"} }`
	records := `{ "2024-03-14": [ {"activity_id": 0, "date": "2024-03-14"} ],
  "2024-03-15": [ {"activity_id": 0, "date": "2024-03-15"},
                  {"activity_id": 2, "date": "2024-03-15"} ] }`
	writeFile(t, filepath.Join(dir, jsonfile.TypesFile), types)
	writeFile(t, filepath.Join(dir, jsonfile.RecordsFile), records)

	s := jsonFactory(t, dir)
	reg, log, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if typ, ok := reg.Get(2); !ok || typ.Name != "Run" {
		t.Errorf("Get(2) = %v, %v", typ, ok)
	}
	if !log.CompletedOn(date(2024, time.March, 15), 2) {
		t.Error("expected completion of 2 on 2024-03-15")
	}
	if log.Len() != 3 {
		t.Errorf("Len = %d, want 3", log.Len())
	}
}

func TestJSONOnlyOneFilePresent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, jsonfile.TypesFile), `{"0": {"id": 0, "name": "Read"}}`)

	reg, log, err := jsonFactory(t, dir).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reg.Count() != 1 || log.Len() != 0 {
		t.Errorf("got %d types, %d records", reg.Count(), log.Len())
	}
}

func TestJSONParseErrorIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, jsonfile.RecordsFile), `{"2024-03-14": [`)

	_, _, err := jsonFactory(t, dir).Load()
	if !errors.Is(err, storage.ErrStorage) {
		t.Errorf("Load = %v, want ErrStorage", err)
	}
}

func TestJSONBadDateIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, jsonfile.RecordsFile), `{"14/03/2024": []}`)

	_, _, err := jsonFactory(t, dir).Load()
	if !errors.Is(err, storage.ErrStorage) {
		t.Errorf("Load = %v, want ErrStorage", err)
	}
}

func TestJSONMismatchedIDIsValidationError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, jsonfile.TypesFile), `{"1": {"id": 0, "name": "Read"}}`)

	_, _, err := jsonFactory(t, dir).Load()
	if !errors.Is(err, storage.ErrValidation) {
		t.Errorf("Load = %v, want ErrValidation", err)
	}
}

func TestJSONLoadDoesNotCreateDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	if _, _, err := jsonFactory(t, dir).Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("Load created %s", dir)
	}
}

func TestSQLiteReopen(t *testing.T) {
	dir := t.TempDir()
	first, err := sqlite.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	reg, log := sampleState()
	if err := first.Save(reg, log); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Opening an existing database must not trip over the schema.
	s := sqliteFactory(t, dir)
	gotReg, gotLog, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotReg.Count() != 2 || gotLog.Len() != log.Len() {
		t.Errorf("got %d types, %d records", gotReg.Count(), gotLog.Len())
	}
	if !gotLog.CompletedOn(date(2023, time.December, 31), 9) {
		t.Error("record on 2023-12-31 did not come back")
	}
	if _, err := os.Stat(filepath.Join(dir, sqlite.DBFile)); err != nil {
		t.Errorf("database file: %v", err)
	}
}

func TestSQLiteKeepsFiledDay(t *testing.T) {
	dir := t.TempDir()
	// A legacy record filed under the 15th that claims the 20th.
	writeFile(t, filepath.Join(dir, jsonfile.RecordsFile),
		`{"2024-03-15": [ {"activity_id": 0, "date": "2024-03-20"} ]}`)
	reg, log, err := jsonFactory(t, dir).Load()
	if err != nil {
		t.Fatalf("Load json: %v", err)
	}

	s := sqliteFactory(t, filepath.Join(dir, "db"))
	if err := s.Save(reg, log); err != nil {
		t.Fatalf("Save: %v", err)
	}
	_, got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.CompletedOn(date(2024, time.March, 15), 0) {
		t.Errorf("record moved off its day: dates = %v", got.Dates())
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
