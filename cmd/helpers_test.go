package cmd

import (
	"testing"
	"time"

	"github.com/dleamy/daila/internal/activity"
	"github.com/dleamy/daila/internal/calendar"
	"github.com/dleamy/daila/internal/config"
	"github.com/dleamy/daila/internal/storage"
	"github.com/dleamy/daila/internal/storage/jsonfile"
)

var testNow = time.Date(2024, time.March, 10, 8, 0, 0, 0, time.Local)

func testToday() calendar.Date { return calendar.FromTime(testNow) }

func setupTestStore(t *testing.T, dir string) storage.Store {
	t.Helper()
	s, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// setupTestEnv points the package globals at a fresh data directory and a
// fixed clock.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	store = setupTestStore(t, dir)
	appConfig = &config.Config{
		Storage: storage.BackendJSON,
		DataDir: dir,
		Shell: config.ShellConfig{
			CacheTTL:    "5m",
			DoneIcon:    "✅",
			PendingIcon: "○",
			StreakIcon:  "🔥",
		},
	}
	prevNow := now
	now = func() time.Time { return testNow }
	t.Cleanup(func() { now = prevNow })
	return dir
}

// seedState saves Read (done the last 3 days), Run (done 5 days ago) and one
// orphan record.
func seedState(t *testing.T) {
	t.Helper()
	reg := activity.NewRegistry()
	reg.Create("Read")
	reg.Create("Run")
	log := activity.NewLog()
	today := testToday()
	for i := 0; i < 3; i++ {
		log.Add(activity.Record{TypeID: 0, Date: today.AddDays(-i)})
	}
	log.Add(activity.Record{TypeID: 1, Date: today.AddDays(-5)})
	log.Add(activity.Record{TypeID: 7, Date: today.AddDays(-1)})
	if err := store.Save(reg, log); err != nil {
		t.Fatalf("seeding store: %v", err)
	}
}

func loadState(t *testing.T) (*activity.Registry, *activity.Log) {
	t.Helper()
	reg, log, err := store.Load()
	if err != nil {
		t.Fatalf("loading store: %v", err)
	}
	return reg, log
}
