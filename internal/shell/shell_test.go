package shell

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dleamy/daila/internal/calendar"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)

	if c := ReadCache(dir); c != nil {
		t.Fatalf("expected nil cache before write, got %+v", c)
	}

	want := &PromptCache{
		Date:      calendar.FromTime(now),
		Done:      2,
		Total:     3,
		Streak:    4,
		Backend:   "json",
		UpdatedAt: now,
	}
	if err := WriteCache(dir, want); err != nil {
		t.Fatalf("WriteCache: %v", err)
	}

	got := ReadCache(dir)
	if got == nil {
		t.Fatal("expected cache after write")
	}
	if got.Date != want.Date || got.Done != 2 || got.Total != 3 || got.Streak != 4 || got.Backend != "json" {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, now)
	}
}

func TestReadCacheCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(CachePath(dir), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if c := ReadCache(dir); c != nil {
		t.Errorf("expected nil for corrupt cache, got %+v", c)
	}
}

func TestIsFresh(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.Local)
	ttl := 5 * time.Minute

	tests := []struct {
		name  string
		cache *PromptCache
		want  bool
	}{
		{"nil", nil, false},
		{"fresh", &PromptCache{Date: calendar.FromTime(now), UpdatedAt: now.Add(-time.Minute)}, true},
		{"expired", &PromptCache{Date: calendar.FromTime(now), UpdatedAt: now.Add(-10 * time.Minute)}, false},
		{"yesterday", &PromptCache{Date: calendar.FromTime(now).Prev(), UpdatedAt: now}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cache.IsFresh(now, ttl); got != tt.want {
				t.Errorf("IsFresh = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInvalidateCache(t *testing.T) {
	dir := t.TempDir()
	if err := InvalidateCache(dir); err != nil {
		t.Fatalf("invalidating a missing cache: %v", err)
	}
	if err := WriteCache(dir, &PromptCache{}); err != nil {
		t.Fatal(err)
	}
	if err := InvalidateCache(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(CachePath(dir)); !os.IsNotExist(err) {
		t.Errorf("expected cache file removed, stat err = %v", err)
	}
}

func TestWriteInit(t *testing.T) {
	for _, sh := range Supported() {
		t.Run(sh, func(t *testing.T) {
			var b strings.Builder
			if err := WriteInit(&b, sh); err != nil {
				t.Fatal(err)
			}
			out := b.String()
			if !strings.Contains(out, "daila status --env") {
				t.Error("expected prompt hook to call status --env")
			}
			if !strings.Contains(out, "daila completion "+sh) {
				t.Error("expected completion setup")
			}
		})
	}

	var b strings.Builder
	err := WriteInit(&b, "tcsh")
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("expected ErrUnsupportedShell, got %v", err)
	}
	if b.Len() != 0 {
		t.Error("expected no output for unsupported shell")
	}
}
