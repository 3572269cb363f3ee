//go:build dev

package config

import (
	"path/filepath"
	"runtime"
)

// devDataDir resolves <repo>/data from the location of this source file.
func devDataDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "data")
}
