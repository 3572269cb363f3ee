package config

import (
	"path/filepath"
	"strings"

	gap "github.com/muesli/go-app-paths"
)

const (
	vendor  = "dleamy"
	product = "daila"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// scope is the per-user application scope used to locate the data directory.
var scope = gap.NewVendorScope(gap.User, vendor, product)

// DefaultDataDir returns the directory holding the activity documents. Dev
// builds (-tags dev) use <repo>/data instead of the per-user data directory.
func DefaultDataDir() string {
	if dir := devDataDir(); dir != "" {
		return dir
	}
	dirs, err := scope.DataDirs()
	if err != nil || len(dirs) == 0 {
		return filepath.Join(".", "."+product)
	}
	return dirs[0]
}
