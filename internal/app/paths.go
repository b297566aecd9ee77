package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables consulted by ResolveRoot, in order.
const (
	EnvHome       = "RADIX_HOME"
	EnvAlfredData = "alfred_workflow_data"
)

// Paths holds all resolved filesystem paths for the radix data directory.
// All fields are pre-computed strings — zero-alloc access after construction.
type Paths struct {
	Root   string // <home>/
	Config string // <home>/config.yaml
	DB     string // <home>/history.db
}

// NewPaths constructs all resolved paths from a data directory.
func NewPaths(root string) *Paths {
	return &Paths{
		Root:   root,
		Config: filepath.Join(root, "config.yaml"),
		DB:     filepath.Join(root, "history.db"),
	}
}

// ResolveRoot picks the data directory: $RADIX_HOME, then Alfred's per-workflow
// data directory, then <user config dir>/radix.
func ResolveRoot() (string, error) {
	for _, env := range []string{EnvHome, EnvAlfredData} {
		if dir := os.Getenv(env); dir != "" {
			return dir, nil
		}
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "radix"), nil
}

// EnsureDirs creates the data directory. Idempotent.
func (p *Paths) EnsureDirs() error {
	return os.MkdirAll(p.Root, 0755)
}
