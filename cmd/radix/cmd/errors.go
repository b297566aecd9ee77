package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corey/radix/internal/adapters/bbolt"
	"github.com/corey/radix/internal/ports"
)

// errNoResult marks a query that produced only an error record. The record
// has already been printed, so nothing more is reported.
var errNoResult = errors.New("no result")

// ExitCode maps an Execute error to a process exit status:
// 1 when the query could not be converted, 2 for anything else.
func ExitCode(err error) int {
	if errors.Is(err, errNoResult) {
		return 1
	}
	return 2
}

// isDBLockError returns true if the error chain contains a bbolt lock timeout.
// bbolt returns the string "timeout" when it cannot acquire the file lock
// within the configured deadline.
func isDBLockError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "timeout")
}

// openHistory opens the history database, creating the data directory first.
func openHistory() (ports.History, error) {
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create %s: %w", paths.Root, err)
	}
	store, err := bbolt.NewStore(paths.DB)
	if err != nil {
		if isDBLockError(err) {
			return nil, fmt.Errorf("%w\n%s", err, diagnoseDBLock())
		}
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

// diagnoseDBLock returns guidance when another radix process holds the
// history database.
func diagnoseDBLock() string {
	return fmt.Sprintf("history database is locked by another process\n"+
		"  → find the process:  ps aux | grep radix\n"+
		"  → or skip history:   radix --no-history ...\n"+
		"  → database:          %s", paths.DB)
}
