// Package ports defines the interfaces (contracts) that adapters must implement.
// The conversion core is pure and needs none of them; they serve the CLI shell.
package ports

import "time"

// History persists recently converted queries so the CLI can list them.
// The conversion core never touches it; the app layer records a query only
// after it parsed successfully.
//
// Writes are transactional: Append either stores the entry and trims the
// log to its limit, or changes nothing.
type History interface {
	// Append stores entry as the newest item and drops the oldest items so
	// that at most limit remain. A limit below 1 keeps everything.
	Append(entry HistoryEntry, limit int) error

	// Recent returns up to n entries, newest first. n below 1 returns all.
	Recent(n int) ([]HistoryEntry, error)

	// Clear removes every entry. Clearing an empty history is not an error.
	Clear() error

	// Close releases the underlying store.
	Close() error
}

// HistoryEntry is one successfully parsed query.
type HistoryEntry struct {
	Query string    `json:"query"`
	Base  string    `json:"base"`  // display name of the source base
	Value int64     `json:"value"` // parsed value
	At    time.Time `json:"at"`
}
