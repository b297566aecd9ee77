// Package bbolt implements the ports.History interface using bbolt (embedded B+ tree).
// Entries live in a single "history" bucket keyed by the bucket sequence
// (big-endian, so cursor order is insertion order) with JSON values.
package bbolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"github.com/corey/radix/internal/ports"
	bolt "go.etcd.io/bbolt"
)

var bucketHistory = []byte("history")

// Store implements ports.History backed by bbolt.
type Store struct {
	db *bolt.DB
}

var _ ports.History = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path.
// A second process holding the file lock makes this fail after one second.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// seqKey encodes a bucket sequence as an 8-byte big-endian key.
func seqKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

// Append stores entry and trims the bucket to limit entries.
func (s *Store) Append(entry ports.HistoryEntry, limit int) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketHistory)
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put(seqKey(seq), data); err != nil {
			return err
		}
		if limit < 1 {
			return nil
		}

		var keys [][]byte
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			keys = append(keys, append([]byte(nil), k...))
		}
		// Keys are ascending, so the oldest entries come first.
		for i := 0; i < len(keys)-limit; i++ {
			if err := b.Delete(keys[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(n int) ([]ports.HistoryEntry, error) {
	var entries []ports.HistoryEntry

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketHistory)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if n > 0 && len(entries) >= n {
				break
			}
			var e ports.HistoryEntry
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("unmarshal history entry %x: %w", k, err)
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear removes the history bucket. Idempotent.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketHistory); err == bolt.ErrBucketNotFound {
			return nil
		} else {
			return err
		}
	})
}
