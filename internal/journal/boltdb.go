// Package journal persists an append-only record of store mutations to
// BoltDB so workspace activity survives restarts and can be audited.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Journal wraps a BoltDB file holding time-ordered activity entries.
type Journal struct {
	db     *bolt.DB
	bucket []byte
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, bucket string) (*Journal, error) {
	if bucket == "" {
		bucket = "activity"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Journal{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

// Append writes the entry under a time-ordered key.
func (j *Journal) Append(entry Entry) error {
	if j == nil || j.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	entry.normalize()
	entry.key = []byte(buildKey(entry))

	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(j.bucket).Put(entry.key, payload)
	})
}

// Recent returns up to limit entries, oldest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if j == nil || j.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if limit <= 0 {
		limit = 100
	}

	var entries []Entry
	err := j.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(j.bucket).Cursor()
		for k, v := c.First(); k != nil && len(entries) < limit; k, v = c.Next() {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				continue
			}
			entry.key = append([]byte(nil), k...)
			entries = append(entries, entry)
		}
		return nil
	})
	return entries, err
}

// Size returns the number of journaled entries.
func (j *Journal) Size() (int, error) {
	if j == nil || j.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := j.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(j.bucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Prune removes entries older than the provided timestamp.
func (j *Journal) Prune(olderThan time.Time) error {
	if j == nil || j.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return j.db.Update(func(tx *bolt.Tx) error {
		c := tx.Bucket(j.bucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var entry Entry
			if err := json.Unmarshal(v, &entry); err != nil {
				continue
			}
			if entry.At.Before(olderThan) {
				if err := c.Delete(); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// Close closes the Bolt database.
func (j *Journal) Close() error {
	if j == nil || j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Stats exposes Bolt statistics for monitoring endpoints.
func (j *Journal) Stats() bolt.Stats {
	if j == nil || j.db == nil {
		return bolt.Stats{}
	}
	return j.db.Stats()
}

func buildKey(entry Entry) string {
	return fmt.Sprintf("%020d_%s", entry.At.UnixNano(), entry.ID)
}
