package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

// bucketSession is the fixed namespace for the persisted session entries.
var bucketSession = []byte("session")

// Storage is the BoltDB-backed client storage.
type Storage struct {
	db *bbolt.DB
}

// New opens (creating if needed) the BoltDB file at dbPath and ensures the
// session bucket exists.
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketSession); err != nil {
			return fmt.Errorf("failed to create session bucket: %w", err)
		}
		return nil
	})
}
