package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/storage"
)

// Fixed keys inside the session bucket. The user profile and the token are
// stored as separate entries; both are written in one transaction so an
// interrupted save can never leave a profile without its token.
var (
	keyUser  = []byte("user")
	keyToken = []byte("token")
)

// SaveSession stores the user profile and bearer token, replacing prior values.
func (s *Storage) SaveSession(ctx context.Context, session *storage.SessionData) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		userJSON, err := json.Marshal(session.User)
		if err != nil {
			return fmt.Errorf("failed to marshal user: %w", err)
		}

		if err := bucket.Put(keyUser, userJSON); err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
		if err := bucket.Put(keyToken, []byte(session.Token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		return nil
	})
}

// GetSession retrieves the stored session. The token entry is checked first:
// a profile without a token loads as absent, so a loaded session always has a
// token to re-attach. Corrupt profile data also loads as absent.
func (s *Storage) GetSession(ctx context.Context) (*storage.SessionData, error) {
	var session *storage.SessionData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		token := bucket.Get(keyToken)
		if token == nil {
			return storage.ErrSessionNotFound
		}

		userJSON := bucket.Get(keyUser)
		if userJSON == nil {
			return storage.ErrSessionNotFound
		}

		session = &storage.SessionData{Token: string(token)}
		if err := json.Unmarshal(userJSON, &session.User); err != nil {
			session = nil
			return storage.ErrSessionNotFound
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes both session entries. Deleting an absent session is
// not an error.
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if err := bucket.Delete(keyUser); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if err := bucket.Delete(keyToken); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}

		return nil
	})
}
