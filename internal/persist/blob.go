package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
)

// BlobStore is the raw local medium: one named blob per key. Get returns
// (nil, nil) when no blob exists under the name.
type BlobStore interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, payload []byte) error
}

// SQLiteBlobStore implements BlobStore over the blobs table.
type SQLiteBlobStore struct {
	db *sql.DB
}

// NewSQLiteBlobStore creates a new SQLiteBlobStore.
func NewSQLiteBlobStore(db *sql.DB) *SQLiteBlobStore {
	return &SQLiteBlobStore{db: db}
}

func (s *SQLiteBlobStore) Get(ctx context.Context, name string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM blobs WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %q: %w", name, err)
	}
	return payload, nil
}

func (s *SQLiteBlobStore) Put(ctx context.Context, name string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO blobs (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		name, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing blob %q: %w", name, err)
	}
	return nil
}

// MemBlobStore is an in-memory BlobStore for tests.
type MemBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemBlobStore creates an empty in-memory blob store.
func NewMemBlobStore() *MemBlobStore {
	return &MemBlobStore{blobs: make(map[string][]byte)}
}

func (s *MemBlobStore) Get(_ context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.blobs[name]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (s *MemBlobStore) Put(_ context.Context, name string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(payload))
	copy(out, payload)
	s.blobs[name] = out
	return nil
}
