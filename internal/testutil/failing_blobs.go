package testutil

import (
	"context"
	"errors"
)

// ErrBlobStoreBroken is returned by FailingBlobStore operations.
var ErrBlobStoreBroken = errors.New("blob store broken")

// FailingBlobStore fails every operation, for exercising the degraded and
// swallowed-failure paths of the serializer and local backend.
type FailingBlobStore struct {
	// FailGets/FailPuts select which operations fail; both default true via
	// NewFailingBlobStore.
	FailGets bool
	FailPuts bool
	payload  map[string][]byte
}

// NewFailingBlobStore creates a store that fails both reads and writes.
func NewFailingBlobStore() *FailingBlobStore {
	return &FailingBlobStore{FailGets: true, FailPuts: true, payload: map[string][]byte{}}
}

func (s *FailingBlobStore) Get(_ context.Context, name string) ([]byte, error) {
	if s.FailGets {
		return nil, ErrBlobStoreBroken
	}
	return s.payload[name], nil
}

func (s *FailingBlobStore) Put(_ context.Context, name string, payload []byte) error {
	if s.FailPuts {
		return ErrBlobStoreBroken
	}
	s.payload[name] = payload
	return nil
}
