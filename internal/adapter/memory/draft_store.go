package memory

import (
	"context"
	"encoding/json"
	"sync"
)

// DraftStore is an in-process port.DraftStore. Values are kept as encoded
// JSON so callers observe the same copy semantics as a remote store.
type DraftStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewDraftStore returns an empty store.
func NewDraftStore() *DraftStore {
	return &DraftStore{blobs: make(map[string][]byte)}
}

func (s *DraftStore) Load(_ context.Context, key string, dst any) (bool, error) {
	s.mu.RLock()
	b, ok := s.blobs[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (s *DraftStore) Save(_ context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.blobs[key] = b
	s.mu.Unlock()
	return nil
}

func (s *DraftStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	for _, k := range keys {
		delete(s.blobs, k)
	}
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored keys.
func (s *DraftStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
