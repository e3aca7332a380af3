// Package memory provides the in-process GraphStore used by the MCP adapter
// and by tests. Sessions live for the lifetime of the process; nothing is
// persisted.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/ports"
	"github.com/google/uuid"
)

// Store implements ports.GraphStore with a plain map.
// The map is safe for concurrent use. The Graph inside each session is not,
// so callers serialize work on any single session.
type Store struct {
	mu   sync.RWMutex
	data map[string]*ports.Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{data: make(map[string]*ports.Session)}
}

// Create opens a session with a fresh graph and a generated ID.
func (s *Store) Create(ctx context.Context, module string) (*ports.Session, error) {
	sess := &ports.Session{
		ID:     uuid.NewString(),
		Module: module,
		Graph:  domain.NewGraph(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sess.ID] = sess
	return sess, nil
}

// Get returns the live session for the given ID.
func (s *Store) Get(ctx context.Context, id string) (*ports.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.data[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrSessionNotFound, id)
	}
	return sess, nil
}

// Delete discards a session.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return fmt.Errorf("%w: %s", ports.ErrSessionNotFound, id)
	}
	delete(s.data, id)
	return nil
}

// List returns all live sessions ordered by ID.
func (s *Store) List(ctx context.Context) ([]*ports.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	sessions := make([]*ports.Session, 0, len(ids))
	for _, id := range ids {
		sessions = append(sessions, s.data[id])
	}
	return sessions, nil
}
