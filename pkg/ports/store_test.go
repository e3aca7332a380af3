package ports_test

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/ports"
)

// mapStore is a minimal GraphStore kept here to exercise the contract suite
// itself. Real implementations live under pkg/adapters.
type mapStore struct {
	seq  int
	data map[string]*ports.Session
}

var _ ports.GraphStore = (*mapStore)(nil)

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string]*ports.Session)}
}

func (m *mapStore) Create(ctx context.Context, module string) (*ports.Session, error) {
	m.seq++
	sess := &ports.Session{
		ID:     fmt.Sprintf("s%03d", m.seq),
		Module: module,
		Graph:  domain.NewGraph(),
	}
	m.data[sess.ID] = sess
	return sess, nil
}

func (m *mapStore) Get(ctx context.Context, id string) (*ports.Session, error) {
	sess, ok := m.data[id]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *mapStore) Delete(ctx context.Context, id string) error {
	if _, ok := m.data[id]; !ok {
		return ports.ErrSessionNotFound
	}
	delete(m.data, id)
	return nil
}

func (m *mapStore) List(ctx context.Context) ([]*ports.Session, error) {
	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	sessions := make([]*ports.Session, 0, len(ids))
	for _, id := range ids {
		sessions = append(sessions, m.data[id])
	}
	return sessions, nil
}

func TestGraphStoreContract(t *testing.T) {
	ports.RunGraphStoreContract(t, newMapStore())
}
