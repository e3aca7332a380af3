package ports

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/graft/pkg/domain"
)

// RunGraphStoreContract runs a suite of tests to verify that a GraphStore
// implementation adheres to the defined interface contract. Adapter packages
// call it from their own tests.
func RunGraphStoreContract(t *testing.T, store GraphStore) {
	ctx := context.Background()

	t.Run("Create and Get", func(t *testing.T) {
		sess, err := store.Create(ctx, "math")
		require.NoError(t, err, "Create should not return error")
		require.NotNil(t, sess)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, "math", sess.Module)
		require.NotNil(t, sess.Graph)
		assert.Equal(t, 0, sess.Graph.Len(), "a new session starts with an empty graph")

		got, err := store.Get(ctx, sess.ID)
		require.NoError(t, err, "Get should not return error")
		assert.Same(t, sess.Graph, got.Graph, "Get must return the live graph, not a copy")
	})

	t.Run("Mutations Stick", func(t *testing.T) {
		sess, err := store.Create(ctx, "math")
		require.NoError(t, err)

		nt := domain.NewNodeType([]string{"calc"}, "probe", "Probe", nil, domain.Fixed(), nil)
		n, err := nt.Create("n1", nil, nil)
		require.NoError(t, err)
		require.NoError(t, sess.Graph.Add(n))

		got, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Graph.Len())
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "no-such-session")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		sess, err := store.Create(ctx, "math")
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, sess.ID), "Delete should not return error")

		_, err = store.Get(ctx, sess.ID)
		assert.ErrorIs(t, err, ErrSessionNotFound, "Get after Delete should report the session gone")
		assert.ErrorIs(t, store.Delete(ctx, sess.ID), ErrSessionNotFound, "Delete is not idempotent")
	})

	t.Run("List", func(t *testing.T) {
		a, err := store.Create(ctx, "math")
		require.NoError(t, err)
		b, err := store.Create(ctx, "sim")
		require.NoError(t, err)

		sessions, err := store.List(ctx)
		require.NoError(t, err)

		ids := make([]string, 0, len(sessions))
		for _, s := range sessions {
			ids = append(ids, s.ID)
		}
		assert.Contains(t, ids, a.ID)
		assert.Contains(t, ids, b.ID)
		assert.True(t, sort.StringsAreSorted(ids), "List should order sessions by ID")
	})
}
