package ports

import (
	"context"
	"errors"

	"github.com/aretw0/graft/pkg/domain"
)

// ErrSessionNotFound is returned when a session ID does not resolve to a
// live session.
var ErrSessionNotFound = errors.New("session not found")

// Session is one editing session: an instance graph under construction,
// bound to the module whose catalog its nodes come from.
//
// The Graph handle is live. Mutations made through it are visible to every
// holder of the session, and nothing is serialized. Callers that share a
// session across goroutines serialize access themselves.
type Session struct {
	ID     string
	Module string
	Graph  *domain.Graph
}

// GraphStore holds editing sessions keyed by ID.
type GraphStore interface {
	// Create opens a new session with an empty graph bound to the named
	// module. The store assigns the ID.
	Create(ctx context.Context, module string) (*Session, error)

	// Get returns the live session for the given ID.
	// Returns ErrSessionNotFound if the session does not exist.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete discards a session.
	// Returns ErrSessionNotFound if the session does not exist.
	Delete(ctx context.Context, id string) error

	// List returns all live sessions ordered by ID.
	List(ctx context.Context) ([]*Session, error)
}
