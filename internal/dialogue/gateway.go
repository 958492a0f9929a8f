package dialogue

import (
	"context"
	"sync"
)

// PersistenceGateway is the external-store contract. The orchestrator saves
// after every mutating turn and loads once at start; both failures are logged
// and tolerated, the in-memory session stays the source of truth.
type PersistenceGateway interface {
	SaveSession(ctx context.Context, session *Session) error
	LoadLatest(ctx context.Context) (*Session, error) // (nil, nil) when none exists
}

// CompletionClient is the optional remote-completion contract. On any error
// the orchestrator falls back to the canned selector.
type CompletionClient interface {
	Complete(ctx context.Context, turns []Turn, systemPrompt string) (string, error)
}

// Turn is one role/content pair handed to a completion client.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// InMemoryGateway is a thread-safe gateway for tests and store-less runs.
type InMemoryGateway struct {
	mu     sync.Mutex
	latest *Session
}

// NewInMemoryGateway returns an empty in-memory gateway.
func NewInMemoryGateway() *InMemoryGateway {
	return &InMemoryGateway{}
}

func (g *InMemoryGateway) SaveSession(_ context.Context, session *Session) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.latest = session.Snapshot()
	return nil
}

func (g *InMemoryGateway) LoadLatest(_ context.Context) (*Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.latest == nil {
		return nil, nil
	}
	return g.latest.Snapshot(), nil
}
