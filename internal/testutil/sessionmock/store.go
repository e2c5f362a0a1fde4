package sessionmock

import (
	"context"
	"sync"

	domain "glint-backoffice/internal/domain/session"
)

var _ domain.Store = (*Store)(nil)

// Store is an in-memory session store. Set the Fn fields to inject failures.
type Store struct {
	SaveFn   func(ctx context.Context, s *domain.Session) error
	GetFn    func(ctx context.Context, id string) (*domain.Session, error)
	DeleteFn func(ctx context.Context, id string) error

	mu       sync.Mutex
	Sessions map[string]domain.Session
}

func New() *Store { return &Store{Sessions: map[string]domain.Session{}} }

func (m *Store) Save(ctx context.Context, s *domain.Session) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Sessions == nil {
		m.Sessions = map[string]domain.Session{}
	}
	m.Sessions[s.ID] = *s
	return nil
}

func (m *Store) Get(ctx context.Context, id string) (*domain.Session, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.Sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (m *Store) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Sessions, id)
	return nil
}
