package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/video-assistant/internal/domain/entities"
	"github.com/johnquangdev/video-assistant/internal/domain/repositories"
	"github.com/johnquangdev/video-assistant/internal/infrastructure/cache"
)

// SessionRepository implements the session repository interface in process memory.
// Callers always receive copies, so concurrent requests on one session never share a history slice.
type SessionRepository struct {
	store *cache.MemoryStore[*entities.Session]
	ttl   time.Duration
}

var _ repositories.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a new session repository
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionRepository{
		store: cache.NewMemoryStore[*entities.Session](10 * time.Minute),
		ttl:   ttl,
	}
}

// FindOrCreate returns the session with the given id, creating an empty one if missing or expired
func (r *SessionRepository) FindOrCreate(ctx context.Context, id uuid.UUID) (*entities.Session, error) {
	if s, err := r.FindByID(ctx, id); err == nil {
		return s, nil
	}

	session := entities.NewSession(id, time.Now().Add(r.ttl))
	r.store.Set(id.String(), session.Clone(), r.ttl)
	return session, nil
}

// FindByID finds a session by ID
func (r *SessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Session, error) {
	s, ok := r.store.Get(id.String())
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	if s.IsExpired() {
		r.store.Delete(id.String())
		return nil, entities.ErrSessionExpired
	}
	return s.Clone(), nil
}

// Save stores the session, replacing any previous state
func (r *SessionRepository) Save(ctx context.Context, session *entities.Session) error {
	session.UpdateLastUsed()
	session.ExpiresAt = time.Now().Add(r.ttl)
	r.store.Set(session.ID.String(), session.Clone(), r.ttl)
	return nil
}

// Delete removes a session
func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.Delete(id.String())
	return nil
}

// Close stops the background sweeper
func (r *SessionRepository) Close() {
	r.store.Close()
}
