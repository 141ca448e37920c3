package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/video-assistant/internal/domain/entities"
)

// SessionRepository defines the interface for session state access
type SessionRepository interface {
	// FindOrCreate returns the session with the given id, creating an empty one if missing
	FindOrCreate(ctx context.Context, id uuid.UUID) (*entities.Session, error)

	// FindByID finds a session by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Session, error)

	// Save stores the session, replacing any previous state (last write wins)
	Save(ctx context.Context, session *entities.Session) error

	// Delete removes a session
	Delete(ctx context.Context, id uuid.UUID) error
}
