package interfaces

import (
	"context"

	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// SessionRepository defines the interface for Session data access
type SessionRepository interface {
	// Create stores a new session
	Create(ctx context.Context, s *model.Session) (*model.Session, error)

	// Get retrieves a session by ID
	Get(ctx context.Context, id types.SessionID) (*model.Session, error)

	// Update replaces an existing session
	Update(ctx context.Context, s *model.Session) (*model.Session, error)

	// Delete removes a session by ID
	Delete(ctx context.Context, id types.SessionID) error
}
