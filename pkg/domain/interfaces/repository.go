package interfaces

import (
	"context"

	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	Session() SessionRepository
	Submission() SubmissionRepository

	// Auth methods
	PutToken(ctx context.Context, token *model.Token) error
	GetToken(ctx context.Context, tokenID types.TokenID) (*model.Token, error)
	DeleteToken(ctx context.Context, tokenID types.TokenID) error

	Close() error
}
