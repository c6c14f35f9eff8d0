package interfaces

import (
	"context"

	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// SubmissionRepository defines the interface for the submission index
type SubmissionRepository interface {
	// Create records a summary row for a persisted submission
	Create(ctx context.Context, summary *model.SubmissionSummary) (*model.SubmissionSummary, error)

	// Get retrieves a summary by submission ID
	Get(ctx context.Context, id types.SubmissionID) (*model.SubmissionSummary, error)

	// List retrieves all summaries ordered by creation time, newest first
	List(ctx context.Context) ([]*model.SubmissionSummary, error)
}
