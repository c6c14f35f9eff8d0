package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

type submissionRepository struct {
	mu        sync.RWMutex
	summaries map[types.SubmissionID]*model.SubmissionSummary
}

func newSubmissionRepository() *submissionRepository {
	return &submissionRepository{
		summaries: make(map[types.SubmissionID]*model.SubmissionSummary),
	}
}

func copySummary(s *model.SubmissionSummary) *model.SubmissionSummary {
	copied := *s
	return &copied
}

func (r *submissionRepository) Create(ctx context.Context, summary *model.SubmissionSummary) (*model.SubmissionSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copySummary(summary)
	if created.ID == "" {
		created.ID = types.NewSubmissionID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	if _, exists := r.summaries[created.ID]; exists {
		return nil, goerr.New("submission already recorded", goerr.V("id", created.ID))
	}

	r.summaries[created.ID] = created
	return copySummary(created), nil
}

func (r *submissionRepository) Get(ctx context.Context, id types.SubmissionID) (*model.SubmissionSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary, exists := r.summaries[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "submission not found", goerr.V("id", id))
	}

	return copySummary(summary), nil
}

func (r *submissionRepository) List(ctx context.Context) ([]*model.SubmissionSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.SubmissionSummary, 0, len(r.summaries))
	for _, summary := range r.summaries {
		result = append(result, copySummary(summary))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}
