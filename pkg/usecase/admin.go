package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/interfaces"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/service/export"
)

// AdminUseCase serves the review surface: master dataset download and the
// submission index.
type AdminUseCase struct {
	repo  interfaces.Repository
	store *export.Store
}

func NewAdminUseCase(repo interfaces.Repository, store *export.Store) *AdminUseCase {
	return &AdminUseCase{repo: repo, store: store}
}

// MasterPath returns the path of the master dataset file
func (uc *AdminUseCase) MasterPath() string {
	return uc.store.Master().Path()
}

// Master reads back all rows of the master dataset, header included. A
// dataset with no submissions yet yields nil.
func (uc *AdminUseCase) Master(ctx context.Context) ([][]string, error) {
	rows, err := uc.store.Master().ReadAll(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read master dataset")
	}
	return rows, nil
}

// Submissions lists the submission index, newest first
func (uc *AdminUseCase) Submissions(ctx context.Context) ([]*model.SubmissionSummary, error) {
	summaries, err := uc.repo.Submission().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list submissions")
	}
	return summaries, nil
}
