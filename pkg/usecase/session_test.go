package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model/config"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/repository/memory"
	"github.com/umlindi-lab/wardrisk/pkg/service/export"
	"github.com/umlindi-lab/wardrisk/pkg/usecase"
)

func newTestUseCases(t *testing.T, opts ...usecase.Option) *usecase.UseCases {
	t.Helper()

	baseDir := t.TempDir()
	store, err := export.NewStore(
		baseDir,
		filepath.Join(baseDir, "master.csv"),
		types.VariantScored,
		export.WithClock(func() time.Time {
			return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
		}),
	)
	gt.NoError(t, err).Required()

	return usecase.New(memory.New(), config.DefaultCatalog(), store, opts...)
}

func TestSelectHazards(t *testing.T) {
	ctx := context.Background()

	t.Run("selection advances to respondent info", func(t *testing.T) {
		uc := newTestUseCases(t)
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()

		updated, err := uc.Session.SelectHazards(ctx, session.ID, []string{"Flood", "Drought"}, "")
		gt.NoError(t, err).Required()
		gt.Value(t, updated.State).Equal(types.StateRespondentInfo)
		gt.Array(t, updated.SelectedHazards).Length(2)
		gt.Value(t, updated.SelectedHazards[0]).Equal("Flood")
		gt.Value(t, updated.SelectedHazards[1]).Equal("Drought")
	})

	t.Run("empty selection is rejected", func(t *testing.T) {
		uc := newTestUseCases(t)
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()

		_, err = uc.Session.SelectHazards(ctx, session.ID, nil, "")
		gt.Bool(t, errors.Is(err, usecase.ErrNoHazardsSelected)).True()

		// State unchanged
		got, err := uc.Session.Get(ctx, session.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.State).Equal(types.StateSelectingHazards)
	})

	t.Run("custom hazard alone is enough", func(t *testing.T) {
		uc := newTestUseCases(t)
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()

		updated, err := uc.Session.SelectHazards(ctx, session.ID, nil, "Sinkholes")
		gt.NoError(t, err).Required()
		gt.Value(t, updated.State).Equal(types.StateRespondentInfo)
		gt.Value(t, updated.CustomHazard).Equal("Sinkholes")
	})

	t.Run("uncataloged hazard is rejected", func(t *testing.T) {
		uc := newTestUseCases(t)
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()

		_, err = uc.Session.SelectHazards(ctx, session.ID, []string{"Meteor Strike"}, "")
		gt.Bool(t, errors.Is(err, usecase.ErrUnknownHazard)).True()
	})

	t.Run("duplicate selections are collapsed", func(t *testing.T) {
		uc := newTestUseCases(t)
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()

		updated, err := uc.Session.SelectHazards(ctx, session.ID, []string{"Flood", "Flood", "Drought"}, "")
		gt.NoError(t, err).Required()
		gt.Array(t, updated.SelectedHazards).Length(2)
		gt.Value(t, updated.SelectedHazards[0]).Equal("Flood")
		gt.Value(t, updated.SelectedHazards[1]).Equal("Drought")
	})
}

func TestSetRespondent(t *testing.T) {
	ctx := context.Background()

	t.Run("valid respondent advances to evaluation", func(t *testing.T) {
		uc := newTestUseCases(t)
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()
		_, err = uc.Session.SelectHazards(ctx, session.ID, []string{"Flood"}, "")
		gt.NoError(t, err).Required()

		updated, err := uc.Session.SetRespondent(ctx, session.ID, &model.Respondent{
			Name: "Jane Doe",
			Ward: "Ward 12",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, updated.State).Equal(types.StateHazardEvaluation)
		gt.Bool(t, updated.Respondent.Date.IsZero()).False()
	})

	t.Run("missing name keeps state", func(t *testing.T) {
		uc := newTestUseCases(t)
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()
		_, err = uc.Session.SelectHazards(ctx, session.ID, []string{"Flood"}, "")
		gt.NoError(t, err).Required()

		_, err = uc.Session.SetRespondent(ctx, session.ID, &model.Respondent{Ward: "Ward 12"})
		gt.Error(t, err)

		got, err := uc.Session.Get(ctx, session.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.State).Equal(types.StateRespondentInfo)
	})

	t.Run("missing ward keeps state", func(t *testing.T) {
		uc := newTestUseCases(t)
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()
		_, err = uc.Session.SelectHazards(ctx, session.ID, []string{"Flood"}, "")
		gt.NoError(t, err).Required()

		_, err = uc.Session.SetRespondent(ctx, session.ID, &model.Respondent{Name: "Jane Doe"})
		gt.Error(t, err)
	})

	t.Run("not allowed before hazard selection", func(t *testing.T) {
		uc := newTestUseCases(t)
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()

		_, err = uc.Session.SetRespondent(ctx, session.ID, &model.Respondent{Name: "Jane Doe", Ward: "Ward 12"})
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidTransition)).True()
	})
}

func TestBack(t *testing.T) {
	ctx := context.Background()

	t.Run("back keeps recorded answers", func(t *testing.T) {
		uc := newTestUseCases(t)
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()
		_, err = uc.Session.SelectHazards(ctx, session.ID, []string{"Flood"}, "")
		gt.NoError(t, err).Required()
		_, err = uc.Session.SetRespondent(ctx, session.ID, &model.Respondent{Name: "Jane Doe", Ward: "Ward 12"})
		gt.NoError(t, err).Required()

		_, err = uc.Session.RecordScoredAnswers(ctx, session.ID, []model.ScoredAnswer{
			{Hazard: "Flood", Likelihood: "3 - High", Impact: "2 - Moderate", Disruption: "1 - Low"},
		})
		gt.NoError(t, err).Required()

		backed, err := uc.Session.Back(ctx, session.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, backed.State).Equal(types.StateRespondentInfo)
		gt.Number(t, len(backed.ScoredAnswers)).Equal(1)

		// Moving forward again sees the same answers
		forward, err := uc.Session.SetRespondent(ctx, session.ID, &model.Respondent{Name: "Jane Doe", Ward: "Ward 12"})
		gt.NoError(t, err).Required()
		gt.Value(t, forward.ScoredAnswers["Flood"].Likelihood).Equal(types.Level("3 - High"))
	})

	t.Run("back is not available while selecting hazards", func(t *testing.T) {
		uc := newTestUseCases(t)
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()

		_, err = uc.Session.Back(ctx, session.ID)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidTransition)).True()
	})
}

func TestRecordScoredAnswers(t *testing.T) {
	ctx := context.Background()

	evaluating := func(t *testing.T, uc *usecase.UseCases, hazards []string) types.SessionID {
		t.Helper()
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()
		_, err = uc.Session.SelectHazards(ctx, session.ID, hazards, "")
		gt.NoError(t, err).Required()
		_, err = uc.Session.SetRespondent(ctx, session.ID, &model.Respondent{Name: "Jane Doe", Ward: "Ward 12"})
		gt.NoError(t, err).Required()
		return session.ID
	}

	t.Run("answers for unselected hazards are rejected", func(t *testing.T) {
		uc := newTestUseCases(t)
		id := evaluating(t, uc, []string{"Flood"})

		_, err := uc.Session.RecordScoredAnswers(ctx, id, []model.ScoredAnswer{
			{Hazard: "Drought", Likelihood: "1 - Low", Impact: "1 - Low", Disruption: "1 - Low"},
		})
		gt.Bool(t, errors.Is(err, usecase.ErrUnknownHazard)).True()
	})

	t.Run("off-scale level is rejected", func(t *testing.T) {
		uc := newTestUseCases(t)
		id := evaluating(t, uc, []string{"Flood"})

		_, err := uc.Session.RecordScoredAnswers(ctx, id, []model.ScoredAnswer{
			{Hazard: "Flood", Likelihood: "7 - Unthinkable", Impact: "1 - Low", Disruption: "1 - Low"},
		})
		gt.Error(t, err)
	})

	t.Run("incremental recording accumulates", func(t *testing.T) {
		uc := newTestUseCases(t)
		id := evaluating(t, uc, []string{"Flood", "Drought"})

		_, err := uc.Session.RecordScoredAnswers(ctx, id, []model.ScoredAnswer{
			{Hazard: "Flood", Likelihood: "2 - Moderate", Impact: "2 - Moderate", Disruption: "2 - Moderate"},
		})
		gt.NoError(t, err).Required()

		updated, err := uc.Session.RecordScoredAnswers(ctx, id, []model.ScoredAnswer{
			{Hazard: "Drought", Likelihood: "1 - Low", Impact: "1 - Low", Disruption: "1 - Low"},
		})
		gt.NoError(t, err).Required()
		gt.Number(t, len(updated.ScoredAnswers)).Equal(2)
	})
}
