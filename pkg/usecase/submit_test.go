package usecase_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umlindi-lab/wardrisk/pkg/domain/interfaces"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/service/notify"
	"github.com/umlindi-lab/wardrisk/pkg/usecase"
)

type failingNotifier struct{}

func (failingNotifier) Notify(ctx context.Context, n interfaces.Notification) error {
	return errors.New("smtp unreachable")
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	startEvaluation := func(t *testing.T, uc *usecase.UseCases) types.SessionID {
		t.Helper()
		session, err := uc.Session.Create(ctx)
		gt.NoError(t, err).Required()
		_, err = uc.Session.SelectHazards(ctx, session.ID, []string{"Flood"}, "")
		gt.NoError(t, err).Required()
		_, err = uc.Session.SetRespondent(ctx, session.ID, &model.Respondent{
			Name:              "Jane Doe",
			Ward:              "Ward 12",
			LocalMunicipality: "Mbhashe",
			Email:             "jane@example.com",
		})
		gt.NoError(t, err).Required()
		return session.ID
	}

	t.Run("full submission produces artifacts and index entry", func(t *testing.T) {
		uc := newTestUseCases(t)
		id := startEvaluation(t, uc)

		_, err := uc.Session.RecordScoredAnswers(ctx, id, []model.ScoredAnswer{
			{Hazard: "Flood", Likelihood: "3 - High", Impact: "2 - Moderate", Disruption: "1 - Low"},
		})
		gt.NoError(t, err).Required()

		result, err := uc.Session.Submit(ctx, id, true)
		gt.NoError(t, err).Required()
		submitted := result.Session
		gt.Value(t, submitted.State).Equal(types.StateSubmitted)
		gt.NoError(t, result.NotifyError)

		// All four artifacts exist on disk
		gt.Array(t, submitted.Artifacts.Paths()).Length(4)
		for _, path := range submitted.Artifacts.Paths() {
			_, err := os.Stat(path)
			gt.NoError(t, err).Required()
		}

		// Master dataset gained header and one row
		rows, err := uc.Admin.Master(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, rows).Length(2)

		// Submission index records the summary
		listed, err := uc.Admin.Submissions(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, listed).Length(1)
		gt.Value(t, listed[0].RespondentName).Equal("Jane Doe")
		gt.Number(t, listed[0].MaxRiskScore).Equal(6)

		// Artifact lookup serves the stored path
		path, err := uc.Session.Artifact(ctx, id, types.ArtifactZip)
		gt.NoError(t, err).Required()
		gt.Value(t, path).Equal(submitted.Artifacts.ZipPath)
	})

	t.Run("notification failure is a warning, not a rollback", func(t *testing.T) {
		uc := newTestUseCases(t, usecase.WithNotify(
			notify.New(failingNotifier{}, []string{"admin@example.com"})))
		id := startEvaluation(t, uc)

		_, err := uc.Session.RecordScoredAnswers(ctx, id, []model.ScoredAnswer{
			{Hazard: "Flood", Likelihood: "3 - High", Impact: "2 - Moderate", Disruption: "1 - Low"},
		})
		gt.NoError(t, err).Required()

		result, err := uc.Session.Submit(ctx, id, true)
		gt.NoError(t, err).Required()
		gt.Error(t, result.NotifyError)
		gt.Value(t, result.Session.State).Equal(types.StateSubmitted)

		// Files stayed durable
		rows, err := uc.Admin.Master(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, rows).Length(2)
	})

	t.Run("submit without acknowledgment is rejected", func(t *testing.T) {
		uc := newTestUseCases(t)
		id := startEvaluation(t, uc)

		_, err := uc.Session.RecordScoredAnswers(ctx, id, []model.ScoredAnswer{
			{Hazard: "Flood", Likelihood: "3 - High", Impact: "2 - Moderate", Disruption: "1 - Low"},
		})
		gt.NoError(t, err).Required()

		_, err = uc.Session.Submit(ctx, id, false)
		gt.Bool(t, errors.Is(err, usecase.ErrNotAcknowledged)).True()

		got, err := uc.Session.Get(ctx, id)
		gt.NoError(t, err).Required()
		gt.Value(t, got.State).Equal(types.StateHazardEvaluation)
	})

	t.Run("all-default answers are rejected for the scored variant", func(t *testing.T) {
		uc := newTestUseCases(t)
		id := startEvaluation(t, uc)

		_, err := uc.Session.Submit(ctx, id, true)
		gt.Bool(t, errors.Is(err, usecase.ErrAllAnswersDefault)).True()

		// Nothing was persisted
		rows, err := uc.Admin.Master(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, rows).Length(0)
	})

	t.Run("submitted session is terminal", func(t *testing.T) {
		uc := newTestUseCases(t)
		id := startEvaluation(t, uc)

		_, err := uc.Session.RecordScoredAnswers(ctx, id, []model.ScoredAnswer{
			{Hazard: "Flood", Likelihood: "2 - Moderate", Impact: "2 - Moderate", Disruption: "2 - Moderate"},
		})
		gt.NoError(t, err).Required()
		_, err = uc.Session.Submit(ctx, id, true)
		gt.NoError(t, err).Required()

		_, err = uc.Session.Submit(ctx, id, true)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidTransition)).True()

		_, err = uc.Session.Back(ctx, id)
		gt.Bool(t, errors.Is(err, usecase.ErrInvalidTransition)).True()
	})

	t.Run("artifacts are unavailable before submit", func(t *testing.T) {
		uc := newTestUseCases(t)
		id := startEvaluation(t, uc)

		_, err := uc.Session.Artifact(ctx, id, types.ArtifactCSV)
		gt.Bool(t, errors.Is(err, usecase.ErrArtifactUnavailable)).True()
	})
}
