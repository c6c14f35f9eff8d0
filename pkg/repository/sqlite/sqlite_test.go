package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/repository/sqlite"
)

func newTestRepo(t *testing.T) *sqlite.Repository {
	t.Helper()

	repo, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "wardrisk.db"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func TestSubmissionIndex(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		repo := newTestRepo(t)

		created, err := repo.Submission().Create(ctx, &model.SubmissionSummary{
			RespondentName:    "Jane Doe",
			Ward:              "Ward 12",
			LocalMunicipality: "Mbhashe",
			Email:             "jane@example.com",
			Variant:           types.VariantScored,
			HazardCount:       3,
			RecordCount:       3,
			MaxRiskScore:      6,
			CSVPath:           "/data/out.csv",
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).NotEqual(types.SubmissionID(""))

		got, err := repo.Submission().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.RespondentName).Equal("Jane Doe")
		gt.Value(t, got.Ward).Equal("Ward 12")
		gt.Number(t, got.MaxRiskScore).Equal(6)
		gt.Value(t, got.CSVPath).Equal("/data/out.csv")
		gt.Value(t, got.CreatedAt).Equal(created.CreatedAt.Truncate(time.Millisecond))
	})

	t.Run("get unknown returns ErrNotFound", func(t *testing.T) {
		repo := newTestRepo(t)

		_, err := repo.Submission().Get(ctx, types.NewSubmissionID())
		gt.Bool(t, errors.Is(err, sqlite.ErrNotFound)).True()
	})

	t.Run("list is newest first", func(t *testing.T) {
		repo := newTestRepo(t)
		base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

		for i := range 3 {
			_, err := repo.Submission().Create(ctx, &model.SubmissionSummary{
				RespondentName: "Jane Doe",
				Ward:           "Ward 12",
				Variant:        types.VariantScored,
				CreatedAt:      base.Add(time.Duration(i) * time.Minute),
			})
			gt.NoError(t, err).Required()
		}

		listed, err := repo.Submission().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, listed).Length(3)
		gt.Value(t, listed[0].CreatedAt).Equal(base.Add(2 * time.Minute))
		gt.Value(t, listed[2].CreatedAt).Equal(base)
	})

	t.Run("sessions and tokens use the ephemeral store", func(t *testing.T) {
		repo := newTestRepo(t)

		session, err := repo.Session().Create(ctx, model.NewSession())
		gt.NoError(t, err).Required()

		got, err := repo.Session().Get(ctx, session.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.State).Equal(types.StateSelectingHazards)

		token := model.NewToken(false, time.Hour)
		gt.NoError(t, repo.PutToken(ctx, token)).Required()
		fetched, err := repo.GetToken(ctx, token.ID)
		gt.NoError(t, err).Required()
		gt.Bool(t, fetched.Admin).False()
	})
}
