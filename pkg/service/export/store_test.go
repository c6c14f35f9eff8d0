package export_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/service/export"
)

func TestStorePersist(t *testing.T) {
	baseDir := t.TempDir()
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	store, err := export.NewStore(
		baseDir,
		filepath.Join(baseDir, "master.csv"),
		types.VariantScored,
		export.WithClock(func() time.Time { return fixed }),
	)
	gt.NoError(t, err).Required()

	sub := testScoredSubmission()
	artifacts, err := store.Persist(context.Background(), sub)
	gt.NoError(t, err).Required()

	t.Run("artifacts land in the dated folder", func(t *testing.T) {
		dir := filepath.Join(baseDir, "14_Mar_2026")
		base := "Ward_12_Jane_Doe_20260314_093000"

		gt.Value(t, artifacts.CSVPath).Equal(filepath.Join(dir, base+".csv"))
		gt.Value(t, artifacts.DOCXPath).Equal(filepath.Join(dir, base+".docx"))
		gt.Value(t, artifacts.PDFPath).Equal(filepath.Join(dir, base+".pdf"))

		for _, path := range artifacts.Paths() {
			info, err := os.Stat(path)
			gt.NoError(t, err).Required()
			if info.Size() == 0 {
				t.Fatalf("empty artifact: %s", path)
			}
		}
	})

	t.Run("persisted CSV reads back", func(t *testing.T) {
		got, err := export.ReadCSVFile(context.Background(), artifacts.CSVPath, types.VariantScored)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Records).Equal(sub.Records)
	})

	t.Run("append feeds the master dataset", func(t *testing.T) {
		gt.NoError(t, store.Append(context.Background(), sub)).Required()

		rows, err := store.Master().ReadAll(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, rows).Length(3)
	})
}
