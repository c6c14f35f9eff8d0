package export_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/service/export"
)

func TestMasterDatasetAppend(t *testing.T) {
	t.Run("header written exactly once", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "master.csv")
		master := export.NewMasterDataset(path, types.VariantScored)

		gt.NoError(t, master.Append(testScoredSubmission())).Required()
		gt.NoError(t, master.Append(testScoredSubmission())).Required()

		rows, err := master.ReadAll(context.Background())
		gt.NoError(t, err).Required()

		// Header plus two rows per submission
		gt.Array(t, rows).Length(5)
		gt.Value(t, rows[0]).Equal(export.Header(types.VariantScored))
		for _, row := range rows[1:] {
			gt.Value(t, row[0]).Equal("Jane Doe")
		}
	})

	t.Run("missing file yields no rows", func(t *testing.T) {
		master := export.NewMasterDataset(filepath.Join(t.TempDir(), "absent.csv"), types.VariantScored)

		rows, err := master.ReadAll(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, rows).Length(0)
	})

	t.Run("variant mismatch rejected", func(t *testing.T) {
		master := export.NewMasterDataset(filepath.Join(t.TempDir(), "master.csv"), types.VariantDescriptive)

		gt.Error(t, master.Append(testScoredSubmission()))
	})

	t.Run("concurrent appends keep rows intact", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "master.csv")
		master := export.NewMasterDataset(path, types.VariantScored)

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				gt.NoError(t, master.Append(testScoredSubmission()))
			}()
		}
		wg.Wait()

		rows, err := master.ReadAll(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, rows).Length(21)
		for _, row := range rows {
			gt.Number(t, len(row)).Equal(12)
		}
	})
}
