package export

import (
	"context"
	"encoding/csv"
	"os"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/utils/safe"
)

// MasterDataset is the append-only cumulative record of all submissions.
// Appends are serialized with a process-wide mutex on top of O_APPEND
// writes; the dataset is never read-modify-written as a whole. The header
// is emitted only when the target file is newly created or empty.
type MasterDataset struct {
	mu      sync.Mutex
	path    string
	variant types.SchemaVariant
}

// NewMasterDataset creates an appender for the dataset file at path
func NewMasterDataset(path string, variant types.SchemaVariant) *MasterDataset {
	return &MasterDataset{path: path, variant: variant}
}

// Path returns the dataset file path
func (m *MasterDataset) Path() string {
	return m.path
}

// Append adds the submission's rows to the dataset file
func (m *MasterDataset) Append(sub *model.Submission) error {
	if sub.Variant != m.variant {
		return goerr.New("submission variant does not match dataset",
			goerr.T(types.ErrTagPersistence),
			goerr.V("dataset", m.variant), goerr.V("submission", sub.Variant))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := os.OpenFile(m.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) // #nosec G304 - configured path
	if err != nil {
		return goerr.Wrap(err, "failed to open master dataset", goerr.T(types.ErrTagPersistence), goerr.V("path", m.path))
	}
	defer f.Close() //nolint:errcheck

	info, err := f.Stat()
	if err != nil {
		return goerr.Wrap(err, "failed to stat master dataset", goerr.T(types.ErrTagPersistence), goerr.V("path", m.path))
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := cw.Write(Header(m.variant)); err != nil {
			return goerr.Wrap(err, "failed to write master header", goerr.T(types.ErrTagPersistence))
		}
	}

	for _, rec := range sub.Records {
		if err := cw.Write(recordRow(sub, rec)); err != nil {
			return goerr.Wrap(err, "failed to append master row", goerr.T(types.ErrTagPersistence))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush master dataset", goerr.T(types.ErrTagPersistence))
	}
	return f.Close()
}

// ReadAll returns every row of the dataset including the header. Used by
// the administrative review endpoint; appends never go through this path.
func (m *MasterDataset) ReadAll(ctx context.Context) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := os.Open(m.path) // #nosec G304 - configured path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to open master dataset", goerr.V("path", m.path))
	}
	defer safe.Close(ctx, f)

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read master dataset", goerr.V("path", m.path))
	}
	return rows, nil
}
