package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/utils/logging"
)

// folderLayout names the per-day response folder, e.g. "02_Jan_2006"
const folderLayout = "02_Jan_2006"

// timestampLayout is the filename timestamp; one-second granularity is
// the collision-avoidance boundary for derived filenames.
const timestampLayout = "20060102_150405"

// Store persists submissions in the three durable formats and appends
// them to the master dataset.
type Store struct {
	baseDir string
	master  *MasterDataset
	now     func() time.Time
}

// StoreOption is a functional option for Store
type StoreOption func(*Store)

// WithClock overrides the timestamp source (used by tests)
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a submission store rooted at baseDir. The master
// dataset lives at masterPath.
func NewStore(baseDir, masterPath string, variant types.SchemaVariant, opts ...StoreOption) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.T(types.ErrTagPersistence), goerr.V("dir", baseDir))
	}
	if err := os.MkdirAll(filepath.Dir(masterPath), 0o750); err != nil {
		return nil, goerr.Wrap(err, "failed to create master dataset directory", goerr.T(types.ErrTagPersistence))
	}

	s := &Store{
		baseDir: baseDir,
		master:  NewMasterDataset(masterPath, variant),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// BaseDir returns the response output directory
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Master returns the master dataset appender
func (s *Store) Master() *MasterDataset {
	return s.master
}

// Persist writes the submission as CSV, DOCX and PDF under a dated
// folder. The three writes are not transactional: a failure in a later
// format leaves earlier artifacts in place, and the caller retries the
// whole submit rather than resuming.
func (s *Store) Persist(ctx context.Context, sub *model.Submission) (*model.ArtifactSet, error) {
	now := s.now().UTC()

	dir := filepath.Join(s.baseDir, now.Format(folderLayout))
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, goerr.Wrap(err, "failed to create response folder", goerr.T(types.ErrTagPersistence), goerr.V("dir", dir))
	}

	base := fmt.Sprintf("%s_%s_%s",
		SafeFilename(sub.Respondent.Ward),
		SafeFilename(sub.Respondent.Name),
		now.Format(timestampLayout),
	)

	artifacts := &model.ArtifactSet{
		CSVPath:  filepath.Join(dir, base+".csv"),
		DOCXPath: filepath.Join(dir, base+".docx"),
		PDFPath:  filepath.Join(dir, base+".pdf"),
	}

	if err := WriteCSVFile(artifacts.CSVPath, sub); err != nil {
		return nil, err
	}
	if err := WriteDOCXFile(artifacts.DOCXPath, sub); err != nil {
		return nil, err
	}
	if err := WritePDFFile(artifacts.PDFPath, sub); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("submission persisted",
		"ward", sub.Respondent.Ward,
		"records", len(sub.Records),
		"base", base,
	)

	return artifacts, nil
}

// Append adds the submission's rows to the master dataset
func (s *Store) Append(ctx context.Context, sub *model.Submission) error {
	return s.master.Append(sub)
}

// Now returns the store's current timestamp source value
func (s *Store) Now() time.Time {
	return s.now()
}
