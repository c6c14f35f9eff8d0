package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/interfaces"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
	"github.com/umlindi-lab/wardrisk/pkg/repository/memory"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = memory.ErrNotFound

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	respondent_name TEXT NOT NULL,
	ward TEXT NOT NULL,
	local_municipality TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	variant TEXT NOT NULL,
	hazard_count INTEGER NOT NULL,
	record_count INTEGER NOT NULL,
	max_risk_score INTEGER NOT NULL,
	csv_path TEXT NOT NULL DEFAULT '',
	docx_path TEXT NOT NULL DEFAULT '',
	pdf_path TEXT NOT NULL DEFAULT '',
	zip_path TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions (created_at DESC);
`

// Repository persists the submission index in SQLite. Sessions and auth
// tokens are ephemeral by design and stay in the in-memory store.
type Repository struct {
	db       *sql.DB
	fallback *memory.Memory
	sub      *submissionRepository
}

var _ interfaces.Repository = &Repository{}

// New opens (or creates) the SQLite database at path and applies the
// schema. The caller is responsible for calling Close().
func New(ctx context.Context, path string) (*Repository, error) {
	if path == "" {
		return nil, goerr.New("sqlite database path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open sqlite database", goerr.V("path", path))
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to ping sqlite database", goerr.V("path", path))
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to apply sqlite schema", goerr.V("path", path))
	}

	return &Repository{
		db:       db,
		fallback: memory.New(),
		sub:      &submissionRepository{db: db},
	}, nil
}

func (r *Repository) Session() interfaces.SessionRepository {
	return r.fallback.Session()
}

func (r *Repository) Submission() interfaces.SubmissionRepository {
	return r.sub
}

func (r *Repository) PutToken(ctx context.Context, token *model.Token) error {
	return r.fallback.PutToken(ctx, token)
}

func (r *Repository) GetToken(ctx context.Context, tokenID types.TokenID) (*model.Token, error) {
	return r.fallback.GetToken(ctx, tokenID)
}

func (r *Repository) DeleteToken(ctx context.Context, tokenID types.TokenID) error {
	return r.fallback.DeleteToken(ctx, tokenID)
}

func (r *Repository) Close() error {
	return r.db.Close()
}
