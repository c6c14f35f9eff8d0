package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

type submissionRepository struct {
	db *sql.DB
}

func (r *submissionRepository) Create(ctx context.Context, summary *model.SubmissionSummary) (*model.SubmissionSummary, error) {
	created := *summary
	if created.ID == "" {
		created.ID = types.NewSubmissionID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO submissions (
		id, respondent_name, ward, local_municipality, email, variant,
		hazard_count, record_count, max_risk_score,
		csv_path, docx_path, pdf_path, zip_path, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		created.ID.String(),
		created.RespondentName,
		created.Ward,
		created.LocalMunicipality,
		created.Email,
		created.Variant.String(),
		created.HazardCount,
		created.RecordCount,
		created.MaxRiskScore,
		created.CSVPath,
		created.DOCXPath,
		created.PDFPath,
		created.ZipPath,
		created.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert submission", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *submissionRepository) Get(ctx context.Context, id types.SubmissionID) (*model.SubmissionSummary, error) {
	const query = `SELECT id, respondent_name, ward, local_municipality, email, variant,
		hazard_count, record_count, max_risk_score,
		csv_path, docx_path, pdf_path, zip_path, created_at
	FROM submissions WHERE id = ?`

	summary, err := scanSummary(r.db.QueryRowContext(ctx, query, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(ErrNotFound, "submission not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query submission", goerr.V("id", id))
	}

	return summary, nil
}

func (r *submissionRepository) List(ctx context.Context) ([]*model.SubmissionSummary, error) {
	const query = `SELECT id, respondent_name, ward, local_municipality, email, variant,
		hazard_count, record_count, max_risk_score,
		csv_path, docx_path, pdf_path, zip_path, created_at
	FROM submissions ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list submissions")
	}
	defer rows.Close() //nolint:errcheck

	var result []*model.SubmissionSummary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan submission row")
		}
		result = append(result, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate submission rows")
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (*model.SubmissionSummary, error) {
	var summary model.SubmissionSummary
	var id, variant string
	var createdAt int64

	if err := row.Scan(
		&id,
		&summary.RespondentName,
		&summary.Ward,
		&summary.LocalMunicipality,
		&summary.Email,
		&variant,
		&summary.HazardCount,
		&summary.RecordCount,
		&summary.MaxRiskScore,
		&summary.CSVPath,
		&summary.DOCXPath,
		&summary.PDFPath,
		&summary.ZipPath,
		&createdAt,
	); err != nil {
		return nil, err
	}

	summary.ID = types.SubmissionID(id)
	summary.Variant = types.SchemaVariant(variant)
	summary.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &summary, nil
}
