package model

import (
	"time"

	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// SubmissionSummary is the submission-index row recorded after a
// successful persist. It exists so administrative review does not need to
// parse the master dataset.
type SubmissionSummary struct {
	ID                types.SubmissionID
	RespondentName    string
	Ward              string
	LocalMunicipality string
	Email             string
	Variant           types.SchemaVariant
	HazardCount       int
	RecordCount       int
	MaxRiskScore      int
	CSVPath           string
	DOCXPath          string
	PDFPath           string
	ZipPath           string
	CreatedAt         time.Time
}

// Summarize builds a summary row from a submission and its artifacts
func Summarize(sub *Submission, artifacts *ArtifactSet, createdAt time.Time) *SubmissionSummary {
	summary := &SubmissionSummary{
		ID:                sub.ID,
		RespondentName:    sub.Respondent.Name,
		Ward:              sub.Respondent.Ward,
		LocalMunicipality: sub.Respondent.LocalMunicipality,
		Email:             sub.Respondent.Email,
		Variant:           sub.Variant,
		HazardCount:       len(sub.Hazards()),
		RecordCount:       len(sub.Records),
		CreatedAt:         createdAt,
	}

	for _, rec := range sub.Records {
		if rec.RiskScore > summary.MaxRiskScore {
			summary.MaxRiskScore = rec.RiskScore
		}
	}

	if artifacts != nil {
		summary.CSVPath = artifacts.CSVPath
		summary.DOCXPath = artifacts.DOCXPath
		summary.PDFPath = artifacts.PDFPath
		summary.ZipPath = artifacts.ZipPath
	}

	return summary
}
