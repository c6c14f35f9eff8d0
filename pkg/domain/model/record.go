package model

import "github.com/umlindi-lab/wardrisk/pkg/domain/types"

// Record is one flat row of a submission, ready for serialization. The
// populated fields depend on the schema variant: descriptive records carry
// Question/Response, scored records carry the three dimensions and the
// risk score.
type Record struct {
	Hazard string

	// Descriptive variant
	Question string
	Response string

	// Scored variant
	Likelihood types.Level
	Impact     types.Level
	Disruption types.Level
	RiskScore  int
}

// Submission is the aggregate of one respondent and all of their flat
// records. It is created atomically at submit time and never updated;
// every row shares exactly one Respondent.
type Submission struct {
	ID         types.SubmissionID
	Respondent *Respondent
	Variant    types.SchemaVariant
	Records    []Record
}

// Hazards returns the distinct hazard names in record order
func (s *Submission) Hazards() []string {
	var hazards []string
	seen := make(map[string]bool)
	for _, rec := range s.Records {
		if !seen[rec.Hazard] {
			seen[rec.Hazard] = true
			hazards = append(hazards, rec.Hazard)
		}
	}
	return hazards
}
