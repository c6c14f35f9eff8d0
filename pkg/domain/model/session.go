package model

import (
	"time"

	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// AnswerKey identifies one stored descriptive answer within a session
type AnswerKey struct {
	Hazard   string
	Question string
}

// Session is one instance of the survey state machine. All in-progress
// answer state is session-scoped, so the back transition from evaluation
// to respondent info keeps previously entered choices.
type Session struct {
	ID    types.SessionID
	State types.SessionState

	SelectedHazards []string
	CustomHazard    string

	Respondent   *Respondent
	ResolvedWard string

	// Answer state keyed by (hazard) or (hazard, question); only the
	// map matching the deployment's schema variant is populated.
	ScoredAnswers      map[string]*ScoredAnswer
	DescriptiveAnswers map[AnswerKey]types.Level

	AccuracyAcknowledged bool

	Artifacts *ArtifactSet

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates a fresh session in the initial state
func NewSession() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:                 types.NewSessionID(),
		State:              types.StateSelectingHazards,
		ScoredAnswers:      make(map[string]*ScoredAnswer),
		DescriptiveAnswers: make(map[AnswerKey]types.Level),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// HazardsToAsk returns the hazards selected for evaluation: the cataloged
// selection plus the optional custom hazard, in selection order.
func (s *Session) HazardsToAsk() []string {
	hazards := make([]string, 0, len(s.SelectedHazards)+1)
	hazards = append(hazards, s.SelectedHazards...)
	if s.CustomHazard != "" {
		hazards = append(hazards, s.CustomHazard)
	}
	return hazards
}

// HasNonDefaultAnswer reports whether at least one hazard's scored answer
// moved off the lowest level in any dimension.
func (s *Session) HasNonDefaultAnswer(levels []types.Level) bool {
	for _, a := range s.ScoredAnswers {
		if !a.IsDefault(levels) {
			return true
		}
	}
	return false
}

// ArtifactSet holds the durable output paths of a submitted session
type ArtifactSet struct {
	CSVPath  string
	DOCXPath string
	PDFPath  string
	ZipPath  string
}

// Path returns the file path for the given artifact kind, or empty string
func (a *ArtifactSet) Path(kind types.ArtifactKind) string {
	if a == nil {
		return ""
	}
	switch kind {
	case types.ArtifactCSV:
		return a.CSVPath
	case types.ArtifactDOCX:
		return a.DOCXPath
	case types.ArtifactPDF:
		return a.PDFPath
	case types.ArtifactZip:
		return a.ZipPath
	default:
		return ""
	}
}

// Paths returns the non-empty artifact paths in a stable order
func (a *ArtifactSet) Paths() []string {
	if a == nil {
		return nil
	}
	var paths []string
	for _, p := range []string{a.CSVPath, a.DOCXPath, a.PDFPath, a.ZipPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
