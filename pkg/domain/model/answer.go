package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// ScoredAnswer is one hazard's answer in the scored schema variant:
// three ordinal dimensions and a derived risk score.
type ScoredAnswer struct {
	Hazard     string
	Likelihood types.Level
	Impact     types.Level
	Disruption types.Level
}

// Score computes the risk score as the product of the three ordinal
// values. The product form makes level 0 in any dimension zero the whole
// hazard: "not applicable" dominates. With the default five-point scale
// the range is 0 to 64.
func (a *ScoredAnswer) Score() (int, error) {
	like, err := a.Likelihood.Ord()
	if err != nil {
		return 0, goerr.Wrap(err, "invalid likelihood level", goerr.V("hazard", a.Hazard))
	}
	impact, err := a.Impact.Ord()
	if err != nil {
		return 0, goerr.Wrap(err, "invalid impact level", goerr.V("hazard", a.Hazard))
	}
	disruption, err := a.Disruption.Ord()
	if err != nil {
		return 0, goerr.Wrap(err, "invalid disruption level", goerr.V("hazard", a.Hazard))
	}
	return like * impact * disruption, nil
}

// IsDefault reports whether all three dimensions still sit at the lowest
// level of the allowed scale. Submission requires at least one hazard with
// a non-default answer.
func (a *ScoredAnswer) IsDefault(levels []types.Level) bool {
	return a.Likelihood.IsLowest(levels) &&
		a.Impact.IsLowest(levels) &&
		a.Disruption.IsLowest(levels)
}

// Validate checks all three dimensions against the allowed scale
func (a *ScoredAnswer) Validate(levels []types.Level) error {
	if a.Hazard == "" {
		return goerr.New("hazard name is required", goerr.T(types.ErrTagValidation))
	}
	if err := a.Likelihood.Validate(levels); err != nil {
		return goerr.Wrap(err, "invalid likelihood", goerr.T(types.ErrTagValidation), goerr.V("hazard", a.Hazard))
	}
	if err := a.Impact.Validate(levels); err != nil {
		return goerr.Wrap(err, "invalid impact", goerr.T(types.ErrTagValidation), goerr.V("hazard", a.Hazard))
	}
	if err := a.Disruption.Validate(levels); err != nil {
		return goerr.Wrap(err, "invalid disruption", goerr.T(types.ErrTagValidation), goerr.V("hazard", a.Hazard))
	}
	return nil
}

// QuestionAnswer is one (hazard, question) answer in the descriptive
// schema variant. The selected option text (including its leading numeric
// code) is stored verbatim; the score is implicit in the text.
type QuestionAnswer struct {
	Hazard   string
	Question string
	Response types.Level
}
