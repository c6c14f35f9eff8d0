package export

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model/config"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// BuildRecords flattens a session's answer state into the ordered flat
// records of one submission. Emission order follows the hazard selection
// order and, within a hazard, the catalog question order, so the same
// inputs always produce the same sequence.
func BuildRecords(cat *config.Catalog, session *model.Session) ([]model.Record, error) {
	switch cat.Variant {
	case types.VariantScored:
		return buildScoredRecords(cat, session)
	case types.VariantDescriptive:
		return buildDescriptiveRecords(cat, session)
	default:
		return nil, goerr.New("unknown schema variant", goerr.V("variant", cat.Variant))
	}
}

func buildScoredRecords(cat *config.Catalog, session *model.Session) ([]model.Record, error) {
	hazards := session.HazardsToAsk()
	records := make([]model.Record, 0, len(hazards))

	for _, hazard := range hazards {
		answer, ok := session.ScoredAnswers[hazard]
		if !ok {
			// Unanswered hazards sit at the default (lowest) level in
			// every dimension.
			answer = &model.ScoredAnswer{
				Hazard:     hazard,
				Likelihood: cat.Levels[0],
				Impact:     cat.Levels[0],
				Disruption: cat.Levels[0],
			}
		}

		score, err := answer.Score()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to score hazard", goerr.V("hazard", hazard))
		}

		records = append(records, model.Record{
			Hazard:     hazard,
			Likelihood: answer.Likelihood,
			Impact:     answer.Impact,
			Disruption: answer.Disruption,
			RiskScore:  score,
		})
	}

	return records, nil
}

func buildDescriptiveRecords(cat *config.Catalog, session *model.Session) ([]model.Record, error) {
	hazards := session.HazardsToAsk()
	perHazard := len(cat.HazardQuestions) + len(cat.CapacityQuestions)
	records := make([]model.Record, 0, len(hazards)*perHazard)

	for _, hazard := range hazards {
		for _, q := range cat.HazardQuestions {
			records = append(records, model.Record{
				Hazard:   hazard,
				Question: q.Text,
				Response: answerOrDefault(session, hazard, q),
			})
		}
		for _, q := range cat.CapacityQuestions {
			records = append(records, model.Record{
				Hazard:   hazard,
				Question: q.Text,
				Response: answerOrDefault(session, hazard, q),
			})
		}
	}

	return records, nil
}

// answerOrDefault returns the stored selection verbatim, or the question's
// first option: every question always has a selectable default, so there
// is no unanswered state at this layer.
func answerOrDefault(session *model.Session, hazard string, q config.Question) string {
	key := model.AnswerKey{Hazard: hazard, Question: q.Text}
	if level, ok := session.DescriptiveAnswers[key]; ok {
		return level.String()
	}
	return q.Options[0].String()
}
