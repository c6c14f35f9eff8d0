package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umlindi-lab/wardrisk/pkg/domain/model"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

func TestScoredAnswerScore(t *testing.T) {
	t.Run("product of the three dimensions", func(t *testing.T) {
		a := model.ScoredAnswer{
			Hazard:     "Flood",
			Likelihood: "3 - High",
			Impact:     "2 - Moderate",
			Disruption: "1 - Low",
		}
		score, err := a.Score()
		gt.NoError(t, err).Required()
		gt.Number(t, score).Equal(6)
	})

	t.Run("zero in any dimension zeroes the hazard", func(t *testing.T) {
		a := model.ScoredAnswer{
			Hazard:     "Drought",
			Likelihood: "0 - Not applicable",
			Impact:     "4 - Severe",
			Disruption: "4 - Severe",
		}
		score, err := a.Score()
		gt.NoError(t, err).Required()
		gt.Number(t, score).Equal(0)
	})

	t.Run("maximum with the default scale is 64", func(t *testing.T) {
		a := model.ScoredAnswer{
			Hazard:     "Veld Fire",
			Likelihood: "4 - Severe",
			Impact:     "4 - Severe",
			Disruption: "4 - Severe",
		}
		score, err := a.Score()
		gt.NoError(t, err).Required()
		gt.Number(t, score).Equal(64)
	})

	t.Run("unparsable level fails", func(t *testing.T) {
		a := model.ScoredAnswer{
			Hazard:     "Flood",
			Likelihood: "High",
			Impact:     "2 - Moderate",
			Disruption: "1 - Low",
		}
		_, err := a.Score()
		gt.Error(t, err)
	})
}

func TestScoredAnswerScoreRange(t *testing.T) {
	levels := types.DefaultLevels()

	// Exhaustive over the default scale
	for _, like := range levels {
		for _, impact := range levels {
			for _, disruption := range levels {
				a := model.ScoredAnswer{
					Hazard:     "Flood",
					Likelihood: like,
					Impact:     impact,
					Disruption: disruption,
				}
				score, err := a.Score()
				gt.NoError(t, err).Required()
				if score < 0 || score > 64 {
					t.Fatalf("score out of range: %d (%s, %s, %s)", score, like, impact, disruption)
				}
			}
		}
	}
}

func TestScoredAnswerIsDefault(t *testing.T) {
	levels := types.DefaultLevels()

	def := model.ScoredAnswer{
		Hazard:     "Flood",
		Likelihood: levels[0],
		Impact:     levels[0],
		Disruption: levels[0],
	}
	gt.Bool(t, def.IsDefault(levels)).True()

	moved := def
	moved.Impact = levels[1]
	gt.Bool(t, moved.IsDefault(levels)).False()
}

func TestScoredAnswerValidate(t *testing.T) {
	levels := types.DefaultLevels()

	t.Run("valid answer", func(t *testing.T) {
		a := model.ScoredAnswer{
			Hazard:     "Flood",
			Likelihood: "1 - Low",
			Impact:     "1 - Low",
			Disruption: "1 - Low",
		}
		gt.NoError(t, a.Validate(levels))
	})

	t.Run("missing hazard", func(t *testing.T) {
		a := model.ScoredAnswer{
			Likelihood: "1 - Low",
			Impact:     "1 - Low",
			Disruption: "1 - Low",
		}
		gt.Error(t, a.Validate(levels))
	})

	t.Run("off-scale level", func(t *testing.T) {
		a := model.ScoredAnswer{
			Hazard:     "Flood",
			Likelihood: "9 - Apocalyptic",
			Impact:     "1 - Low",
			Disruption: "1 - Low",
		}
		gt.Error(t, a.Validate(levels))
	})
}
