package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/umlindi-lab/wardrisk/pkg/domain/types"
)

// Question is one catalog question with its ordered labeled options
type Question struct {
	Text    string
	Options []types.Level
}

// Catalog holds the question catalog for one deployment. Option order is
// emission order and must be stable across runs.
type Catalog struct {
	Variant           types.SchemaVariant
	Hazards           []string
	Levels            []types.Level
	HazardQuestions   []Question
	CapacityQuestions []Question
}

// Validate checks structural consistency of the catalog
func (c *Catalog) Validate() error {
	if !c.Variant.IsValid() {
		return goerr.New("invalid schema variant", goerr.V("variant", c.Variant))
	}
	if len(c.Hazards) == 0 {
		return goerr.New("catalog must list at least one hazard")
	}
	if len(c.Levels) == 0 {
		return goerr.New("catalog must define scoring levels")
	}
	for _, level := range c.Levels {
		if _, err := level.Ord(); err != nil {
			return goerr.Wrap(err, "invalid scoring level", goerr.V("label", level))
		}
	}

	seen := make(map[string]bool)
	for _, q := range c.HazardQuestions {
		if q.Text == "" {
			return goerr.New("hazard question text is required")
		}
		if seen[q.Text] {
			return goerr.New("duplicate hazard question", goerr.V("text", q.Text))
		}
		seen[q.Text] = true
		if len(q.Options) < 2 {
			return goerr.New("hazard question needs at least two options", goerr.V("text", q.Text))
		}
		for _, opt := range q.Options {
			if _, err := opt.Ord(); err != nil {
				return goerr.Wrap(err, "invalid question option", goerr.V("text", q.Text), goerr.V("option", opt))
			}
		}
	}

	seen = make(map[string]bool)
	for _, q := range c.CapacityQuestions {
		if q.Text == "" {
			return goerr.New("capacity question text is required")
		}
		if seen[q.Text] {
			return goerr.New("duplicate capacity question", goerr.V("text", q.Text))
		}
		seen[q.Text] = true
		if len(q.Options) < 2 {
			return goerr.New("capacity question needs at least two options", goerr.V("text", q.Text))
		}
	}

	return nil
}

// AllQuestions returns hazard questions followed by capacity questions,
// in catalog order. This is the canonical emission order for answers.
func (c *Catalog) AllQuestions() []Question {
	questions := make([]Question, 0, len(c.HazardQuestions)+len(c.CapacityQuestions))
	questions = append(questions, c.HazardQuestions...)
	return append(questions, c.CapacityQuestions...)
}

// HasHazard reports whether name is a cataloged hazard
func (c *Catalog) HasHazard(name string) bool {
	for _, h := range c.Hazards {
		if h == name {
			return true
		}
	}
	return false
}
