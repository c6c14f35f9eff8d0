package types

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Level is a labeled ordinal option. The leading integer of the label is
// the ordinal value used for scoring, e.g. "3 - High" has ordinal 3.
type Level string

// DefaultLevels returns the fixed five-point scale used by the scored
// schema variant.
func DefaultLevels() []Level {
	return []Level{
		"0 - Not applicable",
		"1 - Low",
		"2 - Moderate",
		"3 - High",
		"4 - Severe",
	}
}

// Ord returns the ordinal value encoded in the level's label.
func (l Level) Ord() (int, error) {
	label := strings.TrimSpace(string(l))
	if label == "" {
		return 0, goerr.New("level label cannot be empty")
	}

	head, _, _ := strings.Cut(label, " ")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, goerr.Wrap(err, "level label must start with an integer", goerr.V("label", label))
	}
	if n < 0 {
		return 0, goerr.New("level ordinal must not be negative", goerr.V("label", label))
	}
	return n, nil
}

// Validate checks that the level is one of the allowed labels.
func (l Level) Validate(allowed []Level) error {
	for _, a := range allowed {
		if l == a {
			return nil
		}
	}
	return goerr.New("level is not in the allowed set", goerr.V("label", l))
}

// IsLowest reports whether the level is the first entry of the allowed set.
func (l Level) IsLowest(allowed []Level) bool {
	return len(allowed) > 0 && l == allowed[0]
}

// String returns the string representation of Level
func (l Level) String() string {
	return string(l)
}
