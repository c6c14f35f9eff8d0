package export_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/umlindi-lab/wardrisk/pkg/service/export"
)

func TestSafeFilename(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name untouched", "Jane_Doe-1", "Jane_Doe-1"},
		{"spaces replaced", "Jane Doe", "Jane_Doe"},
		{"punctuation replaced", "Ward 3 (North)", "Ward_3__North_"},
		{"unicode replaced", "uMlindi Wéngozi", "uMlindi_W_ngozi"},
		{"empty stays empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, export.SafeFilename(tc.input)).Equal(tc.expected)
		})
	}
}

func TestSafeFilenameIdempotent(t *testing.T) {
	inputs := []string{"Jane Doe", "Ward 3 (North)", "a/b\\c:d", "already_safe-123"}

	for _, input := range inputs {
		once := export.SafeFilename(input)
		gt.Value(t, export.SafeFilename(once)).Equal(once)
	}
}
