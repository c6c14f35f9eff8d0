package types

import "fmt"

// SchemaVariant selects which answer schema a deployment records. The two
// variants are mutually exclusive within one submission.
type SchemaVariant string

const (
	// VariantScored records likelihood/impact/disruption ordinals per
	// hazard and computes a numeric risk score. This is the canonical
	// variant.
	VariantScored SchemaVariant = "scored"

	// VariantDescriptive records the selected option text verbatim for
	// every catalog question and capacity question.
	VariantDescriptive SchemaVariant = "descriptive"
)

// IsValid checks if the schema variant is valid
func (v SchemaVariant) IsValid() bool {
	switch v {
	case VariantScored, VariantDescriptive:
		return true
	default:
		return false
	}
}

// String returns the string representation of the schema variant
func (v SchemaVariant) String() string {
	return string(v)
}

// ParseSchemaVariant parses a string into a SchemaVariant, treating empty
// as the canonical scored variant.
func ParseSchemaVariant(s string) (SchemaVariant, error) {
	if s == "" {
		return VariantScored, nil
	}
	v := SchemaVariant(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid schema variant: %s", s)
	}
	return v, nil
}
