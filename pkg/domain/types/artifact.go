package types

import "fmt"

// ArtifactKind identifies one of the durable output formats of a submission
type ArtifactKind string

const (
	ArtifactCSV  ArtifactKind = "csv"
	ArtifactDOCX ArtifactKind = "docx"
	ArtifactPDF  ArtifactKind = "pdf"
	ArtifactZip  ArtifactKind = "zip"
)

// AllArtifactKinds returns all valid artifact kinds
func AllArtifactKinds() []ArtifactKind {
	return []ArtifactKind{ArtifactCSV, ArtifactDOCX, ArtifactPDF, ArtifactZip}
}

// IsValid checks if the artifact kind is valid
func (k ArtifactKind) IsValid() bool {
	switch k {
	case ArtifactCSV, ArtifactDOCX, ArtifactPDF, ArtifactZip:
		return true
	default:
		return false
	}
}

// ContentType returns the MIME type served for the artifact kind
func (k ArtifactKind) ContentType() string {
	switch k {
	case ArtifactCSV:
		return "text/csv"
	case ArtifactDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ArtifactPDF:
		return "application/pdf"
	case ArtifactZip:
		return "application/zip"
	default:
		return "application/octet-stream"
	}
}

// String returns the string representation of the artifact kind
func (k ArtifactKind) String() string {
	return string(k)
}

// ParseArtifactKind parses a string into an ArtifactKind
func ParseArtifactKind(s string) (ArtifactKind, error) {
	k := ArtifactKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid artifact kind: %s", s)
	}
	return k, nil
}
