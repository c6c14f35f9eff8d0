package export

import "regexp"

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SafeFilename replaces every character outside [A-Za-z0-9_-] with an
// underscore so derived filenames are filesystem-safe on any platform.
// Applying it twice is a no-op.
func SafeFilename(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}
