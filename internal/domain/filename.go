package domain

import "strings"

// invalid filename characters across the platforms we care about,
// plus path separators.
const invalidFilenameChars = `/\:*?"<>|`

// SanitizeFilename converts a document title into a filesystem-safe file
// name: invalid characters become underscores, whitespace runs collapse to
// a single space, and leading/trailing dots and spaces are trimmed.
// An empty or fully-stripped title falls back to "untitled".
func SanitizeFilename(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastWasSpace := false
	for _, r := range title {
		switch {
		case r < 0x20 || strings.ContainsRune(invalidFilenameChars, r):
			b.WriteByte('_')
			lastWasSpace = false
		case r == ' ' || r == '\t':
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasSpace = true
		default:
			b.WriteRune(r)
			lastWasSpace = false
		}
	}

	name := strings.Trim(b.String(), " .")
	if name == "" {
		return "untitled"
	}
	return name
}
