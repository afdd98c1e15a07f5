package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"inkwell/internal/application"
)

// readBody resolves the document body from exactly one of --text, --file,
// or --stdin. All three empty yields "".
func readBody(text, file string, stdin bool) (string, error) {
	set := 0
	if text != "" {
		set++
	}
	if file != "" {
		set++
	}
	if stdin {
		set++
	}
	if set > 1 {
		return "", &application.ValidationError{
			Field:   "text",
			Message: "--text, --file, and --stdin are mutually exclusive",
		}
	}

	switch {
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", &application.ValidationError{
				Field:   "file",
				Message: fmt.Sprintf("read %s: %v", file, err),
			}
		}
		return string(b), nil
	case stdin:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	default:
		return text, nil
	}
}

// firstArg returns the single optional positional argument; command
// validation reports it when required and missing.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}
