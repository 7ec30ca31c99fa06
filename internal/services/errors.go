package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingTool  = errors.New("download tool not found")
	ErrInvalidURL   = errors.New("invalid video url")
	ErrNoSubtitles  = errors.New("no subtitles available")
	ErrNotFound     = errors.New("not found")
	ErrExternalTool = errors.New("external tool error")
	ErrValidation   = errors.New("validation error")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for exit-status classification. The marker
// should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps an error to the process exit status the CLI should report.
// Success is 0; each sentinel gets a stable non-zero code so scripts can
// distinguish failure causes.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrMissingTool):
		return 2
	case errors.Is(err, ErrInvalidURL):
		return 3
	case errors.Is(err, ErrNoSubtitles):
		return 4
	case errors.Is(err, ErrNotFound):
		return 5
	default:
		return 1
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failed"
	}
	return strings.Join(parts, ": ")
}
