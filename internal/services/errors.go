package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks requests that violate an invariant before any
	// subprocess is spawned.
	ErrValidation = errors.New("validation error")
	// ErrExecutableNotFound marks tools that cannot be resolved on PATH.
	ErrExecutableNotFound = errors.New("executable not found")
	// ErrTimeout marks tool runs that exceeded the configured ceiling.
	ErrTimeout = errors.New("process timeout")
	// ErrInvalidInput marks arguments the external tool itself rejected.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExternalTool marks runs where the tool reported a domain failure.
	ErrExternalTool = errors.New("external tool failure")
	// ErrUnknown marks non-zero exits that matched no recognized category.
	ErrUnknown = errors.New("unknown failure")
)

// Wrap builds an error message that includes tool and operation context
// while tagging it with the provided marker for later classification. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, tool, operation, message string, err error) error {
	detail := buildDetail(tool, operation, message)
	if marker == nil {
		marker = ErrUnknown
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Stderr substrings the DCP-o-matic tools emit for the two failure
// categories worth distinguishing. Matching is case-insensitive.
var (
	invalidInputMarkers = []string{
		"unrecognised option",
		"unknown option",
		"invalid argument",
		"could not parse",
		"usage:",
	}
	toolFailureMarkers = []string{
		"could not load",
		"could not open",
		"could not find",
		"corrupt",
		"failed to",
	}
)

// ClassifyExit maps a non-zero tool exit to the matching sentinel by
// inspecting stderr. Unrecognized output classifies as ErrUnknown so the
// raw diagnostics stay attached to the error.
func ClassifyExit(stderr string) error {
	lowered := strings.ToLower(stderr)
	for _, marker := range invalidInputMarkers {
		if strings.Contains(lowered, marker) {
			return ErrInvalidInput
		}
	}
	for _, marker := range toolFailureMarkers {
		if strings.Contains(lowered, marker) {
			return ErrExternalTool
		}
	}
	return ErrUnknown
}

func buildDetail(tool, operation, message string) string {
	parts := make([]string, 0, 3)
	if tool = strings.TrimSpace(tool); tool != "" {
		parts = append(parts, tool)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "tool failure"
	}
	return strings.Join(parts, ": ")
}
