package main

import (
	"fmt"
	"strings"
	"time"
)

// Validity timestamps accept a bare date or a date with minutes. Only the
// date part reaches the external tool.
var validityFormats = []string{"2006-01-02 15:04", "2006-01-02"}

func parseValidity(flag, value string) (time.Time, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("--%s is required", flag)
	}
	for _, format := range validityFormats {
		if parsed, err := time.Parse(format, cleaned); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("--%s: invalid value %q, use YYYY-MM-DD or YYYY-MM-DD HH:MM", flag, value)
}
