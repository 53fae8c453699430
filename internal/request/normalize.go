package request

import (
	"path/filepath"
	"strings"
)

// Normalize trims path fields in place. Required fields stay empty when
// absent so Validate can name them.
func (r *KDM) Normalize() {
	r.Certificate = strings.TrimSpace(r.Certificate)
	r.Output = strings.TrimSpace(r.Output)
	r.CinemaName = strings.TrimSpace(r.CinemaName)
	r.ScreenName = strings.TrimSpace(r.ScreenName)
	if r.Type == "" {
		r.Type = defaultKDMType
	}
}

// Normalize trims path fields and applies the default KDM type.
func (r *DKDMCreate) Normalize() {
	r.Project = strings.TrimSpace(r.Project)
	r.Certificate = strings.TrimSpace(r.Certificate)
	r.Output = strings.TrimSpace(r.Output)
	if r.Type == "" {
		r.Type = defaultKDMType
	}
}

// Normalize trims path fields in place.
func (r *DCPBuild) Normalize() {
	r.Project = strings.TrimSpace(r.Project)
	r.Output = strings.TrimSpace(r.Output)
}

// Normalize trims fields and derives the defaults the caller may omit:
// the project name comes from the stem of the first content file, and when
// an immediate build is requested without an explicit DCP output, the DCP
// lands in a dcp/ directory under the project output.
func (r *ProjectCreate) Normalize() {
	cleaned := make([]string, 0, len(r.Content))
	for _, path := range r.Content {
		if path = strings.TrimSpace(path); path != "" {
			cleaned = append(cleaned, path)
		}
	}
	r.Content = cleaned
	r.Output = strings.TrimSpace(r.Output)
	r.Name = strings.TrimSpace(r.Name)
	r.DCPOutput = strings.TrimSpace(r.DCPOutput)

	if r.Name == "" && len(r.Content) > 0 {
		r.Name = contentStem(r.Content[0])
	}
	if r.Build && r.DCPOutput == "" && r.Output != "" {
		r.DCPOutput = filepath.Join(r.Output, "dcp")
	}
}

func contentStem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return base
	}
	return stem
}
