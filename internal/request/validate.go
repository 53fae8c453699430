package request

import (
	"fmt"
	"os"

	"reelkit/internal/services"
)

// Validate checks a KDM generation request. Existence checks stat the
// filesystem but nothing is created or modified.
func (r KDM) Validate() error {
	operation := "kdm generate"
	if r.Source.IsDKDM() {
		operation = "kdm generate-dkdm"
	}
	switch {
	case r.Source.IsDCP():
		if err := mustExist(operation, "dcp", r.Source.Path()); err != nil {
			return err
		}
	case r.Source.IsDKDM():
		if err := mustExist(operation, "dkdm", r.Source.Path()); err != nil {
			return err
		}
		if r.CinemaName != "" || r.ScreenName != "" {
			return invalid(operation, "cinema and screen names do not apply to DKDM sources")
		}
	default:
		return invalid(operation, "a DCP or DKDM source is required")
	}
	if r.Certificate == "" {
		return invalid(operation, "certificate path is required")
	}
	if err := mustExist(operation, "certificate", r.Certificate); err != nil {
		return err
	}
	if r.Output == "" {
		return invalid(operation, "output path is required")
	}
	if !r.Type.Valid() {
		return invalid(operation, fmt.Sprintf("unknown kdm type %q", string(r.Type)))
	}
	return validateWindow(operation, r)
}

// Validate checks a DKDM creation request.
func (r DKDMCreate) Validate() error {
	const operation = "kdm create-dkdm"
	if r.Project == "" {
		return invalid(operation, "project path is required")
	}
	if err := mustExist(operation, "project", r.Project); err != nil {
		return err
	}
	if r.Certificate == "" {
		return invalid(operation, "certificate path is required")
	}
	if err := mustExist(operation, "certificate", r.Certificate); err != nil {
		return err
	}
	if r.Output == "" {
		return invalid(operation, "output path is required")
	}
	if !r.Type.Valid() {
		return invalid(operation, fmt.Sprintf("unknown kdm type %q", string(r.Type)))
	}
	if r.ValidFrom.IsZero() {
		return invalid(operation, "valid-from is required")
	}
	if r.ValidTo.IsZero() {
		return invalid(operation, "valid-to is required")
	}
	if !r.ValidFrom.Before(r.ValidTo) {
		return invalid(operation, "valid-from must precede valid-to")
	}
	return nil
}

// Validate checks a DCP build request.
func (r DCPBuild) Validate() error {
	const operation = "dcp create"
	if r.Project == "" {
		return invalid(operation, "project path is required")
	}
	if err := mustExist(operation, "project", r.Project); err != nil {
		return err
	}
	if r.Output == "" {
		return invalid(operation, "output path is required")
	}
	return nil
}

// Validate checks a project creation request. Run Normalize first so the
// derived name and DCP output defaults are in place.
func (r ProjectCreate) Validate() error {
	const operation = "dcp create-from-video"
	if len(r.Content) == 0 {
		return invalid(operation, "at least one content path is required")
	}
	for _, path := range r.Content {
		if err := mustExist(operation, "content", path); err != nil {
			return err
		}
	}
	if r.Output == "" {
		return invalid(operation, "output path is required")
	}
	if r.Name == "" {
		return invalid(operation, "project name is required")
	}
	if !r.ContentType.Valid() {
		return invalid(operation, fmt.Sprintf("unknown content type %q", string(r.ContentType)))
	}
	if !r.ContainerRatio.Valid() {
		return invalid(operation, fmt.Sprintf("unknown container ratio %q", string(r.ContainerRatio)))
	}
	if !r.Standard.Valid() {
		return invalid(operation, fmt.Sprintf("unknown standard %q", string(r.Standard)))
	}
	if !r.Resolution.Valid() {
		return invalid(operation, fmt.Sprintf("unknown resolution %q", string(r.Resolution)))
	}
	if r.DCPOutput != "" && !r.Build {
		return invalid(operation, "dcp output is only meaningful with an immediate build")
	}
	return nil
}

func validateWindow(operation string, r KDM) error {
	if r.ValidFrom.IsZero() {
		return invalid(operation, "valid-from is required")
	}
	if r.ValidTo.IsZero() {
		return invalid(operation, "valid-to is required")
	}
	if !r.ValidFrom.Before(r.ValidTo) {
		return invalid(operation, "valid-from must precede valid-to")
	}
	return nil
}

func mustExist(operation, field, path string) error {
	if _, err := os.Stat(path); err != nil {
		return services.Wrap(services.ErrValidation, "", operation, fmt.Sprintf("%s path %q is not readable", field, path), err)
	}
	return nil
}

func invalid(operation, message string) error {
	return services.Wrap(services.ErrValidation, "", operation, message, nil)
}
