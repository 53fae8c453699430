// Package services defines the failure taxonomy shared by the DCP-o-matic
// tool clients and the CLI front-end.
//
// Every failure surfaced by reelkit is tagged with one of the exported
// sentinel errors so callers can branch with errors.Is: request problems
// caught before any subprocess runs (ErrValidation), environment problems
// (ErrExecutableNotFound, ErrTimeout), and non-zero tool exits classified
// by stderr inspection (ErrInvalidInput, ErrExternalTool, ErrUnknown).
package services
