package cmd

import (
	"errors"

	"github.com/cargosync/cli/internal/crates"
	"github.com/cargosync/cli/internal/manifest"
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed indicates the command layer already logged the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, crates.ErrMalformedIdent), errors.Is(err, crates.ErrInvalidVersion):
		return ExitInvalidInput
	case errors.Is(err, crates.ErrLoadRecord), errors.Is(err, manifest.ErrLoadManifest):
		return ExitLoadError
	default:
		return ExitGeneralError
	}
}
