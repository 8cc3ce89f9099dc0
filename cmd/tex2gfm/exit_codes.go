package main

import (
	"errors"
	"os"

	tex2gfm "github.com/alnah/go-tex2gfm"
	"github.com/alnah/go-tex2gfm/internal/config"
	"github.com/alnah/go-tex2gfm/internal/fileutil"
)

// Exit codes for the tex2gfm CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, fileutil.ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, tex2gfm.ErrInvalidLabelStyle) ||
		errors.Is(err, tex2gfm.ErrInvalidQuadCount) ||
		errors.Is(err, tex2gfm.ErrInputTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}
