package main

import (
	"errors"
	"os"

	md2latex "github.com/alnah/go-md2latex"
	"github.com/alnah/go-md2latex/internal/config"
	"github.com/alnah/go-md2latex/internal/macro"
)

// Exit codes for md2latex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or macro tables
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
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteLatex) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/table errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidWrapCommand) ||
		errors.Is(err, md2latex.ErrEmptyMarkdown) ||
		errors.Is(err, md2latex.ErrInvalidMacroPath) ||
		errors.Is(err, macro.ErrTableRead) ||
		errors.Is(err, macro.ErrTableParse) ||
		errors.Is(err, macro.ErrMissingColumn) ||
		errors.Is(err, macro.ErrEmptyTable) ||
		errors.Is(err, macro.ErrUnknownMatchMode) ||
		errors.Is(err, macro.ErrEmptySearch) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
