package main

import (
	"errors"
	"os"

	protokoll "github.com/marcelzimmer/mzprotokoll"
	"github.com/marcelzimmer/mzprotokoll/internal/config"
)

// Exit codes, Unix style: 0=success, 1=general, 2=usage, custom < 126.
const (
	ExitSuccess = 0 // Operation completed
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // File not found, permission denied
	ExitFont    = 4 // No usable font for PDF export
)

// exitCodeFor maps an error to its exit code. Wrapped errors are
// matched via errors.Is.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, protokoll.ErrNoFontFound) {
		return ExitFont
	}
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return ExitIO
	}
	if errors.Is(err, config.ErrConfigParse) || errors.Is(err, protokoll.ErrAuthorRequired) {
		return ExitUsage
	}
	return ExitGeneral
}
