package protokoll

import (
	"errors"

	"github.com/marcelzimmer/mzprotokoll/internal/dialog"
	"github.com/marcelzimmer/mzprotokoll/internal/pdfgen"
)

// Sentinel errors surfaced to the embedding UI. Each maps to one
// dismiss-only user notice.
var (
	// ErrAuthorRequired aborts save and export before any I/O when the
	// protocol keeper's name is missing.
	ErrAuthorRequired = errors.New("Protokollführer fehlt")

	// ErrNoFontFound aborts export when no usable TTF pair exists; see
	// AcceptedFontNames for what to tell the user to install.
	ErrNoFontFound = pdfgen.ErrNoFontFound

	// ErrDialogPending rejects a second file operation while one dialog
	// is still open.
	ErrDialogPending = dialog.ErrPending
)

// AcceptedFontNames lists the font families the export can use.
func AcceptedFontNames() []string {
	return pdfgen.AcceptedFontNames()
}
