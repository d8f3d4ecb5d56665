package protokoll

import (
	"strings"
	"time"
	"unicode"

	"github.com/marcelzimmer/mzprotokoll/internal/dateutil"
)

// SuggestedMarkdownName builds the save-dialog default file name,
// MZProtokoll_<letters-of-title>__<ISO-date>.md.
func SuggestedMarkdownName(title string, now time.Time) string {
	return suggestedName(title, now) + ".md"
}

// SuggestedPDFName builds the export-dialog default file name.
func SuggestedPDFName(title string, now time.Time) string {
	return suggestedName(title, now) + ".pdf"
}

func suggestedName(title string, now time.Time) string {
	return "MZProtokoll_" + letters(title) + "__" + dateutil.FileDate(now)
}

// letters keeps only the letter runes, dropping spaces, digits and
// punctuation so the title fragment is filesystem-safe.
func letters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
