package pdfgen

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
)

// ErrNoFontFound indicates that no usable TTF pair could be located on
// the system. The export is aborted before the first render pass and can
// be retried once a font is installed.
var ErrNoFontFound = errors.New("no usable font found")

// FontFamily points at a loadable regular/bold TTF pair on disk.
type FontFamily struct {
	Name        string
	RegularPath string
	BoldPath    string
}

// familyCandidates are directories holding conventionally named families
// (Name-Regular.ttf / Name-Bold.ttf), in priority order.
var familyCandidates = []struct{ dir, family string }{
	{"/usr/share/fonts/liberation", "LiberationSans"},
	{"/usr/share/fonts/noto", "NotoSans"},
	{"/usr/share/fonts/TTF", "LiberationSans"},
	{"/usr/share/fonts/TTF", "NotoSans"},
	{"/usr/share/fonts/truetype/liberation", "LiberationSans"},
	{"/usr/share/fonts/truetype/noto", "NotoSans"},
}

// pairCandidates are explicit regular/bold file pairs tried after the
// family directories (DejaVu as the last resort).
var pairCandidates = [][2]string{
	{"/usr/share/fonts/TTF/DejaVuSans.ttf", "/usr/share/fonts/TTF/DejaVuSans-Bold.ttf"},
	{"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
}

// AcceptedFontNames lists the families a user can install to make export
// work; shown in the no-font notice.
func AcceptedFontNames() []string {
	return []string{"Liberation Sans", "Noto Sans", "DejaVu Sans"}
}

// ResolveFont locates the first usable font family. Extra directories
// (from the application config) are searched first using the standard
// family naming, then the fixed candidate lists, then a system-wide
// lookup via findfont.
func ResolveFont(extraDirs []string) (FontFamily, error) {
	var dirs []struct{ dir, family string }
	for _, d := range extraDirs {
		dirs = append(dirs,
			struct{ dir, family string }{d, "LiberationSans"},
			struct{ dir, family string }{d, "NotoSans"},
		)
	}
	dirs = append(dirs, familyCandidates...)

	for _, c := range dirs {
		regular := filepath.Join(c.dir, c.family+"-Regular.ttf")
		bold := filepath.Join(c.dir, c.family+"-Bold.ttf")
		if loadableTTF(regular) {
			if !loadableTTF(bold) {
				bold = regular
			}
			return FontFamily{Name: c.family, RegularPath: regular, BoldPath: bold}, nil
		}
	}

	for _, pair := range pairCandidates {
		if loadableTTF(pair[0]) {
			bold := pair[1]
			if !loadableTTF(bold) {
				bold = pair[0]
			}
			return FontFamily{Name: "DejaVuSans", RegularPath: pair[0], BoldPath: bold}, nil
		}
	}

	// Last resort: let findfont walk the system font directories.
	for _, name := range []string{"LiberationSans", "NotoSans", "DejaVuSans"} {
		regular, err := findfont.Find(name + "-Regular.ttf")
		if err != nil {
			// DejaVu ships without the -Regular suffix on some systems.
			regular, err = findfont.Find(name + ".ttf")
		}
		if err != nil || !loadableTTF(regular) {
			continue
		}
		bold, err := findfont.Find(name + "-Bold.ttf")
		if err != nil || !loadableTTF(bold) {
			bold = regular
		}
		return FontFamily{Name: name, RegularPath: regular, BoldPath: bold}, nil
	}

	return FontFamily{}, ErrNoFontFound
}

// loadableTTF reports whether the file starts with TrueType sfnt data.
// A stat check alone is not enough: a truncated or foreign file would
// only fail later, inside the render pass.
func loadableTTF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	head := make([]byte, 12)
	if _, err := io.ReadFull(f, head); err != nil {
		return false
	}
	return validTTF(head)
}

// validTTF checks the sfnt version tag at the start of font data.
func validTTF(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	switch string(data[:4]) {
	case "\x00\x01\x00\x00", "true", "ttcf":
		return true
	}
	return false
}
