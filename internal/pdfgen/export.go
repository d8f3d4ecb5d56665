package pdfgen

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/marcelzimmer/mzprotokoll/internal/model"
)

// ErrRender indicates that the PDF engine rejected the document during a
// render pass or while serializing the output.
var ErrRender = errors.New("PDF rendering failed")

// Exporter renders documents with a resolved font family. The zero value
// is not usable; obtain the font via ResolveFont first.
type Exporter struct {
	Font FontFamily
}

// Export writes d as a finished PDF. The first pass renders into a
// throwaway buffer purely to learn the page count; the second pass
// renders again with that count so every footer can show the total.
func (e *Exporter) Export(d *model.Document, w io.Writer) error {
	probe, err := e.render(d, 0)
	if err != nil {
		return err
	}
	total := probe.PageCount()

	final, err := e.render(d, total)
	if err != nil {
		return err
	}
	if err := final.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}
	return nil
}

// PageCount runs the measurement pass only and reports how many pages
// the document occupies.
func (e *Exporter) PageCount(d *model.Document) (int, error) {
	probe, err := e.render(d, 0)
	if err != nil {
		return 0, err
	}
	return probe.PageCount(), nil
}

// render performs one full layout pass. With totalPages == 0 the footer
// stays blank; since the footer lives inside the bottom margin this does
// not shift any content, so both passes paginate identically.
func (e *Exporter) render(d *model.Document, totalPages int) (*fpdf.Fpdf, error) {
	regular, err := fontBytes(e.Font.RegularPath)
	if err != nil {
		return nil, err
	}
	bold, err := fontBytes(e.Font.BoldPath)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(fontName, "", regular)
	pdf.AddUTF8FontFromBytes(fontName, "B", bold)
	// A broken font must surface here; once layout starts, text
	// measurement panics instead of reporting an error.
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrRender, pdf.Error())
	}
	pdf.SetTitle(docTitle(d), true)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)

	pdf.SetFooterFunc(func() {
		if totalPages == 0 {
			return
		}
		pdf.SetFont(fontName, "", bodySize)
		pdf.SetY(-15)
		pdf.CellFormat(0, 10, fmt.Sprintf("Seite %d von %d", pdf.PageNo(), totalPages),
			"", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	newRenderer(pdf, d).run()

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrRender, pdf.Error())
	}
	return pdf, nil
}

// fontBytes reads a TTF file and rejects anything that is not sfnt data
// before it reaches the PDF engine.
func fontBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: loading font: %v", ErrRender, err)
	}
	if !validTTF(data) {
		return nil, fmt.Errorf("%w: %s is not a TrueType font", ErrRender, path)
	}
	return data, nil
}

// docTitle builds the PDF title metadata from the document title.
func docTitle(d *model.Document) string {
	if d.Title == "" {
		return "MZProtokoll"
	}
	return d.Title + " — MZProtokoll von Marcel Zimmer (www.marcelzimmer.de)"
}
