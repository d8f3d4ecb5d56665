// Package pdfgen renders a protocol document to paginated PDF. The page
// count is discovered by a measurement pass whose output is discarded;
// the final pass receives the count as an explicit argument and writes
// the "Seite X von Y" footer.
package pdfgen

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/marcelzimmer/mzprotokoll/internal/model"
)

// Page geometry and type sizes, in mm and pt. Both passes share these;
// any divergence would corrupt the page-count contract.
const (
	marginLeft   = 15.0
	marginTop    = 20.0
	marginRight  = 15.0
	marginBottom = 20.0

	fontName = "protokoll"

	bodySize     = 9.0
	titleSize    = 20.0
	footnoteSize = 7.0

	bodyLine     = 4.2 // line height for 9 pt text
	footnoteLine = 3.2 // line height for 7 pt text
	cellPad      = 1.5 // inner cell padding

	// Row background caps. Action-item rows get a grey fill sized from
	// the note's source line count; all other rows overpaint with white
	// up to a fixed height to cover grey bleed from the row above.
	greyPerNoteLine = 8.0
	greyBasePad     = 10.0
	whiteCap        = 40.0
)

// Column weights of the entries table (label, category, note, owner, due)
// and of the two-column info block.
var (
	entryWeights = []float64{3, 5, 13, 4, 4}
	infoWeights  = []float64{3, 11}
)

// renderer assembles the visual block sequence for one pass. A fresh
// renderer is used per pass so the footnote numbering restarts and both
// passes produce the identical structure.
type renderer struct {
	pdf   *fpdf.Fpdf
	doc   *model.Document
	links []Link
	left  float64
	width float64
}

func newRenderer(pdf *fpdf.Fpdf, doc *model.Document) *renderer {
	pageW, _ := pdf.GetPageSize()
	return &renderer{
		pdf:   pdf,
		doc:   doc,
		left:  marginLeft,
		width: pageW - marginLeft - marginRight,
	}
}

// run emits the fixed block sequence: project, title, date/location,
// rule, info block, rule, entries table, link footnotes.
func (r *renderer) run() {
	d := r.doc
	pdf := r.pdf

	if d.Project != "" {
		pdf.SetFont(fontName, "", bodySize)
		pdf.MultiCell(0, bodyLine, d.Project, "", "L", false)
	}

	pdf.SetFont(fontName, "B", titleSize)
	pdf.MultiCell(0, 9, d.Title, "", "L", false)
	pdf.Ln(2)

	var meta []string
	if d.DateText != "" {
		meta = append(meta, "Datum: "+d.DateText)
	}
	if d.Location != "" {
		meta = append(meta, "Ort: "+d.Location)
	}
	if len(meta) > 0 {
		pdf.SetFont(fontName, "", bodySize)
		pdf.MultiCell(0, bodyLine, strings.Join(meta, "  |  "), "", "L", false)
		pdf.Ln(2)
	}

	r.rule()
	r.infoBlock()
	r.rule()
	r.entriesTable()
	r.linksSection()
}

// rule draws a thin grey separator across the content width.
func (r *renderer) rule() {
	pdf := r.pdf
	pdf.Ln(1)
	y := pdf.GetY()
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.2)
	pdf.Line(r.left, y, r.left+r.width, y)
	pdf.Ln(3)
}

// infoBlock renders the two-column key/value table. Rows whose source is
// empty are omitted.
func (r *renderer) infoBlock() {
	d := r.doc

	if d.Author.Name != "" {
		r.infoText("Protokollführer", d.Author.Display())
	}
	if people := d.ActiveParticipants(); len(people) > 0 {
		r.infoText("Teilnehmer", joinPeople(people))
	}
	if people := d.ActiveForInformation(); len(people) > 0 {
		r.infoText("Zur Kenntnis", joinPeople(people))
	}
	if d.About != "" {
		r.infoText("Über dieses Meeting", d.About)
	}

	r.infoChecks("Status", []string{
		checkbox("Entwurf", d.Draft),
		checkbox("Freigegeben", d.Released),
		"",
		"",
	})

	var tiers []string
	for _, c := range model.Classifications() {
		tiers = append(tiers, checkbox(c.Label(), c == d.Classification))
	}
	r.infoChecks("Klassifizierung", tiers)

	r.pdf.Ln(2)
}

func joinPeople(people []model.Person) string {
	var parts []string
	for _, p := range people {
		parts = append(parts, p.Display())
	}
	return strings.Join(parts, ", ")
}

func checkbox(label string, checked bool) string {
	if checked {
		return "[x] " + label
	}
	return "[  ] " + label
}

func (r *renderer) infoWidths() (labelW, valueW float64) {
	total := infoWeights[0] + infoWeights[1]
	labelW = r.width * infoWeights[0] / total
	return labelW, r.width - labelW
}

// infoText renders one label/value row; the value may span lines.
func (r *renderer) infoText(label, value string) {
	pdf := r.pdf
	labelW, valueW := r.infoWidths()

	pdf.SetFont(fontName, "", bodySize)
	lines := len(pdf.SplitText(value, valueW))
	if lines < 1 {
		lines = 1
	}
	h := float64(lines)*bodyLine + 2

	r.breakIfNeeded(h)
	y := pdf.GetY()

	pdf.SetFont(fontName, "B", bodySize)
	pdf.SetXY(r.left, y+1)
	pdf.MultiCell(labelW, bodyLine, label, "", "L", false)

	pdf.SetFont(fontName, "", bodySize)
	pdf.SetXY(r.left+labelW, y+1)
	pdf.MultiCell(valueW, bodyLine, value, "", "L", false)

	pdf.SetY(y + h)
}

// infoChecks renders one label row whose value is a line of checkbox
// cells spread over quarter columns.
func (r *renderer) infoChecks(label string, cells []string) {
	pdf := r.pdf
	labelW, valueW := r.infoWidths()
	h := bodyLine + 2

	r.breakIfNeeded(h)
	y := pdf.GetY()

	pdf.SetFont(fontName, "B", bodySize)
	pdf.SetXY(r.left, y+1)
	pdf.MultiCell(labelW, bodyLine, label, "", "L", false)

	pdf.SetFont(fontName, "", bodySize)
	cellW := valueW / float64(len(cells))
	for i, cell := range cells {
		pdf.SetXY(r.left+labelW+float64(i)*cellW, y+1)
		pdf.CellFormat(cellW, bodyLine, cell, "", 0, "L", false, 0, "")
	}

	pdf.SetY(y + h)
}

func (r *renderer) entryWidths() []float64 {
	var total float64
	for _, w := range entryWeights {
		total += w
	}
	out := make([]float64, len(entryWeights))
	for i, w := range entryWeights {
		out[i] = r.width * w / total
	}
	return out
}

// entriesTable renders the header row plus one row per qualifying entry.
func (r *renderer) entriesTable() {
	entries := r.doc.QualifyingEntries()
	if len(entries) == 0 {
		return
	}

	r.headerRow()
	for _, e := range entries {
		r.entryRow(e)
	}
	r.pdf.Ln(2)
}

func (r *renderer) headerRow() {
	pdf := r.pdf
	widths := r.entryWidths()
	heads := []string{"", "Art", "Notiz", "Kümmerer", "Bis"}

	h := bodyLine + 2
	r.breakIfNeeded(h)
	y := pdf.GetY()

	pdf.SetFont(fontName, "B", bodySize)
	x := r.left
	for i, head := range heads {
		pdf.SetXY(x+cellPad, y+1)
		pdf.CellFormat(widths[i]-2*cellPad, bodyLine, head, "", 0, "L", false, 0, "")
		x += widths[i]
	}
	pdf.SetY(y + h)
}

// entryRow lays out one entry. The row height comes from the tallest
// cell; the background fill is clipped to the per-type cap so a tall
// grey row cannot bleed into its successor.
func (r *renderer) entryRow(e model.Entry) {
	pdf := r.pdf
	widths := r.entryWidths()
	action := e.Category == model.CategoryAction

	style := ""
	if action {
		style = "B"
	}
	pdf.SetFont(fontName, style, bodySize)

	// Replace inline links first so the footnote counter threads through
	// the note lines in document order.
	noteSource := strings.Split(e.Note, "\n")
	var noteText []string
	for _, line := range noteSource {
		replaced, found := ExtractLinks(line, len(r.links)+1)
		r.links = append(r.links, found...)
		noteText = append(noteText, replaced)
	}

	cells := []string{e.Label, e.Category.Label(), strings.Join(noteText, "\n"), e.Owner, e.Due}

	rowLines := 1
	for i, cell := range cells {
		if n := r.cellLines(cell, widths[i]-2*cellPad); n > rowLines {
			rowLines = n
		}
	}
	contentH := float64(rowLines)*bodyLine + 3

	capH := whiteCap
	fill := 255
	if action {
		capH = float64(len(noteSource))*greyPerNoteLine + greyBasePad
		fill = 220
	}

	r.breakIfNeeded(contentH)
	y := pdf.GetY()

	bgH := contentH
	if bgH > capH {
		bgH = capH
	}
	pdf.SetFillColor(fill, fill, fill)
	pdf.Rect(r.left, y, r.width, bgH, "F")

	x := r.left
	for i, cell := range cells {
		pdf.SetXY(x+cellPad, y+1.5)
		pdf.MultiCell(widths[i]-2*cellPad, bodyLine, cell, "", "L", false)
		x += widths[i]
	}
	pdf.SetY(y + contentH)
}

// cellLines counts the wrapped lines a cell needs at the current font.
func (r *renderer) cellLines(text string, width float64) int {
	if text == "" {
		return 1
	}
	n := len(r.pdf.SplitText(text, width))
	if n < 1 {
		return 1
	}
	return n
}

// linksSection enumerates the footnoted links collected from the notes.
func (r *renderer) linksSection() {
	if len(r.links) == 0 {
		return
	}
	pdf := r.pdf

	pdf.Ln(4)
	pdf.SetFont(fontName, "B", bodySize)
	pdf.MultiCell(0, bodyLine, "Links", "", "L", false)
	pdf.Ln(1)

	pdf.SetFont(fontName, "", footnoteSize)
	for _, l := range r.links {
		pdf.SetX(r.left)
		pdf.MultiCell(0, footnoteLine, fmt.Sprintf("[%d] %s:", l.Num, l.Label), "", "L", false)
		for _, chunk := range wrapURL(l.URL) {
			pdf.SetX(r.left + 3.5)
			pdf.MultiCell(r.width-3.5, footnoteLine, chunk, "", "L", false)
		}
	}
}

// breakIfNeeded starts a new page when the next block of height h would
// cross the bottom margin and would fit on a fresh page. Oversized blocks
// flow with the automatic page break instead.
func (r *renderer) breakIfNeeded(h float64) {
	pdf := r.pdf
	_, pageH := pdf.GetPageSize()
	usable := pageH - marginTop - marginBottom
	if pdf.GetY()+h > pageH-marginBottom && h < usable {
		pdf.AddPage()
	}
}
