package pdfgen

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcelzimmer/mzprotokoll/internal/model"
)

func TestDocTitle(t *testing.T) {
	t.Parallel()

	d := model.New()
	if got := docTitle(d); got != "MZProtokoll" {
		t.Errorf("empty title: got %q", got)
	}

	d.Title = "Sprint-Review"
	want := "Sprint-Review — MZProtokoll von Marcel Zimmer (www.marcelzimmer.de)"
	if got := docTitle(d); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// ttfStub is the minimal byte prefix ResolveFont accepts as TrueType
// data: the sfnt version tag padded to a full offset table.
var ttfStub = []byte{0x00, 0x01, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}

func TestResolveFontExtraDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	regular := filepath.Join(dir, "LiberationSans-Regular.ttf")
	bold := filepath.Join(dir, "LiberationSans-Bold.ttf")
	for _, p := range []string{regular, bold} {
		if err := os.WriteFile(p, ttfStub, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := ResolveFont([]string{dir})
	if err != nil {
		t.Fatalf("ResolveFont: %v", err)
	}
	if got.Name != "LiberationSans" || got.RegularPath != regular || got.BoldPath != bold {
		t.Errorf("got %+v", got)
	}
}

func TestResolveFontBoldFallsBackToRegular(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	regular := filepath.Join(dir, "NotoSans-Regular.ttf")
	if err := os.WriteFile(regular, ttfStub, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveFont([]string{dir})
	if err != nil {
		t.Fatalf("ResolveFont: %v", err)
	}
	if got.BoldPath != regular {
		t.Errorf("bold = %q, want fallback to %q", got.BoldPath, regular)
	}
}

func TestResolveFontSkipsCorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "LiberationSans-Regular.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveFont([]string{dir})
	if err == nil && got.RegularPath == bad {
		t.Errorf("corrupt file %q was accepted as a font", bad)
	}
}

// testExporter resolves a real system font or skips the test, the same
// way browser-dependent tests skip without a browser installed.
func testExporter(t *testing.T) *Exporter {
	t.Helper()
	font, err := ResolveFont(nil)
	if errors.Is(err, ErrNoFontFound) {
		t.Skip("no TTF font installed; skipping render test")
	}
	if err != nil {
		t.Fatalf("ResolveFont: %v", err)
	}
	return &Exporter{Font: font}
}

func renderDocument() *model.Document {
	d := model.New()
	d.Project = "Projekt Atlas"
	d.Title = "Sprint-Review KW 35"
	d.DateText = "Donnerstag, 27.08.2026"
	d.Location = "Raum 2.01"
	d.Author = model.Person{Name: "Marcel Zimmer", Code: "MZ"}
	d.Participants = []model.Person{
		{Name: "Anna Berger", Code: "AB"},
		{Name: "Jonas Vogel", Code: "JV"},
	}
	d.About = "Review der Sprint-Ergebnisse."
	d.Entries = []model.Entry{
		{Label: "Budget", Category: model.CategoryInfo, Note: "Freigabe liegt vor, siehe [Beschluss](https://example.com/b-42)."},
		{Category: model.CategoryAction, Note: "Deployment-Plan abstimmen", Owner: "AB", Due: "04.09.2026"},
	}
	return d
}

func TestExportProducesPDF(t *testing.T) {
	t.Parallel()
	e := testExporter(t)

	var buf bytes.Buffer
	if err := e.Export(renderDocument(), &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestPageCountMatchesExport(t *testing.T) {
	t.Parallel()
	e := testExporter(t)

	d := renderDocument()
	// Inflate the document so it spans several pages.
	for i := 0; i < 40; i++ {
		d.Entries = append(d.Entries, model.Entry{
			Label:    "Punkt",
			Category: model.CategoryDecision,
			Note:     strings.Repeat("Lange Notiz mit mehreren Zeilen. ", 6),
		})
	}

	want, err := e.PageCount(d)
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}
	if want < 2 {
		t.Fatalf("expected a multi-page document, got %d page(s)", want)
	}

	final, err := e.render(d, want)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := final.PageCount(); got != want {
		t.Errorf("final pass has %d pages, measurement pass said %d", got, want)
	}
}

func TestExportRejectsMissingFontFile(t *testing.T) {
	t.Parallel()

	e := &Exporter{Font: FontFamily{
		Name:        "LiberationSans",
		RegularPath: filepath.Join(t.TempDir(), "gone.ttf"),
		BoldPath:    filepath.Join(t.TempDir(), "gone.ttf"),
	}}

	var buf bytes.Buffer
	err := e.Export(renderDocument(), &buf)
	if !errors.Is(err, ErrRender) {
		t.Fatalf("err = %v, want ErrRender", err)
	}
}

func TestExportRejectsCorruptFontFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	e := &Exporter{Font: FontFamily{Name: "Bad", RegularPath: path, BoldPath: path}}

	var buf bytes.Buffer
	err := e.Export(renderDocument(), &buf)
	if !errors.Is(err, ErrRender) {
		t.Fatalf("err = %v, want ErrRender", err)
	}
}

func TestExportMinimalDocument(t *testing.T) {
	t.Parallel()
	e := testExporter(t)

	var buf bytes.Buffer
	if err := e.Export(model.New(), &buf); err != nil {
		t.Fatalf("Export of empty document: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty output")
	}
}
