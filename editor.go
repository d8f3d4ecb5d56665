package protokoll

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/marcelzimmer/mzprotokoll/internal/dateutil"
	"github.com/marcelzimmer/mzprotokoll/internal/dialog"
	"github.com/marcelzimmer/mzprotokoll/internal/markdown"
	"github.com/marcelzimmer/mzprotokoll/internal/model"
	"github.com/marcelzimmer/mzprotokoll/internal/pdfgen"
)

// Op identifies which file operation a completion event belongs to.
type Op int

const (
	OpSave Op = iota
	OpLoad
	OpExport
)

// String returns the operation name for log lines and notices.
func (o Op) String() string {
	switch o {
	case OpSave:
		return "save"
	case OpLoad:
		return "load"
	case OpExport:
		return "export"
	}
	return "unknown"
}

// Event is the outcome of one background file operation, delivered via
// Poll on the update loop.
type Event struct {
	Op   Op
	Path string
	Err  error
}

// completion travels through the runner's single-slot channel. Loads
// carry the freshly decoded document.
type completion struct {
	op   Op
	path string
	doc  *model.Document
	err  error
}

var (
	markdownFilter = dialog.Filter{Label: "Markdown", Extensions: []string{"md"}}
	pdfFilter      = dialog.Filter{Label: "PDF", Extensions: []string{"pdf"}}
)

// Editor owns one protocol document and orchestrates save, load and PDF
// export around it. All methods must be called from a single goroutine
// (the UI update loop); the Editor itself dispatches dialogs and disk
// writes to background tasks and reports their outcome through Poll.
type Editor struct {
	doc      *model.Document
	path     string
	picker   dialog.Picker
	runner   dialog.Runner[completion]
	fontDirs []string
	now      func() time.Time
}

// Option customizes a new Editor.
type Option func(*Editor)

// WithDocument starts the editor with an existing document instead of a
// blank one.
func WithDocument(d *model.Document) Option {
	return func(e *Editor) { e.doc = d }
}

// WithFontDirs adds directories searched for TTF fonts before the
// system locations.
func WithFontDirs(dirs []string) Option {
	return func(e *Editor) { e.fontDirs = dirs }
}

// WithClock injects the time source; tests pin it for deterministic
// stamps and file names.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// NewEditor creates an editor around a fresh draft document. A fresh
// document gets the current date as its free-text date label.
func NewEditor(picker dialog.Picker, opts ...Option) *Editor {
	fresh := model.New()
	e := &Editor{
		doc:    fresh,
		picker: picker,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.doc == fresh {
		e.doc.DateText = dateutil.DateLabel(e.now())
	}
	return e
}

// Document returns the live document for the UI to edit.
func (e *Editor) Document() *model.Document { return e.doc }

// Path returns the known markdown file path, empty before the first
// save or load.
func (e *Editor) Path() string { return e.path }

// Pending reports whether a file dialog is still open or its outcome has
// not been polled yet.
func (e *Editor) Pending() bool { return e.runner.Pending() }

// Save writes the document as Markdown. With a known path the write is
// synchronous; otherwise a save dialog runs in the background and the
// write happens on its completion. Fails fast with ErrAuthorRequired
// before any I/O when the author name is missing.
func (e *Editor) Save() error {
	if err := e.requireAuthor(); err != nil {
		return err
	}

	now := e.now()
	e.doc.SortPersons()
	e.doc.TouchCreated(dateutil.Stamp(now))
	content := markdown.Encode(e.doc, now)

	if e.path != "" {
		return writeFile(e.path, content)
	}

	suggested := SuggestedMarkdownName(e.doc.Title, now)
	return e.runner.Go(func() (completion, bool) {
		path, ok := e.picker.PickSave(markdownFilter, suggested)
		if !ok {
			return completion{}, false
		}
		return completion{op: OpSave, path: path, err: writeFile(path, content)}, true
	})
}

// Load opens a file dialog in the background, reads the chosen file and
// decodes it. The current document is replaced when Poll consumes the
// completion, never mid-edit.
func (e *Editor) Load() error {
	return e.runner.Go(func() (completion, bool) {
		path, ok := e.picker.PickOpen(markdownFilter)
		if !ok {
			return completion{}, false
		}
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's file picker
		if err != nil {
			return completion{op: OpLoad, path: path, err: fmt.Errorf("reading %s: %w", path, err)}, true
		}
		return completion{op: OpLoad, path: path, doc: markdown.Decode(string(data))}, true
	})
}

// ExportPDF validates, auto-saves the Markdown when a path is known,
// resolves a font, then runs the export dialog and the two render
// passes in the background.
func (e *Editor) ExportPDF() error {
	if err := e.requireAuthor(); err != nil {
		return err
	}

	now := e.now()
	e.doc.SortPersons()
	e.doc.TouchCreated(dateutil.Stamp(now))
	if e.path != "" {
		if err := writeFile(e.path, markdown.Encode(e.doc, now)); err != nil {
			return err
		}
	}

	font, err := pdfgen.ResolveFont(e.fontDirs)
	if err != nil {
		return err
	}

	snapshot := e.doc.Clone()
	suggested := SuggestedPDFName(e.doc.Title, now)
	return e.runner.Go(func() (completion, bool) {
		path, ok := e.picker.PickSave(pdfFilter, suggested)
		if !ok {
			return completion{}, false
		}
		return completion{op: OpExport, path: path, err: exportPDF(font, snapshot, path)}, true
	})
}

// EncodeMarkdown returns the current document's Markdown form without
// touching disk, for previews and tooling.
func (e *Editor) EncodeMarkdown() string {
	return markdown.Encode(e.doc, e.now())
}

// Poll consumes at most one completed background operation per call and
// applies its state transition: a saved path becomes the known path, a
// loaded document replaces the current one. The returned event carries
// any error for the UI notice; the document is left untouched on
// failure.
func (e *Editor) Poll() (Event, bool) {
	c, ok := e.runner.Poll()
	if !ok {
		return Event{}, false
	}
	if c.err == nil {
		switch c.op {
		case OpSave:
			e.path = c.path
		case OpLoad:
			e.doc = c.doc
			e.path = c.path
		}
	}
	return Event{Op: c.op, Path: c.path, Err: c.err}, true
}

func (e *Editor) requireAuthor() error {
	if strings.TrimSpace(e.doc.Author.Name) == "" {
		return ErrAuthorRequired
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func exportPDF(font pdfgen.FontFamily, d *model.Document, path string) error {
	f, err := os.Create(path) // #nosec G304 -- path comes from the user's file picker
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	exp := pdfgen.Exporter{Font: font}
	if err := exp.Export(d, f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
