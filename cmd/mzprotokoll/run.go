package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	protokoll "github.com/marcelzimmer/mzprotokoll"
	"github.com/marcelzimmer/mzprotokoll/internal/config"
	"github.com/marcelzimmer/mzprotokoll/internal/dateutil"
	"github.com/marcelzimmer/mzprotokoll/internal/dialog"
	"github.com/marcelzimmer/mzprotokoll/internal/hints"
	"github.com/marcelzimmer/mzprotokoll/internal/markdown"
	"github.com/marcelzimmer/mzprotokoll/internal/model"
	"github.com/marcelzimmer/mzprotokoll/internal/preview"
)

// Environment carries the output streams so tests can capture them.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
}

// run executes the selected operations and returns the process exit
// code.
func run(flags *cliFlags, args []string, env *Environment) int {
	if flags.version {
		fmt.Fprintf(env.Stdout, "mzprotokoll %s\n", Version)
		return ExitSuccess
	}

	cfg, code := loadConfig(flags, env)
	if code != ExitSuccess {
		return code
	}
	fontDirs := append(append([]string(nil), cfg.FontDirs...), flags.fontDirs...)

	if flags.doctor {
		return runDoctorCmd(flags, fontDirs, env)
	}

	if len(args) == 0 {
		fmt.Fprintln(env.Stderr, "no input file given (try --doctor, or see --help)")
		return ExitUsage
	}
	input := args[0]

	data, err := os.ReadFile(input) // #nosec G304 -- input path is user-provided
	if err != nil {
		fmt.Fprintf(env.Stderr, "reading %s: %v\n", input, err)
		return exitCodeFor(err)
	}
	doc := markdown.Decode(string(data))

	ran := false
	if flags.check {
		ran = true
		runCheck(doc, env)
	}
	if flags.htmlOut != "" {
		ran = true
		if code := renderHTML(doc, string(data), flags.htmlOut, env); code != ExitSuccess {
			return code
		}
	}
	if flags.pdfOut != "" {
		ran = true
		if code := renderPDF(cfg, fontDirs, input, flags.pdfOut, env); code != ExitSuccess {
			return code
		}
	}
	if !ran {
		runCheck(doc, env)
	}
	return ExitSuccess
}

func loadConfig(flags *cliFlags, env *Environment) (*config.Config, int) {
	path := flags.config
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			// No home directory; fall back to defaults silently.
			return config.Default(), ExitSuccess
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(env.Stderr, "loading config: %v%s\n", err, hints.ForConfigParse(path))
		return nil, exitCodeFor(err)
	}
	return cfg, ExitSuccess
}

// runCheck prints a validation summary of the decoded protocol.
func runCheck(d *model.Document, env *Environment) {
	fmt.Fprintf(env.Stdout, "Titel:      %s\n", orDash(d.Title))
	fmt.Fprintf(env.Stdout, "Autor:      %s\n", orDash(d.Author.Display()))
	fmt.Fprintf(env.Stdout, "Status:     %s\n", statusLabel(d))
	fmt.Fprintf(env.Stdout, "Stufe:      %s\n", d.Classification.Label())
	fmt.Fprintf(env.Stdout, "Einträge:   %d\n", len(d.QualifyingEntries()))

	for i, e := range d.QualifyingEntries() {
		if e.Due != "" && !dateutil.IsValidDueDate(e.Due) {
			fmt.Fprintf(env.Stdout, "Warnung: Eintrag %d hat ein ungültiges Bis-Datum %q\n", i+1, e.Due)
		}
	}
	if d.Author.Name == "" {
		fmt.Fprintln(env.Stdout, "Warnung: Protokollführer fehlt (nötig für Speichern und Export)")
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func statusLabel(d *model.Document) string {
	if d.Released {
		return "Freigegeben"
	}
	return "Entwurf"
}

// renderHTML writes the protocol's Markdown as a standalone HTML file.
func renderHTML(d *model.Document, content, out string, env *Environment) int {
	title := d.Title
	if title == "" {
		title = "MZProtokoll"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	html, err := preview.NewRenderer().Render(ctx, title, content)
	if err != nil {
		fmt.Fprintf(env.Stderr, "rendering HTML: %v\n", err)
		return exitCodeFor(err)
	}
	if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
		fmt.Fprintf(env.Stderr, "writing %s: %v\n", out, err)
		return exitCodeFor(err)
	}
	fmt.Fprintf(env.Stdout, "HTML geschrieben: %s\n", out)
	return ExitSuccess
}

// fixedPicker answers file dialogs with predetermined paths so the
// editor orchestrator can run headless.
type fixedPicker struct {
	openPath string
	savePath string
}

var _ dialog.Picker = (*fixedPicker)(nil)

func (p *fixedPicker) PickOpen(dialog.Filter) (string, bool) {
	return p.openPath, p.openPath != ""
}

func (p *fixedPicker) PickSave(dialog.Filter, string) (string, bool) {
	return p.savePath, p.savePath != ""
}

// renderPDF drives the editor through load and export, polling the
// completion channel the way the GUI update loop does.
func renderPDF(cfg *config.Config, fontDirs []string, input, out string, env *Environment) int {
	picker := &fixedPicker{openPath: input, savePath: out}
	ed := protokoll.NewEditor(picker, protokoll.WithFontDirs(fontDirs))

	if err := ed.Load(); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	ev, ok := waitEvent(ed)
	if !ok {
		fmt.Fprintln(env.Stderr, "load was cancelled")
		return ExitGeneral
	}
	if ev.Err != nil {
		fmt.Fprintln(env.Stderr, ev.Err)
		return exitCodeFor(ev.Err)
	}

	// Headless export needs an author; fall back to the configured one.
	d := ed.Document()
	if d.Author.Name == "" {
		d.Author = model.Person{Name: cfg.AuthorName, Code: cfg.AuthorCode, CodeManual: cfg.AuthorCode != ""}
	}

	if err := ed.ExportPDF(); err != nil {
		fmt.Fprintf(env.Stderr, "%v%s\n", err, exportHint(err))
		return exitCodeFor(err)
	}
	ev, ok = waitEvent(ed)
	if !ok {
		fmt.Fprintln(env.Stderr, "export was cancelled")
		return ExitGeneral
	}
	if ev.Err != nil {
		fmt.Fprintln(env.Stderr, ev.Err)
		return exitCodeFor(ev.Err)
	}

	fmt.Fprintf(env.Stdout, "PDF geschrieben: %s\n", ev.Path)
	return ExitSuccess
}

// exportHint adds an actionable hint for the export failures a user can
// fix on their own.
func exportHint(err error) string {
	switch {
	case errors.Is(err, protokoll.ErrNoFontFound):
		return hints.ForNoFont(protokoll.AcceptedFontNames())
	case errors.Is(err, protokoll.ErrAuthorRequired):
		return hints.ForAuthorMissing()
	case errors.Is(err, protokoll.ErrDialogPending):
		return hints.ForDialogPending()
	}
	return ""
}

// waitEvent polls until the in-flight operation resolves or is
// cancelled.
func waitEvent(ed *protokoll.Editor) (protokoll.Event, bool) {
	for {
		if ev, ok := ed.Poll(); ok {
			return ev, true
		}
		if !ed.Pending() {
			return protokoll.Event{}, false
		}
		time.Sleep(time.Millisecond)
	}
}
