package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command line options.
type cliFlags struct {
	pdfOut   string
	htmlOut  string
	check    bool
	doctor   bool
	jsonOut  bool
	version  bool
	verbose  bool
	config   string
	fontDirs []string
}

const usageText = `Usage: mzprotokoll [flags] [protokoll.md]

Renders and validates MZProtokoll Markdown files.

Flags:
      --pdf FILE       render the input protocol to a PDF file
      --html FILE      render the input protocol to a standalone HTML file
      --check          decode the input and report validation findings
      --doctor         run environment diagnostics (fonts, config, theme)
      --json           emit doctor output as JSON
      --config FILE    config file (default ~/.config/mzprotokoll/config.yaml)
      --font-dir DIR   extra font directory, may be repeated
  -v, --verbose        verbose diagnostics on stderr
      --version        print version and exit
`

// parseFlags parses argv. It returns the options and the positional
// arguments (at most one input file).
func parseFlags(argv []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mzprotokoll", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usageText) }

	f := &cliFlags{}
	fs.StringVar(&f.pdfOut, "pdf", "", "render the input protocol to a PDF file")
	fs.StringVar(&f.htmlOut, "html", "", "render the input protocol to a standalone HTML file")
	fs.BoolVar(&f.check, "check", false, "decode the input and report validation findings")
	fs.BoolVar(&f.doctor, "doctor", false, "run environment diagnostics")
	fs.BoolVar(&f.jsonOut, "json", false, "emit doctor output as JSON")
	fs.StringVar(&f.config, "config", "", "config file path")
	fs.StringArrayVar(&f.fontDirs, "font-dir", nil, "extra font directory, may be repeated")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(argv[1:]); err != nil {
		return nil, nil, err
	}

	args := fs.Args()
	if len(args) > 1 {
		return nil, nil, fmt.Errorf("at most one input file expected, got %d", len(args))
	}
	return f, args, nil
}
