package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/marcelzimmer/mzprotokoll/internal/config"
	"github.com/marcelzimmer/mzprotokoll/internal/fileutil"
	"github.com/marcelzimmer/mzprotokoll/internal/pdfgen"
	"github.com/marcelzimmer/mzprotokoll/internal/theme"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Font     fontInfo   `json:"font"`
	Config   configInfo `json:"config"`
	Theme    themeInfo  `json:"theme"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

type fontInfo struct {
	Found       bool   `json:"found"`
	Family      string `json:"family,omitempty"`
	RegularPath string `json:"regular_path,omitempty"`
	BoldPath    string `json:"bold_path,omitempty"`
}

type configInfo struct {
	Path  string `json:"path,omitempty"`
	Found bool   `json:"found"`
}

type themeInfo struct {
	OmarchyColors bool `json:"omarchy_colors"`
}

type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	TempWritable bool   `json:"temp_writable"`
}

// runDoctorCmd executes the diagnostics and returns an exit code:
// 0 = ready (warnings included), 1 = errors found.
func runDoctorCmd(flags *cliFlags, fontDirs []string, env *Environment) int {
	result := runDoctor(flags.config, fontDirs)

	if flags.jsonOut {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

func runDoctor(configPath string, fontDirs []string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{OS: runtime.GOOS, Arch: runtime.GOARCH},
	}

	font, err := pdfgen.ResolveFont(fontDirs)
	if errors.Is(err, pdfgen.ErrNoFontFound) {
		result.Errors = append(result.Errors,
			"no usable TTF font found; install one of: "+strings.Join(pdfgen.AcceptedFontNames(), ", "))
	} else if err == nil {
		result.Font = fontInfo{
			Found:       true,
			Family:      font.Name,
			RegularPath: font.RegularPath,
			BoldPath:    font.BoldPath,
		}
	}

	path := configPath
	if path == "" {
		path, _ = config.DefaultPath()
	}
	result.Config = configInfo{Path: path, Found: fileutil.FileExists(path)}
	if !result.Config.Found {
		result.Warnings = append(result.Warnings, "no config file; using defaults")
	}

	_, hasOmarchy := theme.LoadColors()
	result.Theme = themeInfo{OmarchyColors: hasOmarchy}

	if _, cleanup, err := fileutil.WriteTempFile("probe", "tmp"); err == nil {
		cleanup()
		result.System.TempWritable = true
	} else {
		result.Errors = append(result.Errors, "temp directory not writable: "+err.Error())
	}

	switch {
	case len(result.Errors) > 0:
		result.Status = "errors"
	case len(result.Warnings) > 0:
		result.Status = "warnings"
	}
	return result
}

func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintf(w, "Status: %s\n\n", r.Status)

	if r.Font.Found {
		fmt.Fprintf(w, "Font:   %s\n", r.Font.Family)
		fmt.Fprintf(w, "        %s\n", r.Font.RegularPath)
		fmt.Fprintf(w, "        %s\n", r.Font.BoldPath)
	} else {
		fmt.Fprintln(w, "Font:   not found")
	}

	if r.Config.Found {
		fmt.Fprintf(w, "Config: %s\n", r.Config.Path)
	} else {
		fmt.Fprintf(w, "Config: none (%s)\n", r.Config.Path)
	}

	fmt.Fprintf(w, "Theme:  Omarchy colors available: %v\n", r.Theme.OmarchyColors)
	fmt.Fprintf(w, "System: %s/%s, temp writable: %v\n", r.System.OS, r.System.Arch, r.System.TempWritable)

	for _, s := range r.Warnings {
		fmt.Fprintf(w, "\nWarnung: %s\n", s)
	}
	for _, s := range r.Errors {
		fmt.Fprintf(w, "\nFehler: %s\n", s)
	}
}
