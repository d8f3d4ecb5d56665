// Package markdown implements the bidirectional mapping between the
// document model and the MZProtokoll markdown dialect. Encoding is a pure,
// total function; decoding is a line-oriented state machine that never
// fails on malformed input.
package markdown

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcelzimmer/mzprotokoll/internal/dateutil"
	"github.com/marcelzimmer/mzprotokoll/internal/model"
)

// Attribution is the fixed last line of every serialized protocol.
const Attribution = "*Erstellt mit MZProtokoll von Marcel Zimmer — [www.marcelzimmer.de](https://www.marcelzimmer.de) | [X @marcelzimmer](https://x.com/marcelzimmer) | [GitHub @marcelzimmer](https://github.com/marcelzimmer)*\n"

// Encode serializes the document as MZProtokoll markdown. The Geändert
// stamp is always recomputed from now; everything else round-trips
// through Decode, except entries that are fully empty (the encoder
// filters those out).
func Encode(d *model.Document, now time.Time) string {
	var md strings.Builder

	if d.Project != "" {
		fmt.Fprintf(&md, "**Projekt:** %s\n\n", d.Project)
	}

	fmt.Fprintf(&md, "# %s\n\n", d.Title)

	var meta []string
	if d.DateText != "" {
		meta = append(meta, "**Datum:** "+d.DateText)
	}
	if d.Location != "" {
		meta = append(meta, "**Ort:** "+d.Location)
	}
	if len(meta) > 0 {
		md.WriteString(strings.Join(meta, " | "))
		md.WriteString("\n\n")
	}

	md.WriteString("---\n\n")

	if d.Author.Name != "" {
		md.WriteString("## Protokollführer\n\n")
		md.WriteString(d.Author.Name)
		if d.Author.Code != "" {
			fmt.Fprintf(&md, " [%s]", d.Author.Code)
		}
		md.WriteString("\n\n")
	}

	writePersonList(&md, "## Teilnehmer", d.ActiveParticipants())
	writePersonList(&md, "## Zur Kenntnis", d.ActiveForInformation())

	md.WriteString("## Über dieses Meeting\n\n")
	if d.About != "" {
		md.WriteString(d.About)
		md.WriteString("\n\n")
	}

	md.WriteString("## Status\n\n")
	writeCheckbox(&md, "Entwurf", d.Draft)
	writeCheckbox(&md, "Freigegeben", !d.Draft && d.Released)
	md.WriteString("\n")

	md.WriteString("## Klassifizierung\n\n")
	for _, c := range model.Classifications() {
		writeCheckbox(&md, c.Label(), c == d.Classification)
	}
	md.WriteString("\n")

	entries := d.QualifyingEntries()
	if len(entries) > 0 {
		md.WriteString("---\n\n")
		md.WriteString("## Einträge\n\n")
		md.WriteString("| Punkt | Art | Notiz | Kümmerer | Bis |\n")
		md.WriteString("|-------|-----|-------|----------|-----|\n")
		for _, e := range entries {
			note := escapePipes(strings.ReplaceAll(e.Note, "\n", " <br> "))
			fmt.Fprintf(&md, "| %s | %s | %s | %s | %s |\n",
				escapePipes(e.Label), e.Category.Label(), note, escapePipes(e.Owner), e.Due)
		}
	}

	md.WriteString("\n---\n\n")
	if d.CreatedAt != "" {
		fmt.Fprintf(&md, "**Erstellt:** %s von %s\n\n", d.CreatedAt, d.CreatedBy)
	}
	fmt.Fprintf(&md, "**Geändert:** %s von %s\n\n", dateutil.Stamp(now), d.Author.Name)
	md.WriteString(Attribution)

	return md.String()
}

func writePersonList(md *strings.Builder, heading string, people []model.Person) {
	if len(people) == 0 {
		return
	}
	md.WriteString(heading)
	md.WriteString("\n\n")
	for _, p := range people {
		md.WriteString("- " + p.Name)
		if p.Code != "" {
			fmt.Fprintf(md, " [%s]", p.Code)
		}
		md.WriteString("\n")
	}
	md.WriteString("\n")
}

func writeCheckbox(md *strings.Builder, label string, checked bool) {
	if checked {
		md.WriteString("- [x] " + label + "\n")
	} else {
		md.WriteString("- [ ] " + label + "\n")
	}
}

// escapePipes protects literal pipe characters from being read as cell
// delimiters. Backslash itself is deliberately not escaped; the grammar
// keeps the original's known "\" + "|" ambiguity.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
