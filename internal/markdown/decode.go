package markdown

import (
	"strings"

	"github.com/marcelzimmer/mzprotokoll/internal/model"
)

// section identifies the part of the file the decoder is currently in.
type section int

const (
	sectionHeader section = iota
	sectionAuthor
	sectionParticipants
	sectionForInformation
	sectionAbout
	sectionStatus
	sectionClassification
	sectionEntries
)

// Decode reads MZProtokoll markdown into a fresh document. The decoder is
// best-effort and total: missing sections leave fields at their defaults,
// malformed table rows are dropped, and it never returns an error.
func Decode(content string) *model.Document {
	d := &model.Document{
		Draft:          true,
		Classification: model.ClassificationInternal,
	}

	sec := sectionHeader
	tableRowsSeen := 0
	var aboutLines []string

	flushAbout := func() {
		d.About = strings.TrimSpace(strings.Join(aboutLines, "\n"))
		aboutLines = nil
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)

		// Creation metadata sits at the end of the file but is recognized
		// anywhere, without affecting the current section.
		if strings.HasPrefix(trimmed, "**Erstellt:**") {
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "**Erstellt:**"))
			if stamp, by, ok := strings.Cut(rest, " von "); ok {
				d.CreatedAt = strings.TrimSpace(stamp)
				d.CreatedBy = strings.TrimSpace(by)
			}
			continue
		}

		// Section switch on ## headings. An unknown heading stays in the
		// current section and is processed as ordinary content.
		if strings.HasPrefix(trimmed, "## ") {
			if sec == sectionAbout {
				flushAbout()
			}
			if next, ok := sectionFor(trimmed); ok {
				sec = next
				if sec == sectionEntries {
					tableRowsSeen = 0
				}
				continue
			}
		}

		switch sec {
		case sectionHeader:
			decodeHeaderLine(d, trimmed)

		case sectionAuthor:
			if trimmed != "" && trimmed != "---" {
				name, code := ParsePersonLine(trimmed)
				d.Author.Name = name
				if code != "" {
					d.Author.Code = code
					d.Author.CodeManual = true
				}
			}

		case sectionParticipants:
			if p, ok := decodePersonItem(trimmed); ok {
				d.Participants = append(d.Participants, p)
			}

		case sectionForInformation:
			if p, ok := decodePersonItem(trimmed); ok {
				d.ForInformation = append(d.ForInformation, p)
			}

		case sectionAbout:
			if trimmed != "---" {
				aboutLines = append(aboutLines, line)
			}

		case sectionStatus:
			// Routed through the toggle setters so a released document
			// round-trips and the two flags stay mutually exclusive.
			if strings.HasPrefix(trimmed, "- [x] Entwurf") {
				d.SetDraft(true)
			} else if strings.HasPrefix(trimmed, "- [x] Freigegeben") {
				d.SetReleased(true)
			}

		case sectionClassification:
			decodeClassificationLine(d, trimmed)

		case sectionEntries:
			if strings.HasPrefix(trimmed, "|") {
				tableRowsSeen++
				// Row 1 is the header, row 2 the separator; data follows.
				if tableRowsSeen >= 3 {
					if e, ok := decodeEntryRow(trimmed); ok {
						d.Entries = append(d.Entries, e)
					}
				}
			}
		}
	}

	if sec == sectionAbout {
		flushAbout()
	}

	d.EnsurePlaceholders()
	return d
}

func sectionFor(heading string) (section, bool) {
	switch {
	case strings.HasPrefix(heading, "## Protokollführer"):
		return sectionAuthor, true
	case strings.HasPrefix(heading, "## Teilnehmer"):
		return sectionParticipants, true
	case strings.HasPrefix(heading, "## Zur Kenntnis"):
		return sectionForInformation, true
	case strings.HasPrefix(heading, "## Über dieses Meeting"):
		return sectionAbout, true
	case strings.HasPrefix(heading, "## Status"):
		return sectionStatus, true
	case strings.HasPrefix(heading, "## Klassifizierung"):
		return sectionClassification, true
	case strings.HasPrefix(heading, "## Einträge"):
		return sectionEntries, true
	default:
		return sectionHeader, false
	}
}

func decodeHeaderLine(d *model.Document, trimmed string) {
	switch {
	case strings.HasPrefix(trimmed, "**Projekt:**"):
		d.Project = strings.TrimSpace(strings.TrimPrefix(trimmed, "**Projekt:**"))
	case strings.HasPrefix(trimmed, "# "):
		d.Title = trimmed[2:]
	case strings.Contains(trimmed, "**Datum:**") || strings.Contains(trimmed, "**Ort:**"):
		for _, part := range strings.Split(trimmed, " | ") {
			part = strings.TrimSpace(part)
			if strings.HasPrefix(part, "**Datum:**") {
				d.DateText = strings.TrimSpace(strings.TrimPrefix(part, "**Datum:**"))
			} else if strings.HasPrefix(part, "**Ort:**") {
				d.Location = strings.TrimSpace(strings.TrimPrefix(part, "**Ort:**"))
			}
		}
	}
}

func decodePersonItem(trimmed string) (model.Person, bool) {
	if !strings.HasPrefix(trimmed, "- ") {
		return model.Person{}, false
	}
	name, code := ParsePersonLine(trimmed[2:])
	p := model.Person{Name: name}
	if code != "" {
		p.Code = code
		p.CodeManual = true
	}
	return p, true
}

func decodeClassificationLine(d *model.Document, trimmed string) {
	for _, c := range model.Classifications() {
		if strings.HasPrefix(trimmed, "- [x] "+c.Label()) {
			d.Classification = c
			return
		}
	}
}

func decodeEntryRow(row string) (model.Entry, bool) {
	cells := SplitTableRow(row)
	if len(cells) < 5 {
		return model.Entry{}, false
	}
	e := model.Entry{
		Label: cells[0],
		Note:  strings.ReplaceAll(cells[2], " <br> ", "\n"),
		Owner: cells[3],
		Due:   cells[4],
	}
	// SetCategory enforces the action-item rule: the label cell is
	// discarded for TODO rows regardless of its decoded value.
	e.SetCategory(model.ParseCategory(cells[1]))
	return e, true
}

// ParsePersonLine splits "Name [Code]" at the last bracket pair. When no
// bracket pair is present the whole trimmed line is the name and the code
// is empty.
func ParsePersonLine(s string) (name, code string) {
	t := strings.TrimSpace(s)
	open := strings.LastIndex(t, "[")
	closing := strings.LastIndex(t, "]")
	if open >= 0 && closing > open {
		return strings.TrimSpace(t[:open]), strings.TrimSpace(t[open+1 : closing])
	}
	return t, ""
}
