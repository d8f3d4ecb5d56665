// Package model holds the in-memory representation of a meeting protocol:
// header fields, the people lists, the classification, and the ordered
// entries. The document owns all persons and entries by value; loading a
// new protocol replaces the previous one completely.
package model

import (
	"sort"
	"strings"
)

// Document is the root aggregate of one meeting protocol.
type Document struct {
	// Project is the optional project name shown above the title.
	Project string
	// Title is the meeting name (main heading).
	Title string
	// DateText is the date as free text, e.g. "Montag, 05.02.2026".
	DateText string
	// Location is the venue of the meeting.
	Location string
	// Author is the person keeping the protocol (required for save/export).
	Author Person
	// Participants lists all attendees.
	Participants []Person
	// ForInformation lists people who receive the protocol for information.
	ForInformation []Person
	// About is a free-text description of the meeting.
	About string
	// Draft and Released are mutually exclusive; exactly one is true.
	Draft    bool
	Released bool
	// Classification is the confidentiality tier.
	Classification Classification
	// Entries are the protocol rows.
	Entries []Entry
	// CreatedAt/CreatedBy are set once on the first successful save and
	// never overwritten afterwards. CreatedAt uses "TT.MM.JJJJ HH:MM".
	CreatedAt string
	CreatedBy string
}

// New returns a fresh document with the model's invariants in place:
// draft status, internal classification, and one empty placeholder in
// each list.
func New() *Document {
	return &Document{
		Draft:          true,
		Classification: ClassificationInternal,
		Participants:   []Person{{}},
		ForInformation: []Person{{}},
		Entries:        []Entry{{}},
	}
}

// SetDraft toggles the draft flag. Setting it clears the released flag;
// clearing it sets the released flag, so exactly one of the two is true.
func (d *Document) SetDraft(on bool) {
	d.Draft = on
	d.Released = !on
}

// SetReleased toggles the released flag, mirroring SetDraft.
func (d *Document) SetReleased(on bool) {
	d.Released = on
	d.Draft = !on
}

// TouchCreated records the creation stamp on the first save and leaves it
// untouched afterwards.
func (d *Document) TouchCreated(stamp string) {
	if d.CreatedAt == "" {
		d.CreatedAt = stamp
		d.CreatedBy = d.Author.Name
	}
}

// ActiveParticipants returns the participants with a non-empty name.
func (d *Document) ActiveParticipants() []Person {
	return nonEmpty(d.Participants)
}

// ActiveForInformation returns the for-information persons with a
// non-empty name.
func (d *Document) ActiveForInformation() []Person {
	return nonEmpty(d.ForInformation)
}

func nonEmpty(people []Person) []Person {
	var out []Person
	for _, p := range people {
		if !p.Empty() {
			out = append(out, p)
		}
	}
	return out
}

// QualifyingEntries returns the entries that carry content and therefore
// appear in the serialized table and the PDF.
func (d *Document) QualifyingEntries() []Entry {
	var out []Entry
	for _, e := range d.Entries {
		if !e.Empty() {
			out = append(out, e)
		}
	}
	return out
}

// SortPersons orders both people lists case-insensitively by name,
// moving empty entries to the end. The sort is stable.
func (d *Document) SortPersons() {
	sortPeople(d.Participants)
	sortPeople(d.ForInformation)
}

func sortPeople(people []Person) {
	sort.SliceStable(people, func(i, j int) bool {
		a, b := people[i], people[j]
		aEmpty := strings.TrimSpace(a.Name) == ""
		bEmpty := strings.TrimSpace(b.Name) == ""
		if aEmpty != bEmpty {
			return bEmpty
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

// KnownCodes returns all initials codes (author, participants,
// for-information) sorted and deduplicated. Used to offer owner choices
// for action items.
func (d *Document) KnownCodes() []string {
	var codes []string
	if d.Author.Code != "" {
		codes = append(codes, d.Author.Code)
	}
	for _, p := range d.Participants {
		if p.Code != "" {
			codes = append(codes, p.Code)
		}
	}
	for _, p := range d.ForInformation {
		if p.Code != "" {
			codes = append(codes, p.Code)
		}
	}
	sort.Strings(codes)
	return dedup(codes)
}

func dedup(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}

// Clone returns a deep copy. Background tasks render from a clone so
// the live document stays exclusively owned by the update loop.
func (d *Document) Clone() *Document {
	c := *d
	c.Participants = append([]Person(nil), d.Participants...)
	c.ForInformation = append([]Person(nil), d.ForInformation...)
	c.Entries = append([]Entry(nil), d.Entries...)
	return &c
}

// EnsurePlaceholders restores the at-least-one-element invariant of the
// people lists and the entries list.
func (d *Document) EnsurePlaceholders() {
	if len(d.Participants) == 0 {
		d.Participants = []Person{{}}
	}
	if len(d.ForInformation) == 0 {
		d.ForInformation = []Person{{}}
	}
	if len(d.Entries) == 0 {
		d.Entries = []Entry{{}}
	}
}
