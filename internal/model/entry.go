package model

// Entry is a single table row of the protocol.
type Entry struct {
	// Label is the short description of the entry. It is forced empty for
	// action items, whose row repurposes the column for owner/due data.
	Label string
	// Category is the entry type.
	Category Category
	// Note is free text; it may contain line breaks and markdown-style
	// inline links of the form [text](url).
	Note string
	// Owner is the initials code of the responsible person
	// (meaningful only for CategoryAction).
	Owner string
	// Due is the due date as free text in TT.MM.JJJJ form
	// (meaningful only for CategoryAction).
	Due string
}

// SetCategory changes the entry type and enforces the action-item rule:
// action items carry no label.
func (e *Entry) SetCategory(c Category) {
	e.Category = c
	if c == CategoryAction {
		e.Label = ""
	}
}

// Empty reports whether the entry carries no content. Empty entries are
// skipped by the encoder and the PDF layout.
func (e Entry) Empty() bool {
	return e.Label == "" && e.Category == CategoryNone && e.Note == ""
}
