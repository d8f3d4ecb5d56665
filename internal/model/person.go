package model

import "strings"

// Person is someone involved in the meeting: the protocol author, a
// participant, or a for-information recipient.
type Person struct {
	// Name is the person's full name.
	Name string
	// Code is the short initials code (e.g. "MZ") used as the owner tag
	// in action-item entries.
	Code string
	// CodeManual is true once the code was entered by hand; it suppresses
	// re-derivation of the code from name changes.
	CodeManual bool
}

// AutoCode derives an initials code from the first letter of each
// whitespace-separated part of the name: "Marcel Zimmer" -> "MZ".
func AutoCode(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}

// SetName updates the name and re-derives the code unless it was
// entered manually.
func (p *Person) SetName(name string) {
	p.Name = name
	if !p.CodeManual {
		p.Code = AutoCode(name)
	}
}

// SetCode records a hand-entered code. Clearing the code re-enables
// auto-derivation.
func (p *Person) SetCode(code string) {
	p.Code = code
	p.CodeManual = code != ""
}

// Empty reports whether the person has no name.
func (p Person) Empty() bool {
	return p.Name == ""
}

// Display returns "Name [Code]", omitting the bracket part when the
// code is empty.
func (p Person) Display() string {
	if p.Code == "" {
		return p.Name
	}
	return p.Name + " [" + p.Code + "]"
}
