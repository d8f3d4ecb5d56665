package model

import (
	"reflect"
	"testing"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Category
	}{
		{name: "cancelled token", input: "ABGEBROCHEN", want: CategoryCancelled},
		{name: "agenda token", input: "AGENDA", want: CategoryAgenda},
		{name: "decision token", input: "ENTSCHEIDUNG", want: CategoryDecision},
		{name: "done token", input: "FERTIG", want: CategoryDone},
		{name: "idea token", input: "IDEE", want: CategoryIdea},
		{name: "info token", input: "INFO", want: CategoryInfo},
		{name: "action token", input: "TODO", want: CategoryAction},
		{name: "surrounding whitespace is ignored", input: "  TODO  ", want: CategoryAction},
		{name: "empty cell falls back to none", input: "", want: CategoryNone},
		{name: "unknown token falls back to none", input: "WICHTIG", want: CategoryNone},
		{name: "lowercase token is not recognized", input: "todo", want: CategoryNone},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseCategory(tt.input); got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategoryLabelRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		if c == CategoryNone {
			continue
		}
		if got := ParseCategory(c.Label()); got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.Label(), got, c)
		}
	}
}

func TestClassificationLabels(t *testing.T) {
	t.Parallel()

	want := []string{"Öffentlich", "Intern", "Vertraulich", "Streng vertraulich"}
	var got []string
	for _, c := range Classifications() {
		got = append(got, c.Label())
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("classification labels = %v, want %v", got, want)
	}
}

func TestAutoCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "two words", input: "Marcel Zimmer", want: "MZ"},
		{name: "single word", input: "Marcel", want: "M"},
		{name: "lowercase input is upper-cased", input: "anna lena maier", want: "ALM"},
		{name: "extra whitespace between words", input: "  Max   Mustermann ", want: "MM"},
		{name: "empty name", input: "", want: ""},
		{name: "umlaut initial", input: "Ömer Can", want: "ÖC"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := AutoCode(tt.input); got != tt.want {
				t.Errorf("AutoCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPersonSetNameDerivesCode(t *testing.T) {
	t.Parallel()

	var p Person
	p.SetName("Marcel Zimmer")
	if p.Code != "MZ" {
		t.Fatalf("Code = %q, want MZ", p.Code)
	}

	// A manual code survives further name edits.
	p.SetCode("XX")
	p.SetName("Anna Schmidt")
	if p.Code != "XX" {
		t.Errorf("manual code overwritten: Code = %q", p.Code)
	}

	// Clearing the code re-enables derivation.
	p.SetCode("")
	p.SetName("Anna Schmidt")
	if p.Code != "AS" {
		t.Errorf("Code = %q, want AS after clearing manual code", p.Code)
	}
}

func TestPersonDisplay(t *testing.T) {
	t.Parallel()

	p := Person{Name: "Marcel Zimmer", Code: "MZ"}
	if got := p.Display(); got != "Marcel Zimmer [MZ]" {
		t.Errorf("Display() = %q", got)
	}
	p.Code = ""
	if got := p.Display(); got != "Marcel Zimmer" {
		t.Errorf("Display() without code = %q", got)
	}
}

func TestEntrySetCategoryClearsLabelForActions(t *testing.T) {
	t.Parallel()

	e := Entry{Label: "Budget"}
	e.SetCategory(CategoryAction)
	if e.Label != "" {
		t.Errorf("action item kept label %q", e.Label)
	}
	e.Label = "Budget"
	e.SetCategory(CategoryInfo)
	if e.Label != "Budget" {
		t.Errorf("non-action category cleared label")
	}
}

func TestEntryEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry Entry
		want  bool
	}{
		{name: "zero entry", entry: Entry{}, want: true},
		{name: "only owner and due set", entry: Entry{Owner: "MZ", Due: "01.03.2026"}, want: true},
		{name: "label set", entry: Entry{Label: "x"}, want: false},
		{name: "category set", entry: Entry{Category: CategoryInfo}, want: false},
		{name: "note set", entry: Entry{Note: "x"}, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.entry.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDraftReleasedToggle(t *testing.T) {
	t.Parallel()

	d := New()
	if !d.Draft || d.Released {
		t.Fatalf("new document: Draft=%v Released=%v, want draft only", d.Draft, d.Released)
	}

	d.SetReleased(true)
	if d.Draft || !d.Released {
		t.Errorf("after SetReleased(true): Draft=%v Released=%v", d.Draft, d.Released)
	}

	d.SetDraft(true)
	if !d.Draft || d.Released {
		t.Errorf("after SetDraft(true): Draft=%v Released=%v", d.Draft, d.Released)
	}

	// Clearing one side sets the other.
	d.SetDraft(false)
	if d.Draft || !d.Released {
		t.Errorf("after SetDraft(false): Draft=%v Released=%v", d.Draft, d.Released)
	}
}

func TestSortPersons(t *testing.T) {
	t.Parallel()

	d := New()
	d.Participants = []Person{
		{Name: "zeta"},
		{Name: ""},
		{Name: "Anna"},
		{Name: "  "},
		{Name: "berta"},
	}
	d.SortPersons()

	var names []string
	for _, p := range d.Participants {
		names = append(names, p.Name)
	}
	want := []string{"Anna", "berta", "zeta", "", "  "}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("sorted names = %q, want %q", names, want)
	}
}

func TestKnownCodes(t *testing.T) {
	t.Parallel()

	d := New()
	d.Author = Person{Name: "Marcel Zimmer", Code: "MZ"}
	d.Participants = []Person{{Name: "Anna", Code: "AS"}, {Name: "Berta", Code: "MZ"}, {Name: "Carla"}}
	d.ForInformation = []Person{{Name: "Dora", Code: "DD"}}

	want := []string{"AS", "DD", "MZ"}
	if got := d.KnownCodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("KnownCodes() = %v, want %v", got, want)
	}
}

func TestQualifyingEntries(t *testing.T) {
	t.Parallel()

	d := New()
	d.Entries = []Entry{
		{},
		{Label: "Budget"},
		{Owner: "MZ"},
		{Category: CategoryAction, Note: "do it", Owner: "MZ", Due: "01.03.2026"},
	}
	got := d.QualifyingEntries()
	if len(got) != 2 {
		t.Fatalf("QualifyingEntries() returned %d entries, want 2", len(got))
	}
	if got[0].Label != "Budget" || got[1].Note != "do it" {
		t.Errorf("unexpected qualifying entries: %+v", got)
	}
}

func TestEnsurePlaceholders(t *testing.T) {
	t.Parallel()

	d := &Document{}
	d.EnsurePlaceholders()
	if len(d.Participants) != 1 || len(d.ForInformation) != 1 || len(d.Entries) != 1 {
		t.Errorf("placeholders missing: %d/%d/%d", len(d.Participants), len(d.ForInformation), len(d.Entries))
	}

	// Existing content is left alone.
	d.Participants = []Person{{Name: "Anna"}, {Name: "Berta"}}
	d.EnsurePlaceholders()
	if len(d.Participants) != 2 {
		t.Errorf("EnsurePlaceholders truncated participants to %d", len(d.Participants))
	}
}

func TestTouchCreatedIsSetOnce(t *testing.T) {
	t.Parallel()

	d := New()
	d.Author.Name = "Marcel Zimmer"
	d.TouchCreated("05.02.2026 09:30")
	if d.CreatedAt != "05.02.2026 09:30" || d.CreatedBy != "Marcel Zimmer" {
		t.Fatalf("first touch: CreatedAt=%q CreatedBy=%q", d.CreatedAt, d.CreatedBy)
	}

	d.Author.Name = "Someone Else"
	d.TouchCreated("06.02.2026 10:00")
	if d.CreatedAt != "05.02.2026 09:30" || d.CreatedBy != "Marcel Zimmer" {
		t.Errorf("second touch overwrote creation metadata: %q / %q", d.CreatedAt, d.CreatedBy)
	}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	d := New()
	d.Title = "Original"
	d.Participants = []Person{{Name: "Anna Berger", Code: "AB"}}
	d.Entries = []Entry{{Label: "Budget", Category: CategoryInfo, Note: "ok"}}

	c := d.Clone()
	c.Title = "Kopie"
	c.Participants[0].Name = "Geändert"
	c.Entries[0].Note = "geändert"

	if d.Title != "Original" {
		t.Errorf("clone shares the title")
	}
	if d.Participants[0].Name != "Anna Berger" {
		t.Errorf("clone shares the participants slice")
	}
	if d.Entries[0].Note != "ok" {
		t.Errorf("clone shares the entries slice")
	}
}
