package model

import "strings"

// Category classifies the nature of a protocol entry. It determines which
// table columns (owner, due date) carry meaning and how the row is rendered.
type Category int

const (
	// CategoryNone marks an entry without a chosen type.
	CategoryNone Category = iota
	// CategoryCancelled marks an aborted task.
	CategoryCancelled
	// CategoryAgenda marks an agenda point.
	CategoryAgenda
	// CategoryDecision marks a decision that was taken.
	CategoryDecision
	// CategoryDone marks a completed task.
	CategoryDone
	// CategoryIdea marks an idea or proposal.
	CategoryIdea
	// CategoryInfo marks a general piece of information.
	CategoryInfo
	// CategoryAction marks an open task with an owner and a due date.
	CategoryAction
)

// Label returns the fixed table-cell token for the category.
// CategoryNone serializes as the empty string.
func (c Category) Label() string {
	switch c {
	case CategoryCancelled:
		return "ABGEBROCHEN"
	case CategoryAgenda:
		return "AGENDA"
	case CategoryDecision:
		return "ENTSCHEIDUNG"
	case CategoryDone:
		return "FERTIG"
	case CategoryIdea:
		return "IDEE"
	case CategoryInfo:
		return "INFO"
	case CategoryAction:
		return "TODO"
	default:
		return ""
	}
}

// ParseCategory maps a table-cell token back to its category.
// Unknown or empty tokens yield CategoryNone; parsing never fails.
func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if c != CategoryNone && c.Label() == strings.TrimSpace(s) {
			return c
		}
	}
	return CategoryNone
}

// Categories returns all categories in their fixed display order.
func Categories() []Category {
	return []Category{
		CategoryNone,
		CategoryCancelled,
		CategoryAgenda,
		CategoryDecision,
		CategoryDone,
		CategoryIdea,
		CategoryInfo,
		CategoryAction,
	}
}
