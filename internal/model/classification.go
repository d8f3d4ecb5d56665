package model

// Classification is the confidentiality tier of a whole protocol.
// Exactly one tier is active at a time; the default is ClassificationInternal.
type Classification int

const (
	// ClassificationPublic needs no access protection.
	ClassificationPublic Classification = iota
	// ClassificationInternal is meant for internal staff only.
	ClassificationInternal
	// ClassificationConfidential restricts the audience.
	ClassificationConfidential
	// ClassificationStrictlyConfidential is the highest tier.
	ClassificationStrictlyConfidential
)

// Label returns the German display text of the tier.
func (c Classification) Label() string {
	switch c {
	case ClassificationPublic:
		return "Öffentlich"
	case ClassificationInternal:
		return "Intern"
	case ClassificationConfidential:
		return "Vertraulich"
	case ClassificationStrictlyConfidential:
		return "Streng vertraulich"
	default:
		return ""
	}
}

// Classifications returns all tiers in their fixed checkbox order.
func Classifications() []Classification {
	return []Classification{
		ClassificationPublic,
		ClassificationInternal,
		ClassificationConfidential,
		ClassificationStrictlyConfidential,
	}
}
