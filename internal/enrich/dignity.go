package enrich

// Relation classifies how two elements sit next to each other. This package
// owns the vocabulary; composition matches on exactly these four values and
// warns when handed anything else.
type Relation string

const (
	RelationAmplified  Relation = "amplified"
	RelationSupportive Relation = "supportive"
	RelationTension    Relation = "tension"
	RelationNeutral    Relation = "neutral"
)

var oppositions = map[string]string{
	"Fire":  "Water",
	"Water": "Fire",
	"Air":   "Earth",
	"Earth": "Air",
}

var friendships = map[string]string{
	"Fire":  "Air",
	"Air":   "Fire",
	"Water": "Earth",
	"Earth": "Water",
}

// ElementalRelation returns the dignity between two elements: same element
// amplifies, friendly pairs support, opposed pairs tense, anything else
// (including unknown elements) is neutral.
func ElementalRelation(e1, e2 string) Relation {
	a, b := canonicalElement(e1), canonicalElement(e2)
	switch {
	case a == "" || b == "":
		return RelationNeutral
	case a == b:
		return RelationAmplified
	case friendships[a] == b:
		return RelationSupportive
	case oppositions[a] == b:
		return RelationTension
	default:
		return RelationNeutral
	}
}

// ElementsOpposed reports the fixed Fire-Water / Air-Earth opposition used by
// the tension detector.
func ElementsOpposed(e1, e2 string) bool {
	return ElementalRelation(e1, e2) == RelationTension
}

var relationTakeaways = map[Relation]string{
	RelationAmplified:  "These cards share one element, so their message arrives doubled — read them as a single loud voice.",
	RelationSupportive: "Their elements feed each other; the second card extends what the first begins.",
	RelationTension:    "Their elements oppose; expect friction between these positions, and information inside that friction.",
	RelationNeutral:    "Their elements neither feed nor fight each other; each card speaks for itself here.",
}

// RelationTakeaway returns the reader-facing sentence for a relation tag.
// Unknown tags fall back to the neutral sentence; callers that care about
// drift should check RelationKnown first.
func RelationTakeaway(r Relation) string {
	if s, ok := relationTakeaways[r]; ok {
		return s
	}
	return relationTakeaways[RelationNeutral]
}

func RelationKnown(r Relation) bool {
	_, ok := relationTakeaways[r]
	return ok
}
