package narrative

import (
	"fmt"

	"github.com/mirelabs/arcanum/internal/enrich"
)

func init() {
	register("relationship", builderFunc(buildRelationship))
}

// buildRelationship composes the five-card bond reading. The extra section
// reads the first two cards against each other, since the space between the
// two people is the real subject of the spread.
func buildRelationship(p Payload, opts Options) NarrativeResult {
	return buildLinear(p, opts, "relationship", 5, relationshipExtras)
}

func relationshipExtras(p Payload, opts Options) []Section {
	you, other := p.Cards[0], p.Cards[1]
	body := fmt.Sprintf("Set %s beside %s and you see the two energies this bond is made of.", you.Name, other.Name)

	rel := enrich.ElementalRelation(you.Element(), other.Element())
	switch rel {
	case enrich.RelationAmplified:
		body += " You are burning the same fuel, which doubles both the warmth and the blind spots."
	case enrich.RelationSupportive:
		body += " The elements feed each other here; what one of you starts, the other can sustain."
	case enrich.RelationTension:
		body += " The elements pull against each other, and the friction is information, not verdict."
	default:
		body += " " + relationTakeaway(rel, opts)
	}
	return []Section{{Title: "The Space Between", Body: body}}
}
