package narrative

import (
	"fmt"

	"github.com/mirelabs/arcanum/internal/cards"
)

func init() {
	register("decision", builderFunc(buildDecision))
}

// buildDecision composes the five-card choice reading. The extra section
// weighs the two path cards directly against each other by valence, which
// is the comparison the querent came for.
func buildDecision(p Payload, opts Options) NarrativeResult {
	return buildLinear(p, opts, "decision", 5, decisionExtras)
}

func decisionExtras(p Payload, opts Options) []Section {
	first, second := p.Cards[1], p.Cards[2]
	va, vb := first.Valence(), second.Valence()

	body := fmt.Sprintf("The first path shows %s; the second shows %s.", first.Name, second.Name)
	switch {
	case va-vb > 0.3:
		body += fmt.Sprintf(" As drawn, the first path carries the easier current (%s against %s), though easier is not the same as right.",
			cards.EmotionalQuality(va), cards.EmotionalQuality(vb))
	case vb-va > 0.3:
		body += fmt.Sprintf(" As drawn, the second path carries the easier current (%s against %s), though easier is not the same as right.",
			cards.EmotionalQuality(vb), cards.EmotionalQuality(va))
	default:
		body += " The cards refuse to tip the scale for you; the paths are closely matched, and the blind-spot card matters more than either of them."
	}
	return []Section{{Title: "Weighing the Paths", Body: body}}
}
