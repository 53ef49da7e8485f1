package narrative

import "fmt"

func init() {
	register("three_card", builderFunc(buildThreeCard))
}

// buildThreeCard composes the past/present/future reading. The extra section
// traces the journey from the first card to the last in one explicit line.
func buildThreeCard(p Payload, opts Options) NarrativeResult {
	return buildLinear(p, opts, "three card", 3, threeCardExtras)
}

func threeCardExtras(p Payload, opts Options) []Section {
	first, last := p.Cards[0], p.Cards[2]
	body := fmt.Sprintf("Read as one motion, the line runs from %s toward %s.", first.Name, last.Name)
	if ch := opts.Reasoning; ch != nil {
		for _, t := range ch.Tensions {
			if t.IsJourneyTension {
				body += " " + t.Description
				break
			}
		}
		if ch.EmotionalArc.Summary != "" {
			body += " " + ch.EmotionalArc.Summary
		}
	}
	return []Section{{Title: "The Line of the Story", Body: body}}
}
