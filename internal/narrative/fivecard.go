package narrative

import "fmt"

func init() {
	register("five_card", builderFunc(buildFiveCard))
}

// buildFiveCard composes the situation/challenge/hidden/advice/outcome
// reading. The extra section sets the advice card against the likely
// outcome, since that pairing is what the querent can actually act on.
func buildFiveCard(p Payload, opts Options) NarrativeResult {
	return buildLinear(p, opts, "five card", 5, fiveCardExtras)
}

func fiveCardExtras(p Payload, opts Options) []Section {
	advice, outcome := p.Cards[3], p.Cards[4]
	body := fmt.Sprintf(
		"Hold %s and %s together: the advice card names the lever, the outcome card shows where the track currently leads. Pull the lever and the track can change.",
		advice.Name, outcome.Name)
	return []Section{{Title: "Advice Against Outcome", Body: body}}
}
