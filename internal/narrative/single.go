package narrative

import "strings"

func init() {
	register("single", builderFunc(buildSingle))
}

// buildSingle composes the one-card reading: opening, the card, closing.
// With a single card there are no pairs, so no connectors, tensions, or
// remedies apply.
func buildSingle(p Payload, opts Options) NarrativeResult {
	if fb := guardCards(p, 1, "single card"); fb != nil {
		return *fb
	}
	sections := []Section{
		{Title: "Opening", Body: openingLine(p, opts, "single card")},
		cardSection(p, 0, opts),
	}
	if ch := opts.Reasoning; ch != nil && len(ch.SynthesisHooks) > 0 {
		sections = append(sections, Section{Title: "The Shape of the Reading", Body: strings.Join(ch.SynthesisHooks, " ")})
	}
	sections = append(sections, Section{Title: "Closing", Body: closingLine(p, opts)})
	return okResult(assemble(sections))
}
