package narrative

import (
	"strings"

	"github.com/mirelabs/arcanum/internal/enrich"
	"github.com/mirelabs/arcanum/internal/weights"
)

// builderFunc adapts a plain function to the SpreadBuilder interface.
type builderFunc func(p Payload, opts Options) NarrativeResult

func (f builderFunc) Build(p Payload, opts Options) NarrativeResult { return f(p, opts) }

// cardSection renders the full section for the card at index i: connector
// from the previous card, the position card text, and the elemental
// takeaway for the incoming pair when the spread analysis recorded one.
func cardSection(p Payload, i int, opts Options) Section {
	c := p.Cards[i]
	var body []string

	if i > 0 {
		if conn := connectorBetween(i-1, i, p.Cards[i-1].Position, c.Position, opts); conn != "" {
			body = append(body, conn)
		}
	}

	in := CardTextInput{
		Card:      c,
		Index:     i,
		SpreadKey: p.SpreadKey,
		Context:   p.Context,
		Deck:      p.Deck,
	}
	if i > 0 {
		if rel, ok := p.Analysis.RelationBetween(i-1, i); ok && rel != enrich.RelationNeutral {
			in.PrevElement = p.Cards[i-1].Element()
		}
	}
	body = append(body, BuildPositionCardText(in, opts))

	if i > 0 {
		if rel, ok := p.Analysis.RelationBetween(i-1, i); ok && rel != enrich.RelationNeutral {
			body = append(body, relationTakeaway(rel, opts))
		}
	}

	sec := Section{Title: c.Position, Body: strings.Join(body, " ")}
	return EnhanceSection(sec, i, opts)
}

// reflectionSections appends the shared tail every multi-card reading gets:
// threads running through the spread, the synthesis, an elemental remedy
// when the mix is lopsided, and the closing.
func reflectionSections(p Payload, opts Options) []Section {
	var out []Section

	if ch := opts.Reasoning; ch != nil && len(ch.Throughlines) > 0 {
		out = append(out, Section{Title: "Threads", Body: strings.Join(ch.Throughlines, " ")})
	}
	if ch := opts.Reasoning; ch != nil && len(ch.SynthesisHooks) > 0 {
		out = append(out, Section{Title: "The Shape of the Reading", Body: strings.Join(ch.SynthesisHooks, " ")})
	}
	if remedy := BuildElementalRemedies(p.Cards, p.Context, opts.Rotation); remedy != "" {
		out = append(out, Section{Title: "Restoring Balance", Body: remedy})
	}
	out = append(out, Section{Title: "Closing", Body: closingLine(p, opts)})
	return out
}

// supportingSummary gives the low-weight positions one compact paragraph so
// no drawn card goes unmentioned, without crowding the featured ones.
func supportingSummary(p Payload, opts Options) Section {
	idxs := weights.SupportingPositions(p.SpreadKey)
	if len(idxs) == 0 {
		return Section{}
	}
	var lines []string
	for _, i := range idxs {
		if i >= len(p.Cards) {
			continue
		}
		c := p.Cards[i]
		lines = append(lines, c.Position+" holds "+c.Name+", coloring the reading from the edge rather than the center.")
	}
	return Section{Title: "In the Background", Body: strings.Join(lines, " ")}
}

// buildLinear is the pipeline shared by every straight-line spread: opening,
// one section per card in draw order, optional extras, then the reflective
// tail.
func buildLinear(p Payload, opts Options, spreadName string, expected int, extras func(Payload, Options) []Section) NarrativeResult {
	if fb := guardCards(p, expected, spreadName); fb != nil {
		return *fb
	}

	sections := []Section{{Title: "Opening", Body: openingLine(p, opts, spreadName)}}
	for i := range p.Cards {
		sections = append(sections, cardSection(p, i, opts))
	}
	if extras != nil {
		sections = append(sections, extras(p, opts)...)
	}
	sections = append(sections, reflectionSections(p, opts)...)

	return okResult(assemble(sections))
}
