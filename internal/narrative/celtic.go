package narrative

import (
	"fmt"
	"strings"

	"github.com/mirelabs/arcanum/internal/enrich"
	"github.com/mirelabs/arcanum/internal/weights"
)

func init() {
	register("celtic_cross", builderFunc(buildCelticCross))
}

// Celtic Cross position indices, named once.
const (
	ccPresent = iota
	ccChallenge
	ccFoundation
	ccRecentPast
	ccCrown
	ccNearFuture
	ccAdvice
	ccExternal
	ccHopesFears
	ccOutcome
)

// buildCelticCross composes the ten-card reading as grouped movements
// rather than a flat card-by-card march: the nucleus, the timeline, the
// axis of consciousness, then the staff, followed by cross-checks and the
// reflective tail.
func buildCelticCross(p Payload, opts Options) NarrativeResult {
	if fb := guardCards(p, 10, "Celtic Cross"); fb != nil {
		return *fb
	}

	sections := []Section{
		{Title: "Opening", Body: openingLine(p, opts, "Celtic Cross")},
		attentionIntro(p, opts),
		nucleusSection(p, opts),
		timelineSection(p, opts),
		consciousnessSection(p, opts),
	}
	sections = append(sections, staffSections(p, opts)...)
	sections = append(sections,
		crossChecksSection(p, opts),
		reflectionsSection(p, opts),
		synthesisSection(opts),
		nextStepSection(p),
		supportingSummary(p, opts),
		Section{Title: "Closing", Body: closingLine(p, opts)},
	)
	return okResult(assemble(sections))
}

// attentionIntro tells the querent where the weight of this particular
// draw sits before the walk through the positions begins.
func attentionIntro(p Payload, opts Options) Section {
	ranked := weights.RankedPositions(p.SpreadKey)
	var body string
	if len(ranked) > 0 && ranked[0] < len(p.Cards) {
		lead := p.Cards[ranked[0]]
		body = fmt.Sprintf("Ten cards are on the table, but they do not all speak at the same volume. In this layout, %s in the position %q will carry the most weight.", lead.Name, lead.Position)
	}
	if ch := opts.Reasoning; ch != nil && ch.Pivot.Index >= 0 && ch.Pivot.Card != "" {
		body += fmt.Sprintf(" And watch %s as you read: %s", ch.Pivot.Card, ch.Pivot.Reason)
	}
	return Section{Title: "Where to Look", Body: body}
}

// nucleusSection reads the crossing pair at the center of the spread.
func nucleusSection(p Payload, opts Options) Section {
	body := []string{
		"At the center of the cross, two cards lie against each other.",
		cardBlock(p, ccPresent, opts),
		cardBlock(p, ccChallenge, opts),
	}
	rel := enrich.ElementalRelation(p.Cards[ccPresent].Element(), p.Cards[ccChallenge].Element())
	body = append(body, "Between them: "+strings.TrimSuffix(relationTakeaway(rel, opts), "."), "— and that friction or flow is the engine of the whole spread.")
	return Section{Title: "The Heart of the Matter", Body: strings.Join(body, " ")}
}

// timelineSection walks recent past, present, and near future as one
// movement, using the analysis groups when present.
func timelineSection(p Payload, opts Options) Section {
	order := []int{ccRecentPast, ccPresent, ccNearFuture}
	if p.Analysis != nil {
		if g, ok := p.Analysis.Groups["timeline"]; ok && len(g) == 3 {
			order = g
		}
	}
	body := []string{"The spread also reads left to right as time."}
	for n, i := range order {
		if i == ccPresent {
			// Already read in full at the nucleus; keep the timeline moving.
			body = append(body, fmt.Sprintf("Through the present, where %s still holds the center,", p.Cards[i].Name))
			continue
		}
		block := cardBlock(p, i, opts)
		if n > 0 {
			if conn := connectorBetween(order[n-1], i, p.Cards[order[n-1]].Position, p.Cards[i].Position, opts); conn != "" {
				block = conn + " " + block
			}
		}
		body = append(body, block)
	}
	return Section{Title: "The Line of Time", Body: strings.Join(body, " ")}
}

// consciousnessSection sets the conscious aim against the subconscious root.
func consciousnessSection(p Payload, opts Options) Section {
	crown, root := p.Cards[ccCrown], p.Cards[ccFoundation]
	body := []string{
		fmt.Sprintf("Above the cross sits %s, what you are consciously reaching for. Beneath it lies %s, the root you may not have named.", crown.Name, root.Name),
		cardBlock(p, ccCrown, opts),
		cardBlock(p, ccFoundation, opts),
	}
	if ch := opts.Reasoning; ch != nil {
		for _, t := range ch.Tensions {
			if t.Significance == "conscious-versus-subconscious" {
				body = append(body, t.Description, t.BridgePhrase+" reconciling these two is most of the work this reading describes.")
				break
			}
		}
	}
	return Section{Title: "Aim and Root", Body: strings.Join(body, " ")}
}

// staffSections walks the four staff positions card by card.
func staffSections(p Payload, opts Options) []Section {
	out := make([]Section, 0, 4)
	for _, i := range []int{ccAdvice, ccExternal, ccHopesFears, ccOutcome} {
		out = append(out, cardSection(p, i, opts))
	}
	return out
}

// crossChecksSection surfaces the key structural tensions of the ten-card
// layout: present against outcome, aim against root.
func crossChecksSection(p Payload, opts Options) Section {
	ch := opts.Reasoning
	if ch == nil {
		return Section{}
	}
	var lines []string
	for _, t := range ch.Tensions {
		if t.IsKeyTension {
			lines = append(lines, t.Description+" "+t.BridgePhrase+" hold both cards in view at once.")
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "The spread's key axes sit in agreement: where you stand, where you aim, and where this is heading all pull in one direction.")
	}
	return Section{Title: "Cross-Checks", Body: strings.Join(lines, " ")}
}

func reflectionsSection(p Payload, opts Options) Section {
	ch := opts.Reasoning
	if ch == nil {
		return Section{}
	}
	var lines []string
	lines = append(lines, ch.Throughlines...)
	if ch.EmotionalArc.Summary != "" {
		lines = append(lines, ch.EmotionalArc.Summary)
	}
	if len(lines) == 0 {
		return Section{}
	}
	return Section{Title: "Threads", Body: strings.Join(lines, " ")}
}

func synthesisSection(opts Options) Section {
	ch := opts.Reasoning
	if ch == nil || len(ch.SynthesisHooks) == 0 {
		return Section{}
	}
	return Section{Title: "The Shape of the Reading", Body: strings.Join(ch.SynthesisHooks, " ")}
}

// nextStepSection turns the advice position into one concrete instruction.
func nextStepSection(p Payload) Section {
	advice := p.Cards[ccAdvice]
	return Section{
		Title: "The Next Step",
		Body: fmt.Sprintf("If you take one thing from these ten cards, take the counsel of %s. Translate it into a single act you can complete this week, and let the rest of the spread stay commentary.",
			advice.Name),
	}
}

// cardBlock renders a card's full position text for use inside grouped
// sections. The position label leads the block so every position is named
// even when it has no heading of its own.
func cardBlock(p Payload, i int, opts Options) string {
	in := CardTextInput{
		Card:      p.Cards[i],
		Index:     i,
		SpreadKey: p.SpreadKey,
		Context:   p.Context,
		Deck:      p.Deck,
	}
	return fmt.Sprintf("**%s.** %s", p.Cards[i].Position, BuildPositionCardText(in, opts))
}
