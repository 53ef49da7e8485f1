package narrative

import (
	"fmt"

	"github.com/mirelabs/arcanum/internal/templates"
)

// connectorBetween produces the linking phrase placed before the card at
// index cur, following the card at index prev. Reasoning signals win over
// static template connectors: a detected tension for exactly this pair
// supplies its bridge phrase, the pivot card gets a turning announcement,
// and only then do the position templates get a say. An empty string means
// the sections sit side by side with no bridge, which is fine.
func connectorBetween(prev, cur int, prevLabel, curLabel string, opts Options) string {
	if ch := opts.Reasoning; ch != nil {
		for _, t := range ch.Tensions {
			if t.Positions[0] == prev && t.Positions[1] == cur && t.BridgePhrase != "" {
				return t.BridgePhrase
			}
		}
		if ch.Pivot.Index == cur && ch.Pivot.Card != "" {
			return fmt.Sprintf("Here the reading turns: %s is the hinge the other cards swing on.", ch.Pivot.Card)
		}
	}
	if tmpl, ok := templates.Lookup(curLabel); ok {
		if s := templates.PickOne(opts.RNG, tmpl.ConnectorPrev); s != "" {
			return s
		}
	}
	if tmpl, ok := templates.Lookup(prevLabel); ok {
		if s := templates.PickOne(opts.RNG, tmpl.ConnectorNext); s != "" {
			return s
		}
	}
	return ""
}

// openingLine starts a reading. The question is acknowledged when present,
// the intent classification (when reasoning ran) tunes the register, and a
// personalization profile can address the querent by name.
func openingLine(p Payload, opts Options, spreadName string) string {
	greeting := fmt.Sprintf("This is a %s reading", spreadName)
	if p.Profile != nil && p.Profile.DisplayName != "" {
		greeting = fmt.Sprintf("%s, this is a %s reading", p.Profile.DisplayName, spreadName)
	}
	if p.Question == "" {
		return greeting + ", drawn without a spoken question; let the cards name the subject themselves."
	}
	line := fmt.Sprintf("%s for the question you brought: %q.", greeting, p.Question)
	if ch := opts.Reasoning; ch != nil {
		switch ch.QuestionIntent.Type {
		case "decision":
			line += " A choice stands behind this question, and the spread is read as counsel for choosing."
		case "timing":
			line += " You are asking about when, so the spread's own movement carries extra weight."
		case "blockage":
			line += " You are asking what stands in the way, so the hardest card here is also the most useful one."
		case "confirmation":
			line += " You already sense the answer; the cards will tell you how much to trust that sense."
		case "outcome":
			line += " You are asking where this leads, and the later positions will do most of the talking."
		}
	}
	return line
}

// closingLine ends a reading. Tone, spiritual frame, and depth come from
// the profile when one is supplied; the arc guidance (when reasoning ran)
// gets the last word, except at brief depth.
func closingLine(p Payload, opts Options) string {
	base := "Take from this reading what rings true and leave the rest on the table; the cards describe currents, and you still hold the tiller."
	depth := ""
	if p.Profile != nil {
		depth = p.Profile.Depth
		switch p.Profile.Tone {
		case "direct":
			base = "That is the reading. Act on the parts that named something you recognized."
		case "poetic":
			base = "The cards have said their piece; carry the images with you and let them finish speaking in their own time."
		}
		switch p.Profile.SpiritualFrame {
		case "psychological":
			base += " Read the cards as mirrors of your own patterns rather than outside forces."
		case "mystical":
			base += " Let the reading be what it is: a conversation with something older than the question."
		}
	}
	if depth == "brief" {
		return base
	}
	if ch := opts.Reasoning; ch != nil && ch.NarrativeArc.Guidance != "" {
		return base + " " + ch.NarrativeArc.Guidance
	}
	return base
}
