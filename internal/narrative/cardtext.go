package narrative

import (
	"fmt"
	"strings"

	"github.com/mirelabs/arcanum/internal/cards"
	"github.com/mirelabs/arcanum/internal/enrich"
	"github.com/mirelabs/arcanum/internal/templates"
	"github.com/mirelabs/arcanum/internal/weights"
)

// Context-and-card overrides win over the suit/major lens. Keys are
// lowercase card names.
var contextCardOverrides = map[string]map[string]string{
	"love": {
		"two of cups":     "In matters of the heart this is the card of mutual recognition — two people actually seeing each other.",
		"the lovers":      "For a love question this card is at full strength: a real choice of the heart, made with eyes open.",
		"three of swords": "In a love reading this card names the wound directly; pretending it is smaller will not shrink it.",
		"the empress":     "In love, this card asks for generosity without accounting — warmth given the way a garden gives.",
	},
	"career": {
		"eight of pentacles": "For work questions this is the apprentice's card: mastery assembled one careful repetition at a time.",
		"the emperor":        "In a career reading this card points at structure — build it or negotiate with the person who owns it.",
		"ten of wands":       "At work this card is the overcommitment card; something you are carrying belongs on someone else's desk.",
		"three of wands":     "Professionally this is the card of the placed bet — ships out, returns pending, patience required.",
	},
	"self": {
		"the hermit": "For inner work this card is home ground: the lamp is small because the next step is all you need lit.",
		"strength":   "Inwardly this card is not about force but about staying gentle while staying put.",
	},
	"wellbeing": {
		"four of swords": "For wellbeing this card is a prescription, not a picture: rest, deliberately scheduled, counts as action.",
		"temperance":     "For health of any kind this card favors the middle dose — of effort, of rest, of everything.",
	},
	"spiritual": {
		"the high priestess": "On a spiritual question this card asks you to trust what you knew before you argued yourself out of it.",
	},
}

// The suit/major lens applies when no card override exists for the context.
var contextSuitLens = map[string]map[string]string{
	"love": {
		"major":     "A Major Arcana card in a love reading raises the stakes: the bond is serving a larger lesson.",
		"Cups":      "Cups speak the native language of this question; take the card's emotional reading literally.",
		"Swords":    "A Swords card in a love reading points at the conversation being avoided.",
		"Wands":     "Wands bring appetite and spark to the question — attraction as energy, not arrangement.",
		"Pentacles": "Pentacles ground the romance in dailiness: time, routines, and who does what.",
	},
	"career": {
		"major":     "A Major Arcana card here signals a career moment bigger than the current task list.",
		"Pentacles": "Pentacles are at home in work questions; read this card as concretely as possible.",
		"Wands":     "Wands in a career reading measure your fire for the work itself, apart from title and pay.",
		"Swords":    "Swords at work are about clarity: decisions, words, and the cost of leaving either vague.",
		"Cups":      "A Cups card in a work reading asks how the work feels, which is data, not weakness.",
	},
	"self": {
		"major": "On an inner question a trump card marks a threshold: this is developmental, not situational.",
		"Cups":  "Cups turn the question toward what you actually feel, beneath what you think you should feel.",
	},
	"wellbeing": {
		"major":     "A trump in a wellbeing reading points past symptoms toward the life pattern underneath them.",
		"Pentacles": "Pentacles keep wellbeing practical: sleep, food, movement, and the body's plain arithmetic.",
	},
	"spiritual": {
		"major": "Trumps are the native cards of a spiritual question; this one speaks with full authority here.",
	},
}

func contextClause(c cards.Card, context string) string {
	if overrides, ok := contextCardOverrides[context]; ok {
		if clause, ok := overrides[strings.ToLower(c.Name)]; ok {
			return clause
		}
	}
	lens, ok := contextSuitLens[context]
	if !ok {
		return ""
	}
	if c.IsMajor() {
		return lens["major"]
	}
	return lens[c.Suit]
}

// esotericClause surfaces the astrology or Qabalah lens for inward-facing
// contexts. Astrology is checked first; the first non-empty lens wins.
func esotericClause(c cards.Card, context string) string {
	if enrich.ShouldSurfaceAstroLens(context) {
		if s := enrich.AstroForCard(c.Name); s != "" {
			return s
		}
	}
	if enrich.ShouldSurfaceQabalahLens(context) {
		if s := enrich.QabalahForCard(c.Name); s != "" {
			return s
		}
	}
	return ""
}

// CardTextInput carries one card plus the composition context it renders in.
// PrevElement is set only when the caller wants the elemental bridge from
// the previous card; leaving it empty suppresses that clause entirely.
type CardTextInput struct {
	Card        cards.Card
	Index       int
	SpreadKey   string
	Context     string
	Deck        string
	PrevElement string
}

// BuildPositionCardText renders the full prose block for one card in its
// position. Clause order is fixed; enrichments that find nothing contribute
// nothing. Unknown position labels take the defensive template fallback.
func BuildPositionCardText(in CardTextInput, opts Options) string {
	c := in.Card
	tmpl, ok := templates.Lookup(c.Position)
	if !ok {
		opts.warnf("no template for position label %q, using fallback renderer", c.Position)
		return templates.RenderFallback(c.Position, c)
	}

	displayName := cards.DeckAlias(in.Deck, c.Name)
	if c.Orientation == cards.Reversed {
		displayName += ", reversed"
	}

	var parts []string
	parts = append(parts, tmpl.Intro(opts.RNG, displayName))
	parts = append(parts, meaningClause(c))

	if clause := contextClause(c, in.Context); clause != "" {
		parts = append(parts, clause)
	}
	if clause := esotericClause(c, in.Context); clause != "" {
		parts = append(parts, clause)
	}
	if tmpl.Imagery && c.IsMajor() {
		if hook := enrich.ImageryHook(c.Number, c.Orientation); hook != "" {
			parts = append(parts, hook)
		}
	}
	if c.IsMinor() {
		if summary := enrich.MinorSummary(c); summary != "" {
			parts = append(parts, summary)
		}
		if tmpl.Imagery {
			if hook := enrich.MinorImageryHook(c); hook != "" {
				parts = append(parts, hook)
			}
		}
	}
	if in.PrevElement != "" {
		if img := enrich.ElementalImagery(in.PrevElement, c.Element()); img != "" {
			parts = append(parts, img)
		}
	}
	if w := weights.Lookup(in.SpreadKey, in.Index); weights.IsDetailWorthy(w) {
		parts = append(parts, "This position carries unusual weight in this spread; whatever else you skim, do not skim here.")
	}
	parts = append(parts, tmpl.Frame(opts.RNG))

	return strings.Join(compact(parts), " ")
}

func meaningClause(c cards.Card) string {
	if c.Meaning != "" {
		clause := fmt.Sprintf("At its heart it speaks of %s.", strings.TrimSuffix(strings.TrimSpace(c.Meaning), "."))
		if c.Orientation == cards.Reversed {
			clause += " Reversed, that current arrives blocked or turned inward, asking to be released rather than pushed."
		}
		return clause
	}
	quality := cards.EmotionalQuality(c.Valence())
	if c.Orientation == cards.Reversed {
		return fmt.Sprintf("Its energy here reads as %s, held at a reversed angle — present, but not flowing freely yet.", quality)
	}
	return fmt.Sprintf("Its energy here reads as %s.", quality)
}

func compact(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, strings.TrimSpace(p))
		}
	}
	return out
}
