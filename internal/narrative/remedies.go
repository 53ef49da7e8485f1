package narrative

import (
	"fmt"
	"strings"

	"github.com/mirelabs/arcanum/internal/cards"
)

var elementOrder = []string{"Fire", "Water", "Air", "Earth"}

// Remedy phrasing per missing element, specialized by reading context where
// a specialization exists. Three variants each; the rotation index selects
// among them so identical inputs always yield the identical remedy.
var remedyPhrases = map[string]map[string][3]string{
	"Fire": {
		"general": {
			"Fire is scarce in this spread. Bring some deliberate heat into the week: start the thing you have been circling, even badly.",
			"Little Fire shows here. Borrow its medicine on purpose — pick one stalled intention and give it ten minutes of raw momentum today.",
			"The spread runs cool on Fire. Counter it with one small act of boldness you would normally postpone.",
		},
		"career": {
			"Fire is missing from this work reading. Volunteer for the thing that slightly scares you; the spread wants initiative added from outside.",
			"With no Fire at the table, your work question lacks appetite. Name one professional want out loud this week.",
			"This career spread is short on Fire. Make one unprompted move — a pitch, an ask, an application — before the week closes.",
		},
	},
	"Water": {
		"general": {
			"Water barely appears here. Make room for feeling: an honest conversation, music that moves you, anything that softens the week.",
			"The spread is dry of Water. Its remedy is receptivity — ask someone how they are and stay for the whole answer.",
			"Little Water flows through these cards. Balance it by letting one emotion this week be felt instead of managed.",
		},
		"love": {
			"Water is strangely absent from a love reading. Lead with tenderness this week, even where the cards talk strategy.",
			"A love spread without Water is thinking about the heart rather than feeling it. Say the warm thing you keep editing out.",
			"No Water here means the feelings are waiting offstage. Invite them: one unguarded conversation is the remedy.",
		},
	},
	"Air": {
		"general": {
			"Air is thin in this spread. Bring in clarity deliberately: write the situation down in three plain sentences and read them back.",
			"With little Air present, the reading runs on feeling and habit. The remedy is one honest naming of what is actually going on.",
			"The cards are short on Air. Talk the question through with someone who will ask you sharp questions.",
		},
	},
	"Earth": {
		"general": {
			"Earth is missing here, so the reading floats. Ground it: pick one concrete step, put it on a calendar, and do it.",
			"Little Earth shows in these cards. The remedy is bodily and practical — sleep, food, a tidied desk, one finished task.",
			"The spread lacks Earth. Whatever this reading stirs, anchor it with a single measurable action this week.",
		},
		"wellbeing": {
			"A wellbeing spread without Earth asks for the basics first: rest, meals, movement. Start there before anything subtler.",
			"Earth is absent from this wellbeing reading. Treat your body as the first client of the week.",
			"No Earth here. The remedy is unglamorous: keep one physical routine every day until the next reading.",
		},
	},
}

// BuildElementalRemedies suggests a counterbalancing practice when the
// spread's elemental mix is lopsided. Spreads under three cards are too
// small to call imbalanced. The result is deterministic: the same cards,
// context and rotation always produce the same sentence.
func BuildElementalRemedies(list []cards.Card, context string, rotation int) string {
	if len(list) < 3 {
		return ""
	}
	counts := map[string]int{}
	total := 0
	for _, c := range list {
		if e := c.Element(); e != "" {
			counts[e]++
			total++
		}
	}
	if total == 0 {
		return ""
	}

	distinct := len(counts)
	dominantShare := 0.0
	dominant := ""
	for _, e := range elementOrder {
		share := float64(counts[e]) / float64(total)
		if share > dominantShare {
			dominantShare, dominant = share, e
		}
	}
	if dominantShare < 0.5 && distinct > 2 {
		return ""
	}

	if rotation < 0 {
		rotation = -rotation
	}
	var remedies []string
	for _, e := range elementOrder {
		if float64(counts[e])/float64(total) >= 0.15 {
			continue
		}
		byContext := remedyPhrases[e]
		variants, ok := byContext[context]
		if !ok {
			variants = byContext["general"]
		}
		remedies = append(remedies, variants[rotation%len(variants)])
	}
	if len(remedies) == 0 {
		return ""
	}
	return fmt.Sprintf("The spread leans heavily on %s. %s", dominant, strings.Join(remedies, " "))
}
