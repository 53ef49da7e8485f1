package enrich

import (
	"fmt"

	"github.com/mirelabs/arcanum/internal/cards"
)

var suitThemes = map[string]string{
	"Wands":     "will, creative fire, and the urge to act",
	"Cups":      "feeling, relationship, and the life of the heart",
	"Swords":    "thought, truth-telling, and the edges of the mind",
	"Pentacles": "work, body, and the slow craft of the material world",
}

var rankThemes = map[int]string{
	1:  "a seed moment, the suit's energy in its purest first form",
	2:  "a balance or a choice, two currents asking to be weighed",
	3:  "first growth, early results taking recognizable shape",
	4:  "stability and pause, structure holding what has been gathered",
	5:  "friction and loss, the suit's energy under strain",
	6:  "recovery and harmony, generosity after difficulty",
	7:  "assessment, a long look at what the effort is actually producing",
	8:  "momentum and craft, skill applied with increasing speed",
	9:  "near-culmination, the weight or the richness of almost-done",
	10: "completion, the suit's story carried to its full conclusion",
	11: "a student's energy, curiosity still unguarded",
	12: "a seeker's energy, the suit pursued at full tilt",
	13: "a steward's energy, the suit held with maturity and care",
	14: "a sovereign's energy, the suit governed rather than chased",
}

// MinorSummary composes the one-sentence suit/rank reading for a minor card.
// Majors and unrecognized suits return empty string; callers treat that as
// "no enrichment" rather than an error.
func MinorSummary(c cards.Card) string {
	theme, ok := suitThemes[c.Suit]
	if !ok {
		return ""
	}
	rank, ok := rankThemes[c.Number]
	if !ok {
		return fmt.Sprintf("As a card of %s, it colors this position with %s.", c.Suit, theme)
	}
	summary := fmt.Sprintf("In the suit of %s — %s — this is %s.", c.Suit, theme, rank)
	if c.Orientation == cards.Reversed {
		summary += " Reversed, that current runs inward or delayed rather than absent."
	}
	return summary
}
