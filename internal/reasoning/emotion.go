package reasoning

import (
	"fmt"

	"github.com/mirelabs/arcanum/internal/cards"
)

// ExtremePoint marks the highest or lowest valence card in the spread.
type ExtremePoint struct {
	Index   int     `json:"index"`
	Card    string  `json:"card"`
	Valence float64 `json:"valence"`
}

// EmotionalArc is the start-to-end feeling trajectory of the spread. Peak
// and Valley are only reported when they clear the significance cutoffs
// (>0.3 and <-0.3); Direction always classifies against the raw extremes.
type EmotionalArc struct {
	StartQuality string        `json:"startQuality"`
	EndQuality   string        `json:"endQuality"`
	StartValence float64       `json:"startValence"`
	EndValence   float64       `json:"endValence"`
	Peak         *ExtremePoint `json:"peak,omitempty"`
	Valley       *ExtremePoint `json:"valley,omitempty"`
	Direction    string        `json:"direction"`
	Summary      string        `json:"summary"`
}

// MapEmotionalArc computes the emotional trajectory. An empty spread
// returns a fully populated stable arc rather than nil.
func MapEmotionalArc(list []cards.Card) EmotionalArc {
	if len(list) == 0 {
		return EmotionalArc{
			StartQuality: cards.EmotionalQuality(0),
			EndQuality:   cards.EmotionalQuality(0),
			Direction:    "stable",
			Summary:      "No cards, no weather: the emotional field is quiet.",
		}
	}

	start := list[0].Valence()
	end := list[len(list)-1].Valence()

	maxIdx, minIdx := 0, 0
	for i, c := range list {
		v := c.Valence()
		if v > list[maxIdx].Valence() {
			maxIdx = i
		}
		if v < list[minIdx].Valence() {
			minIdx = i
		}
	}
	peakV := list[maxIdx].Valence()
	valleyV := list[minIdx].Valence()

	arc := EmotionalArc{
		StartQuality: cards.EmotionalQuality(start),
		EndQuality:   cards.EmotionalQuality(end),
		StartValence: start,
		EndValence:   end,
	}
	if peakV > 0.3 {
		arc.Peak = &ExtremePoint{Index: maxIdx, Card: list[maxIdx].Name, Valence: peakV}
	}
	if valleyV < -0.3 {
		arc.Valley = &ExtremePoint{Index: minIdx, Card: list[minIdx].Name, Valence: valleyV}
	}

	switch {
	case end-start > 0.4:
		arc.Direction = "ascending"
	case start-end > 0.4:
		arc.Direction = "descending"
	case peakV-valleyV > 0.8:
		arc.Direction = "oscillating"
	default:
		arc.Direction = "stable"
	}

	arc.Summary = summarizeArc(arc)
	return arc
}

func summarizeArc(arc EmotionalArc) string {
	base := ""
	switch arc.Direction {
	case "ascending":
		base = fmt.Sprintf("Emotionally the reading climbs from %s toward %s", arc.StartQuality, arc.EndQuality)
	case "descending":
		base = fmt.Sprintf("Emotionally the reading descends from %s into %s", arc.StartQuality, arc.EndQuality)
	case "oscillating":
		base = fmt.Sprintf("Emotionally the reading swings widely, opening in %s and closing in %s", arc.StartQuality, arc.EndQuality)
	default:
		base = fmt.Sprintf("Emotionally the reading holds steady around %s", arc.StartQuality)
	}
	if arc.Peak != nil && arc.Valley != nil {
		return fmt.Sprintf("%s, with its brightest moment at %s and its hardest at %s.", base, arc.Peak.Card, arc.Valley.Card)
	}
	if arc.Peak != nil {
		return fmt.Sprintf("%s, cresting at %s.", base, arc.Peak.Card)
	}
	if arc.Valley != nil {
		return fmt.Sprintf("%s, with its low point at %s.", base, arc.Valley.Card)
	}
	return base + "."
}
