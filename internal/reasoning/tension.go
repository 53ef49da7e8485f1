package reasoning

import (
	"fmt"
	"math"
	"sort"

	"github.com/mirelabs/arcanum/internal/cards"
	"github.com/mirelabs/arcanum/internal/enrich"
)

type Tension struct {
	Type             string    `json:"type"`
	Intensity        string    `json:"intensity"`
	Positions        [2]int    `json:"positions"`
	Cards            [2]string `json:"cards"`
	Description      string    `json:"description"`
	BridgePhrase     string    `json:"bridgePhrase"`
	IsKeyTension     bool      `json:"isKeyTension,omitempty"`
	IsJourneyTension bool      `json:"isJourneyTension,omitempty"`
	Significance     string    `json:"significance,omitempty"`
}

type pairSpec struct {
	i, j         int
	key, journey bool
	significance string
}

// Key pairs for the ten-card spread: Present against Outcome, Conscious aim
// against subconscious root.
var celticKeyPairs = []pairSpec{
	{i: 0, j: 9, key: true, significance: "present-versus-outcome"},
	{i: 4, j: 2, key: true, significance: "conscious-versus-subconscious"},
}

// DetectTensions examines adjacent pairs, the first-to-last journey pair
// (three cards or more), and the fixed key pairs of ten-card spreads. All
// matching tension types for a pair are kept, not just the loudest; key
// tensions sort first, then strong intensity, otherwise discovery order.
func DetectTensions(list []cards.Card) []Tension {
	var pairs []pairSpec
	for i := 0; i+1 < len(list); i++ {
		pairs = append(pairs, pairSpec{i: i, j: i + 1})
	}
	if len(list) >= 3 {
		pairs = append(pairs, pairSpec{i: 0, j: len(list) - 1, journey: true, significance: "journey"})
	}
	if len(list) == 10 {
		pairs = append(pairs, celticKeyPairs...)
	}

	var out []Tension
	for _, p := range pairs {
		out = append(out, tensionsForPair(list, p)...)
	}

	sort.SliceStable(out, func(a, b int) bool {
		ta, tb := out[a], out[b]
		if ta.IsKeyTension != tb.IsKeyTension {
			return ta.IsKeyTension
		}
		if (ta.Intensity == "strong") != (tb.Intensity == "strong") {
			return ta.Intensity == "strong"
		}
		return false
	})
	return out
}

func tensionsForPair(list []cards.Card, p pairSpec) []Tension {
	a, b := list[p.i], list[p.j]
	base := Tension{
		Positions:        [2]int{p.i, p.j},
		Cards:            [2]string{a.Name, b.Name},
		IsKeyTension:     p.key,
		IsJourneyTension: p.journey,
		Significance:     p.significance,
	}
	var out []Tension

	va, vb := a.Valence(), b.Valence()
	gap := math.Abs(va - vb)
	if gap > 0.6 {
		t := base
		t.Type = "emotional-shift"
		t.Intensity = "moderate"
		if gap > 1.0 {
			t.Intensity = "strong"
		}
		if vb > va {
			t.Description = fmt.Sprintf("The feeling lifts sharply between %s and %s.", a.Name, b.Name)
			t.BridgePhrase = "And yet the mood rises from one card to the next —"
		} else {
			t.Description = fmt.Sprintf("The feeling drops sharply between %s and %s.", a.Name, b.Name)
			t.BridgePhrase = "But the mood falls away between these two cards —"
		}
		out = append(out, t)
	}

	ea, eb := a.Element(), b.Element()
	if enrich.ElementsOpposed(ea, eb) {
		t := base
		t.Type = "elemental-opposition"
		t.Intensity = "moderate"
		t.Description = fmt.Sprintf("%s (%s) and %s (%s) carry opposed elements.", a.Name, ea, b.Name, eb)
		t.BridgePhrase = "Two opposed elements meet here, and the spark between them is part of the message —"
		out = append(out, t)
	}

	if (cards.IsActionCard(a.Name) && cards.IsIntrospectionCard(b.Name)) ||
		(cards.IsIntrospectionCard(a.Name) && cards.IsActionCard(b.Name)) {
		t := base
		t.Type = "action-reflection"
		t.Intensity = "moderate"
		t.Description = fmt.Sprintf("%s pushes outward while %s turns inward.", a.Name, b.Name)
		t.BridgePhrase = "One card wants motion and the other wants stillness —"
		out = append(out, t)
	}

	return out
}
