package reasoning

import (
	"math"

	"github.com/mirelabs/arcanum/internal/cards"
	"github.com/mirelabs/arcanum/internal/weights"
)

// PivotCard is the leverage point of the reading: the single card whose
// handling most changes everything downstream of it.
type PivotCard struct {
	Index    int    `json:"index"`
	Card     string `json:"card"`
	Position string `json:"position"`
	Reason   string `json:"reason"`
}

type fixedPivot struct {
	index  int
	reason string
}

// Named spreads carry designed pivot positions; everything else falls back
// to the heuristic score.
var fixedPivots = map[string]fixedPivot{
	"celtic_cross": {index: 6, reason: "In a Celtic Cross the advice card is the hinge: it is the only position that asks for a response rather than describing one."},
	"three_card":   {index: 1, reason: "In a three-card line the present is the hinge between what shaped you and what you shape next."},
	"five_card":    {index: 3, reason: "The advice position carries the spread's leverage: it is where description turns into direction."},
	"relationship": {index: 2, reason: "The connection card is the fulcrum: both people's energies resolve through what lives between them."},
	"decision":     {index: 4, reason: "The guidance card is the pivot of a decision spread: it speaks to the choosing itself."},
}

// SelectPivot picks the reading's pivot card. Heuristic score:
// positionWeight*10 + 5 for transition cards + up to 3 for centrality; ties
// keep the first occurrence.
func SelectPivot(list []cards.Card, spreadKey string) PivotCard {
	if len(list) == 0 {
		return PivotCard{Index: -1, Reason: "No cards were available to weigh."}
	}
	if fp, ok := fixedPivots[spreadKey]; ok && fp.index < len(list) {
		return PivotCard{
			Index:    fp.index,
			Card:     list[fp.index].Name,
			Position: list[fp.index].Position,
			Reason:   fp.reason,
		}
	}

	bestIdx, bestScore := 0, math.Inf(-1)
	for i, c := range list {
		score := weights.Lookup(spreadKey, i) * 10
		if cards.IsTransitionCard(c.Name) {
			score += 5
		}
		center := 1 - math.Abs(float64(i)/float64(len(list))-0.5)
		score += center * 3
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	return PivotCard{
		Index:    bestIdx,
		Card:     list[bestIdx].Name,
		Position: list[bestIdx].Position,
		Reason:   "This card scored highest on position weight, transitional energy, and centrality.",
	}
}
