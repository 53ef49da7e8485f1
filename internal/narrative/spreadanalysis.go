package narrative

import (
	"github.com/mirelabs/arcanum/internal/cards"
	"github.com/mirelabs/arcanum/internal/enrich"
)

// PairRelation records the elemental dynamic between two positions.
type PairRelation struct {
	From     int             `json:"from"`
	To       int             `json:"to"`
	Relation enrich.Relation `json:"relation"`
}

// SpreadAnalysis is the pre-computed card-pair relationship map a builder
// consumes. Builders treat it as opaque input: they look relations up, they
// never recompute them.
type SpreadAnalysis struct {
	SpreadKey string           `json:"spreadKey"`
	Pairs     []PairRelation   `json:"pairs"`
	Groups    map[string][]int `json:"groups,omitempty"`
}

// RelationBetween returns the recorded relation for an ordered position
// pair, or empty when the analysis has nothing for it.
func (a *SpreadAnalysis) RelationBetween(from, to int) (enrich.Relation, bool) {
	if a == nil {
		return "", false
	}
	for _, p := range a.Pairs {
		if p.From == from && p.To == to {
			return p.Relation, true
		}
	}
	return "", false
}

// Celtic Cross structural groupings, by position index.
var celticGroups = map[string][]int{
	"nucleus":       {0, 1},
	"timeline":      {3, 0, 5},
	"consciousness": {4, 2},
	"staff":         {6, 7, 8, 9},
}

// AnalyzeSpread precomputes adjacent pair relations (plus the Celtic Cross
// groupings for ten-card spreads). The service layer runs this once per
// reading and hands the result to the builder.
func AnalyzeSpread(spreadKey string, list []cards.Card) *SpreadAnalysis {
	a := &SpreadAnalysis{SpreadKey: spreadKey}
	for i := 0; i+1 < len(list); i++ {
		a.Pairs = append(a.Pairs, PairRelation{
			From:     i,
			To:       i + 1,
			Relation: enrich.ElementalRelation(list[i].Element(), list[i+1].Element()),
		})
	}
	if spreadKey == "celtic_cross" && len(list) == 10 {
		a.Groups = celticGroups
	}
	return a
}

// relationTakeaway maps an analysis relation tag to its reader-facing
// sentence. Tags outside the known vocabulary fall through to the generic
// sentence with one warning so collaborator drift stays visible in logs.
func relationTakeaway(r enrich.Relation, opts Options) string {
	if !enrich.RelationKnown(r) {
		opts.warnf("unknown elemental relation tag %q, using generic takeaway", string(r))
	}
	return enrich.RelationTakeaway(r)
}
