package reasoning

import (
	"sort"

	"github.com/mirelabs/arcanum/internal/cards"
)

// NarrativeArc is the macro shape the spread tells as a story. ToneBias
// steers downstream phrase selection.
type NarrativeArc struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emphasis    string `json:"emphasis"`
	Guidance    string `json:"guidance"`
	ToneBias    string `json:"toneBias"`
}

type arcPredicate struct {
	priority int
	arc      NarrativeArc
	match    func(list []cards.Card) bool
}

var defaultArc = NarrativeArc{
	Key:         "unfolding",
	Name:        "Unfolding Story",
	Description: "No single dramatic shape dominates; the cards describe a situation still in motion.",
	Emphasis:    "attention",
	Guidance:    "Read each position on its own terms and let the pattern announce itself over time.",
	ToneBias:    "even",
}

var arcPredicates = []arcPredicate{
	{
		priority: 10,
		arc: NarrativeArc{
			Key:         "struggle-to-resolution",
			Name:        "Struggle to Resolution",
			Description: "The reading opens under strain and closes in light; the hard part is positioned behind you or passing.",
			Emphasis:    "perseverance",
			Guidance:    "Keep walking; the spread's own gradient runs uphill toward relief.",
			ToneBias:    "encouraging",
		},
		match: func(list []cards.Card) bool {
			return list[0].Valence() < -0.2 && list[len(list)-1].Valence() > 0.3
		},
	},
	{
		priority: 20,
		arc: NarrativeArc{
			Key:         "warning-descent",
			Name:        "Bright Start, Hard Turn",
			Description: "The reading opens well and darkens toward the end; the spread is flagging a cost on the current path.",
			Emphasis:    "caution",
			Guidance:    "Treat the later cards as a forecast you can still answer, not a sentence.",
			ToneBias:    "sober",
		},
		match: func(list []cards.Card) bool {
			return list[0].Valence() > 0.3 && list[len(list)-1].Valence() < -0.2
		},
	},
	{
		priority: 30,
		arc: NarrativeArc{
			Key:         "disruption-and-renewal",
			Name:        "Disruption and Renewal",
			Description: "A breaking card and a rebuilding card share this spread; something ends so something can begin.",
			Emphasis:    "release",
			Guidance:    "Spend less energy preventing the ending and more preparing the beginning.",
			ToneBias:    "transformative",
		},
		match: func(list []cards.Card) bool {
			var disrupt, renew bool
			for _, c := range list {
				if cards.IsDisruptorCard(c.Name) {
					disrupt = true
				}
				if cards.IsRenewalCard(c.Name) {
					renew = true
				}
			}
			return disrupt && renew
		},
	},
	{
		priority: 40,
		arc: NarrativeArc{
			Key:         "steady-growth",
			Name:        "Steady Growth",
			Description: "Growth cards dominate the spread; the story here is cultivation rather than crisis.",
			Emphasis:    "patience",
			Guidance:    "Protect the routines that are already working; the spread asks for tending, not overhaul.",
			ToneBias:    "warm",
		},
		match: func(list []cards.Card) bool {
			n := 0
			for _, c := range list {
				if cards.IsGrowthCard(c.Name) {
					n++
				}
			}
			return float64(n) >= 0.4*float64(len(list))
		},
	},
	{
		priority: 50,
		arc: NarrativeArc{
			Key:         "inner-turn",
			Name:        "The Inner Turn",
			Description: "Introspective cards cluster here; the movement the spread describes happens inside before it shows outside.",
			Emphasis:    "reflection",
			Guidance:    "Resist the urge to act first; the decisive work this season is attention.",
			ToneBias:    "quiet",
		},
		match: func(list []cards.Card) bool {
			n := 0
			for _, c := range list {
				if cards.IsIntrospectionCard(c.Name) {
					n++
				}
			}
			return float64(n) >= 0.4*float64(len(list))
		},
	},
}

func init() {
	sort.SliceStable(arcPredicates, func(i, j int) bool {
		return arcPredicates[i].priority < arcPredicates[j].priority
	})
}

// IdentifyNarrativeArc evaluates the predicates in priority order; the first
// that holds wins, and an empty or unmatched spread gets the default
// Unfolding Story arc.
func IdentifyNarrativeArc(list []cards.Card) NarrativeArc {
	if len(list) == 0 {
		return defaultArc
	}
	for _, p := range arcPredicates {
		if p.match(list) {
			return p.arc
		}
	}
	return defaultArc
}
