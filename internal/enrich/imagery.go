// Package enrich holds the pure lookup providers that decorate card text:
// sensory imagery hooks, minor-arcana summaries, elemental dignities, and the
// astrological/Qabalistic lenses. Every function here is side-effect free and
// keyed by card identity alone.
package enrich

import (
	"fmt"
	"strings"

	"github.com/mirelabs/arcanum/internal/cards"
)

type imageryPair struct {
	upright  string
	reversed string
}

var majorImagery = map[int]imageryPair{
	0:  {"Picture the open cliff edge, the small bag, the white rose held lightly.", "Picture the same cliff edge, but the traveler hesitating, looking back over a shoulder."},
	1:  {"See the raised wand and the four tools laid out on the table, every channel open.", "See the tools scattered, the wand lowered, the current waiting to be gathered again."},
	2:  {"Notice the veil between the pillars and the crescent moon resting at her feet.", "Notice the veil drawn tighter, the scroll half-hidden, knowing kept just out of reach."},
	3:  {"Imagine the wheat-heavy field and the cushioned seat among growing things.", "Imagine the field waiting for rain, abundance paused rather than absent."},
	4:  {"See the stone throne and the mountains behind it, structure holding the view steady.", "See the throne slightly too rigid, the armor worn indoors."},
	5:  {"Picture the two keys crossed at the teacher's feet and the listeners leaning in.", "Picture the listeners glancing at the door, tradition asked to defend itself."},
	6:  {"Notice the sun over two figures and the angel above, a choice blessed by clarity.", "Notice the figures looking away from each other, alignment waiting to be chosen."},
	7:  {"Imagine the two sphinxes pulling in different directions and the charioteer holding both.", "Imagine the reins slack, the vehicle stalled between impulses."},
	8:  {"See the gentle hand closing the lion's mouth without force.", "See the lion pacing, patience thinning but not gone."},
	9:  {"Picture the single lamp on the mountain path, light enough for one step.", "Picture the lamp turned inward too long, the path waiting outside."},
	10: {"Notice the great wheel mid-turn, figures rising on one side and descending the other.", "Notice the wheel caught on a point, the same spoke returning."},
	11: {"Imagine the scales level and the sword upright, nothing hidden from the weighing.", "Imagine the scales trembling, a correction still due."},
	12: {"See the inverted figure at ease, the halo bright around a changed perspective.", "See the figure straining against the rope instead of softening into it."},
	13: {"Picture the white rose on the black banner, the sunrise behind the gate.", "Picture the gate half-open, an ending resisted past its season."},
	14: {"Notice the water poured between two cups, one foot on land and one in the stream.", "Notice the cups out of rhythm, the pour splashing over the rim."},
	15: {"See the loose chains around the two figures, heavy only while unexamined.", "See a link already slipped, the first weight set down."},
	16: {"Imagine the lightning-lit tower and the crown falling free of it.", "Imagine the rumble after the strike, rebuilding already implicit."},
	17: {"Picture the bare figure kneeling at the pool, one jug to the water, one to the land.", "Picture the pool clouded, the stars waiting for the surface to settle."},
	18: {"Notice the long road between the two towers under a doubled light.", "Notice the fog starting to thin at the road's far end."},
	19: {"See the wall of sunflowers and the child riding out under full light.", "See the sun behind thin cloud, warmth present but filtered."},
	20: {"Imagine the horn sounding over open water and figures rising to answer it.", "Imagine the call heard but unanswered, the past still holding the hand."},
	21: {"Picture the wreath closing its circle and the dancer at ease inside it.", "Picture one ribbon of the wreath untied, a last step before completion."},
}

// ImageryHook returns the sensory hook for a Major Arcana card by trump
// number, or empty string for anything outside 0..21.
func ImageryHook(cardNumber int, orientation cards.Orientation) string {
	pair, ok := majorImagery[cardNumber]
	if !ok {
		return ""
	}
	if orientation == cards.Reversed {
		return pair.reversed
	}
	return pair.upright
}

var suitImagery = map[string]imageryPair{
	"Wands":     {"Feel the dry heat of a fire that wants tending, not containing.", "Feel the banked coals, heat held under ash."},
	"Cups":      {"Feel the pull of water finding its level, unhurried and sure.", "Feel the still pool, movement gathering under a calm surface."},
	"Swords":    {"Feel the cold clarity of high air, every edge of the thought visible.", "Feel the wind dropped to stillness, the thought circling instead of cutting."},
	"Pentacles": {"Feel the weight of good soil in the hand, slow wealth in patient ground.", "Feel the field left fallow, resources resting rather than lost."},
}

// MinorImageryHook returns the suit-keyed sensory hook for a minor card.
func MinorImageryHook(c cards.Card) string {
	pair, ok := suitImagery[c.Suit]
	if !ok {
		return ""
	}
	if c.Orientation == cards.Reversed {
		return pair.reversed
	}
	return pair.upright
}

var elementalImagery = map[string]string{
	"Fire|Fire":   "Two flames share one draft here; the brightness doubles fast.",
	"Water|Water": "Two waters merge without a seam; the feeling deepens quietly.",
	"Air|Air":     "Two winds cross at height; ideas multiply and scatter seeds.",
	"Earth|Earth": "Stone settles on stone; what is built now intends to stay.",
	"Fire|Air":    "Wind feeds the flame; one energy gives the other reach.",
	"Air|Fire":    "The flame warms the wind; thought takes on urgency and color.",
	"Water|Earth": "Rain meets riverbank; feeling finds a shape that can hold it.",
	"Earth|Water": "The ground drinks what falls; steadiness softens into growth.",
	"Fire|Water":  "Steam rises where these two meet; the hiss is information.",
	"Water|Fire":  "Water bends around heat; neither wins, both change.",
	"Air|Earth":   "Wind over stone carves slowly; friction here works in years, not days.",
	"Earth|Air":   "Dust lifts from the field; the settled is asked to move.",
	"Fire|Earth":  "Heat cures the clay; pressure turns raw material useful.",
	"Earth|Fire":  "The hearth contains the fire; drive gains a durable home.",
	"Water|Air":   "Mist carries the river into the sky; feeling becomes idea.",
	"Air|Water":   "Breath stirs the surface; the idea asks the feeling to answer.",
}

// ElementalImagery returns a sensory line for an ordered element pair, or
// empty string when either element is unknown.
func ElementalImagery(e1, e2 string) string {
	return elementalImagery[fmt.Sprintf("%s|%s", canonicalElement(e1), canonicalElement(e2))]
}

func canonicalElement(e string) string {
	switch strings.ToLower(strings.TrimSpace(e)) {
	case "fire":
		return "Fire"
	case "water":
		return "Water"
	case "air":
		return "Air"
	case "earth":
		return "Earth"
	default:
		return ""
	}
}
