package cards

import "strings"

// Base valences in [-1, 1], grouped into the named sets the reasoning layer
// queries. A card appears in exactly one set; anything unlisted reads 0.
var positiveValences = map[string]float64{
	"the sun":          0.8,
	"the star":         0.7,
	"the world":        0.7,
	"ten of cups":      0.7,
	"the empress":      0.6,
	"three of cups":    0.6,
	"six of wands":     0.6,
	"nine of cups":     0.6,
	"ace of cups":      0.6,
	"two of cups":      0.6,
	"the lovers":       0.5,
	"ten of pentacles": 0.5,
	"four of wands":    0.5,
	"six of cups":      0.4,
	"ace of wands":     0.4,
	"ace of pentacles": 0.4,
	"nine of pentacles": 0.4,
	"the magician":     0.4,
	"strength":         0.4,
	"temperance":       0.4,
	"the hierophant":   0.2,
}

var challengingValences = map[string]float64{
	"the tower":        -0.7,
	"ten of swords":    -0.7,
	"nine of swords":   -0.6,
	"three of swords":  -0.6,
	"the devil":        -0.5,
	"five of pentacles": -0.5,
	"five of cups":     -0.5,
	"eight of swords":  -0.4,
	"five of swords":   -0.4,
	"seven of swords":  -0.3,
	"five of wands":    -0.3,
	"ten of wands":     -0.3,
	"the moon":         -0.2,
	"seven of cups":    -0.2,
	"four of cups":     -0.2,
}

var transitionValences = map[string]float64{
	"death":            -0.1,
	"wheel of fortune": 0.2,
	"judgement":        0.3,
	"the hanged man":   0.0,
	"eight of cups":    -0.1,
	"six of swords":    0.1,
	"the fool":         0.3,
}

var introspectionValences = map[string]float64{
	"the hermit":         0.0,
	"the high priestess": 0.1,
	"four of swords":     0.0,
	"two of swords":      -0.1,
	"seven of pentacles": 0.1,
}

var actionValences = map[string]float64{
	"the chariot":      0.4,
	"the emperor":      0.3,
	"eight of wands":   0.3,
	"knight of wands":  0.2,
	"knight of swords": 0.1,
	"two of wands":     0.2,
	"three of wands":   0.3,
	"justice":          0.1,
}

// Growth, disruptor and renewal sets drive the narrative-arc predicates.
var growthSet = toSet(
	"the star", "the sun", "the world", "three of wands", "ace of wands",
	"ace of cups", "ace of pentacles", "six of wands", "nine of pentacles",
	"the empress", "page of pentacles", "eight of pentacles",
)

var disruptorSet = toSet(
	"the tower", "death", "ten of swords", "five of pentacles",
	"the devil", "eight of cups",
)

var renewalSet = toSet(
	"the star", "the sun", "judgement", "the world", "ace of cups",
	"ace of wands", "six of swords", "temperance",
)

func toSet(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func baseValence(name string) float64 {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, set := range []map[string]float64{
		positiveValences, challengingValences, transitionValences,
		introspectionValences, actionValences,
	} {
		if v, ok := set[key]; ok {
			return v
		}
	}
	return 0
}

// Valence returns the emotional-positivity score for a card. Reversal does
// not flip the sign: it dampens the energy, modelling "blocked" positives
// (x0.3) and "releasing" challenges (x0.5).
func Valence(name string, orientation Orientation) float64 {
	v := baseValence(name)
	if orientation != Reversed || v == 0 {
		return v
	}
	if v > 0 {
		return v * 0.3
	}
	return v * 0.5
}

func (c Card) Valence() float64 { return Valence(c.Name, c.Orientation) }

func inSet(set map[string]struct{}, name string) bool {
	_, ok := set[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func IsGrowthCard(name string) bool    { return inSet(growthSet, name) }
func IsDisruptorCard(name string) bool { return inSet(disruptorSet, name) }
func IsRenewalCard(name string) bool   { return inSet(renewalSet, name) }

func IsTransitionCard(name string) bool {
	_, ok := transitionValences[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func IsActionCard(name string) bool {
	_, ok := actionValences[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func IsIntrospectionCard(name string) bool {
	_, ok := introspectionValences[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// EmotionalQuality buckets a valence into one of seven named qualities.
func EmotionalQuality(v float64) string {
	switch {
	case v >= 0.6:
		return "joy"
	case v >= 0.3:
		return "hope"
	case v >= 0.1:
		return "ease"
	case v > -0.1:
		return "stillness"
	case v > -0.3:
		return "unease"
	case v > -0.6:
		return "strain"
	default:
		return "difficulty"
	}
}
