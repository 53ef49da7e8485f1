package cards

import "strings"

// Correspondence holds the esoteric attributions for one trump: the Hebrew
// letter of its path, the astrological body or sign, and the element where
// the trump carries one directly.
type Correspondence struct {
	Hebrew  string
	Letter  string
	Astro   string
	Element string
}

var trumpNumbers = map[string]int{
	"the fool": 0, "the magician": 1, "the high priestess": 2, "the empress": 3,
	"the emperor": 4, "the hierophant": 5, "the lovers": 6, "the chariot": 7,
	"strength": 8, "the hermit": 9, "wheel of fortune": 10, "justice": 11,
	"the hanged man": 12, "death": 13, "temperance": 14, "the devil": 15,
	"the tower": 16, "the star": 17, "the moon": 18, "the sun": 19,
	"judgement": 20, "the world": 21,
	// Thoth titles resolve to the same trumps. Lust is Strength and
	// Adjustment is Justice, whatever roman numeral the Thoth deck prints.
	"the magus": 1, "the priestess": 2, "lust": 8, "adjustment": 11,
	"fortune": 10, "art": 14, "the aeon": 20, "the universe": 21,
}

var trumpCorrespondences = map[int]Correspondence{
	0:  {Hebrew: "א", Letter: "Aleph", Astro: "Air", Element: "Air"},
	1:  {Hebrew: "ב", Letter: "Beth", Astro: "Mercury", Element: "Air"},
	2:  {Hebrew: "ג", Letter: "Gimel", Astro: "Moon", Element: "Water"},
	3:  {Hebrew: "ד", Letter: "Daleth", Astro: "Venus", Element: "Earth"},
	4:  {Hebrew: "צ", Letter: "Tzaddi", Astro: "Aries", Element: "Fire"},
	5:  {Hebrew: "ו", Letter: "Vav", Astro: "Taurus", Element: "Earth"},
	6:  {Hebrew: "ז", Letter: "Zain", Astro: "Gemini", Element: "Air"},
	7:  {Hebrew: "ח", Letter: "Cheth", Astro: "Cancer", Element: "Water"},
	8:  {Hebrew: "ט", Letter: "Teth", Astro: "Leo", Element: "Fire"},
	9:  {Hebrew: "י", Letter: "Yod", Astro: "Virgo", Element: "Earth"},
	10: {Hebrew: "כ", Letter: "Kaph", Astro: "Jupiter", Element: "Fire"},
	11: {Hebrew: "ל", Letter: "Lamed", Astro: "Libra", Element: "Air"},
	12: {Hebrew: "מ", Letter: "Mem", Astro: "Water", Element: "Water"},
	13: {Hebrew: "נ", Letter: "Nun", Astro: "Scorpio", Element: "Water"},
	14: {Hebrew: "ס", Letter: "Samekh", Astro: "Sagittarius", Element: "Fire"},
	15: {Hebrew: "ע", Letter: "Ayin", Astro: "Capricorn", Element: "Earth"},
	16: {Hebrew: "פ", Letter: "Pe", Astro: "Mars", Element: "Fire"},
	17: {Hebrew: "ה", Letter: "He", Astro: "Aquarius", Element: "Air"},
	18: {Hebrew: "ק", Letter: "Qoph", Astro: "Pisces", Element: "Water"},
	19: {Hebrew: "ר", Letter: "Resh", Astro: "Sun", Element: "Fire"},
	20: {Hebrew: "ש", Letter: "Shin", Astro: "Fire", Element: "Fire"},
	21: {Hebrew: "ת", Letter: "Tau", Astro: "Saturn", Element: "Earth"},
}

func TrumpNumber(name string) (int, bool) {
	n, ok := trumpNumbers[strings.ToLower(strings.TrimSpace(name))]
	return n, ok
}

func TrumpCorrespondence(name string) (Correspondence, bool) {
	n, ok := TrumpNumber(name)
	if !ok {
		return Correspondence{}, false
	}
	c, ok := trumpCorrespondences[n]
	return c, ok
}

var suitElements = map[string]string{
	"Wands":     "Fire",
	"Cups":      "Water",
	"Swords":    "Air",
	"Pentacles": "Earth",
}

func SuitElement(suit string) string { return suitElements[canonicalSuit(suit)] }

// Thoth deck aliases, from the Crowley-Harris naming. Anything not listed
// keeps its Rider-Waite-Smith name.
var thothCardAliases = map[string]string{
	"the magician":       "The Magus",
	"the high priestess": "The Priestess",
	"strength":           "Lust",
	"justice":            "Adjustment",
	"wheel of fortune":   "Fortune",
	"temperance":         "Art",
	"judgement":          "The Aeon",
	"the world":          "The Universe",
}

var thothSuitAliases = map[string]string{
	"Pentacles": "Disks",
}

var thothRankAliases = map[string]string{
	"page":   "Princess",
	"knight": "Prince",
	"king":   "Knight",
}

// DeckAlias returns the display name of a card under the named deck. Only
// "thoth" carries aliases today; every other deck key returns the input name.
func DeckAlias(deck, name string) string {
	if !strings.EqualFold(strings.TrimSpace(deck), "thoth") {
		return name
	}
	if alias, ok := thothCardAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return alias
	}
	return name
}

// DeckSuit and DeckRank alias suit and court names for the named deck.
func DeckSuit(deck, suit string) string {
	suit = canonicalSuit(suit)
	if strings.EqualFold(strings.TrimSpace(deck), "thoth") {
		if alias, ok := thothSuitAliases[suit]; ok {
			return alias
		}
	}
	return suit
}

func DeckRank(deck, rank string) string {
	if strings.EqualFold(strings.TrimSpace(deck), "thoth") {
		if alias, ok := thothRankAliases[strings.ToLower(strings.TrimSpace(rank))]; ok {
			return alias
		}
	}
	return rank
}

var rankLabels = map[int]string{
	1: "Ace", 2: "Two", 3: "Three", 4: "Four", 5: "Five",
	6: "Six", 7: "Seven", 8: "Eight", 9: "Nine", 10: "Ten",
	11: "Page", 12: "Knight", 13: "Queen", 14: "King",
}

func RankLabel(n int) string { return rankLabels[n] }
