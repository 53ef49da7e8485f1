package enrich

import (
	"fmt"

	"github.com/mirelabs/arcanum/internal/cards"
)

var astroPhrases = map[string]string{
	"Sun":         "vitality made visible, the self at full wattage",
	"Moon":        "tides, memory, and the intelligence of the night",
	"Mercury":     "message, exchange, and the quicksilver mind",
	"Venus":       "attraction, value, and what the heart calls beautiful",
	"Mars":        "rupture, drive, and the courage to break what binds",
	"Jupiter":     "expansion, luck, and the turning of larger cycles",
	"Saturn":      "limit, structure, and the long reward of patience",
	"Aries":       "initiative and the authority of a clean start",
	"Taurus":      "endurance, appetite, and trust in the established",
	"Gemini":      "duality, dialogue, and the meeting of minds",
	"Cancer":      "protection, home, and the armored tender thing",
	"Leo":         "heart-strength and the dignity of open desire",
	"Virgo":       "discernment, harvest, and devotion to the detail",
	"Libra":       "balance, proportion, and the weighing of consequence",
	"Scorpio":     "depth, ending, and the power found in letting go",
	"Sagittarius": "synthesis, aim, and the long arrow of purpose",
	"Capricorn":   "ambition, shadow, and the climb through material law",
	"Aquarius":    "vision, renewal, and water poured for the future",
	"Pisces":      "dream, dissolution, and the path walked by moonlight",
	"Air":         "breath, beginnings, and the open question",
	"Water":       "surrender, suspension, and the reflective deep",
	"Fire":        "judgment, awakening, and the spirit's clean burn",
}

var letterPhrases = map[string]string{
	"Aleph":  "the breath before creation, unscored potential",
	"Beth":   "the house of the maker, intention given walls",
	"Gimel":  "the camel crossing the desert between worlds",
	"Daleth": "the door that opens onto abundance",
	"Tzaddi": "the fish-hook that draws vision down into form",
	"Vav":    "the nail that joins heaven to practice",
	"Zain":   "the sword that separates in order to choose",
	"Cheth":  "the fence that protects the vulnerable center",
	"Lamed":  "the ox-goad of adjustment, learning by correction",
	"Yod":    "the single point of flame from which letters grow",
	"Kaph":   "the open palm and the turning of fortune through it",
	"Teth":   "the serpent of appetite mastered, not killed",
	"Mem":    "the mother of waters, reversal as baptism",
	"Nun":    "the fish swimming through dissolution toward new life",
	"Samekh": "the tent-peg of temperance, steadiness under mixing",
	"Ayin":   "the eye that sees matter's grip and laughs",
	"Pe":     "the mouth whose word breaks the false tower",
	"He":     "the window through which starlight enters the house",
	"Qoph":   "the back of the head, the dreaming brain on the night road",
	"Resh":   "the face turned to the sun, intelligence rejoicing",
	"Shin":   "the tooth of fire, the last judgment that renews",
	"Tau":    "the final seal, the cross of completion",
}

// AstroForCard returns the astrological lens sentence for a Major Arcana
// card, or empty string for minors and unknown names.
func AstroForCard(name string) string {
	corr, ok := cards.TrumpCorrespondence(name)
	if !ok {
		return ""
	}
	phrase, ok := astroPhrases[corr.Astro]
	if !ok {
		return ""
	}
	return fmt.Sprintf("Astrologically this card carries %s: %s.", corr.Astro, phrase)
}

// QabalahForCard returns the Qabalistic path sentence for a Major Arcana
// card, or empty string for minors and unknown names.
func QabalahForCard(name string) string {
	corr, ok := cards.TrumpCorrespondence(name)
	if !ok {
		return ""
	}
	phrase, ok := letterPhrases[corr.Letter]
	if !ok {
		return ""
	}
	return fmt.Sprintf("On the Tree of Life it walks the path of %s (%s) — %s.", corr.Letter, corr.Hebrew, phrase)
}

// The esoteric lenses surface only for inward-facing reading contexts; a
// career or love reading keeps to plainer language.
var esotericContexts = map[string]struct{}{
	"self":      {},
	"spiritual": {},
	"general":   {},
}

func ShouldSurfaceAstroLens(context string) bool {
	_, ok := esotericContexts[context]
	return ok
}

func ShouldSurfaceQabalahLens(context string) bool {
	_, ok := esotericContexts[context]
	return ok
}
