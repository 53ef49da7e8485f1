package cards

import "strings"

type Orientation string

const (
	Upright  Orientation = "upright"
	Reversed Orientation = "reversed"
)

// Record is the wire shape produced by the drawing/session layer. The card
// number may arrive under any of three historical field names; Normalize
// resolves that exactly once and everything downstream uses Card.
type Record struct {
	Card        string      `json:"card"`
	Suit        string      `json:"suit,omitempty"`
	Rank        string      `json:"rank,omitempty"`
	Number      *int        `json:"number,omitempty"`
	CardNumber  *int        `json:"cardNumber,omitempty"`
	CardNum     *int        `json:"card_number,omitempty"`
	Orientation Orientation `json:"orientation"`
	Position    string      `json:"position"`
	Meaning     string      `json:"meaning,omitempty"`
}

// Card is the canonical in-memory card used by every downstream layer.
type Card struct {
	Name        string
	Number      int // trump number for majors, rank number for minors, -1 when unknown
	Suit        string
	Rank        string
	Orientation Orientation
	Position    string
	Meaning     string
}

// Normalize resolves the three alternate number fields (number, cardNumber,
// card_number, in that precedence) and falls back to the trump table for
// majors named without a number.
func Normalize(r Record) Card {
	c := Card{
		Name:        strings.TrimSpace(r.Card),
		Number:      -1,
		Suit:        canonicalSuit(r.Suit),
		Rank:        strings.TrimSpace(r.Rank),
		Orientation: normalizeOrientation(r.Orientation),
		Position:    strings.TrimSpace(r.Position),
		Meaning:     strings.TrimSpace(r.Meaning),
	}
	switch {
	case r.Number != nil:
		c.Number = *r.Number
	case r.CardNumber != nil:
		c.Number = *r.CardNumber
	case r.CardNum != nil:
		c.Number = *r.CardNum
	default:
		if n, ok := TrumpNumber(c.Name); ok {
			c.Number = n
		} else if n, ok := rankNumbers[strings.ToLower(c.Rank)]; ok {
			c.Number = n
		}
	}
	return c
}

// NormalizeAll maps Normalize over a drawn spread, preserving order.
func NormalizeAll(records []Record) []Card {
	out := make([]Card, len(records))
	for i, r := range records {
		out[i] = Normalize(r)
	}
	return out
}

func normalizeOrientation(o Orientation) Orientation {
	if strings.EqualFold(string(o), string(Reversed)) {
		return Reversed
	}
	return Upright
}

func canonicalSuit(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wands", "rods", "staves":
		return "Wands"
	case "cups", "chalices":
		return "Cups"
	case "swords", "blades":
		return "Swords"
	case "pentacles", "disks", "coins":
		return "Pentacles"
	case "":
		return ""
	default:
		w := strings.ToLower(strings.TrimSpace(s))
		return strings.ToUpper(w[:1]) + w[1:]
	}
}

var rankNumbers = map[string]int{
	"ace": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"page": 11, "knight": 12, "queen": 13, "king": 14,
}

// IsMajor reports whether the card is a trump. Suit presence wins over the
// number: a "Two of Cups" with number 2 is still minor.
func (c Card) IsMajor() bool {
	if c.Suit != "" {
		return false
	}
	_, ok := TrumpNumber(c.Name)
	return ok
}

func (c Card) IsMinor() bool { return c.Suit != "" }

// Element returns the elemental attribution: suit element for minors, the
// trump's own attribution for majors, empty string when unknown.
func (c Card) Element() string {
	if c.Suit != "" {
		return SuitElement(c.Suit)
	}
	if corr, ok := TrumpCorrespondence(c.Name); ok {
		return corr.Element
	}
	return ""
}
