package cards

import "testing"

func intPtr(n int) *int { return &n }

func TestNormalizeResolvesAlternateNumberFields(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		want int
	}{
		{"number", Record{Card: "The Sun", Number: intPtr(19)}, 19},
		{"cardNumber", Record{Card: "The Sun", CardNumber: intPtr(19)}, 19},
		{"card_number", Record{Card: "The Sun", CardNum: intPtr(19)}, 19},
		{"trump lookup", Record{Card: "The Sun"}, 19},
		{"rank lookup", Record{Card: "Two of Cups", Suit: "Cups", Rank: "Two"}, 2},
		{"unknown", Record{Card: "Not A Card"}, -1},
	}
	for _, tc := range cases {
		got := Normalize(tc.rec).Number
		if got != tc.want {
			t.Errorf("%s: number = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestNormalizePrecedenceNumberWins(t *testing.T) {
	rec := Record{Card: "The Sun", Number: intPtr(3), CardNumber: intPtr(19)}
	if got := Normalize(rec).Number; got != 3 {
		t.Fatalf("number field should win precedence, got %d", got)
	}
}

func TestNormalizeOrientationDefaultsUpright(t *testing.T) {
	if Normalize(Record{Card: "Death", Orientation: "sideways"}).Orientation != Upright {
		t.Fatal("unrecognized orientation should normalize to upright")
	}
	if Normalize(Record{Card: "Death", Orientation: "Reversed"}).Orientation != Reversed {
		t.Fatal("case-insensitive reversed should normalize to reversed")
	}
}

func TestCanonicalSuitAliases(t *testing.T) {
	cases := map[string]string{
		"disks": "Pentacles", "coins": "Pentacles", "rods": "Wands",
		"chalices": "Cups", "blades": "Swords", "CUPS": "Cups",
	}
	for in, want := range cases {
		if got := canonicalSuit(in); got != want {
			t.Errorf("canonicalSuit(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsMajorSuitWinsOverNumber(t *testing.T) {
	minor := Normalize(Record{Card: "Two of Cups", Suit: "Cups", Rank: "Two", Number: intPtr(2)})
	if minor.IsMajor() {
		t.Fatal("minor with a number should not be major")
	}
	major := Normalize(Record{Card: "The Fool"})
	if !major.IsMajor() {
		t.Fatal("The Fool should be major")
	}
}

func TestElement(t *testing.T) {
	if e := Normalize(Record{Card: "Ace of Wands", Suit: "Wands", Rank: "Ace"}).Element(); e != "Fire" {
		t.Fatalf("Wands element = %q, want Fire", e)
	}
	if e := Normalize(Record{Card: "The Moon"}).Element(); e != "Water" {
		t.Fatalf("The Moon element = %q, want Water", e)
	}
	if e := Normalize(Record{Card: "Not A Card"}).Element(); e != "" {
		t.Fatalf("unknown card element = %q, want empty", e)
	}
}

func TestDeckAliases(t *testing.T) {
	if got := DeckAlias("thoth", "The Magician"); got != "The Magus" {
		t.Fatalf("thoth alias = %q", got)
	}
	if got := DeckAlias("rws", "The Magician"); got != "The Magician" {
		t.Fatalf("rws should not alias, got %q", got)
	}
	if got := DeckSuit("thoth", "Pentacles"); got != "Disks" {
		t.Fatalf("thoth suit alias = %q", got)
	}
	if got := DeckRank("thoth", "King"); got != "Knight" {
		t.Fatalf("thoth rank alias = %q", got)
	}
}

func TestThothTitlesResolveToTrumps(t *testing.T) {
	for thoth, rws := range map[string]string{
		"The Magus": "The Magician", "Adjustment": "Justice", "Lust": "Strength",
		"The Aeon": "Judgement", "The Universe": "The World",
	} {
		a, okA := TrumpNumber(thoth)
		b, okB := TrumpNumber(rws)
		if !okA || !okB || a != b {
			t.Errorf("%s should resolve to the same trump as %s", thoth, rws)
		}
	}
}
