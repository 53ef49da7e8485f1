package enrich

import (
	"strings"
	"testing"

	"github.com/mirelabs/arcanum/internal/cards"
)

func TestImageryHookCoversAllTrumps(t *testing.T) {
	for n := 0; n <= 21; n++ {
		up := ImageryHook(n, cards.Upright)
		rev := ImageryHook(n, cards.Reversed)
		if up == "" || rev == "" {
			t.Fatalf("trump %d missing imagery", n)
		}
		if up == rev {
			t.Fatalf("trump %d has identical upright/reversed imagery", n)
		}
	}
	if ImageryHook(22, cards.Upright) != "" {
		t.Fatal("out-of-range trump number should return empty")
	}
	if ImageryHook(-1, cards.Upright) != "" {
		t.Fatal("negative trump number should return empty")
	}
}

func TestMinorImageryKeyedBySuit(t *testing.T) {
	c := cards.Card{Name: "Three of Cups", Suit: "Cups", Orientation: cards.Upright}
	if MinorImageryHook(c) == "" {
		t.Fatal("Cups card should have imagery")
	}
	major := cards.Card{Name: "The Sun", Orientation: cards.Upright}
	if MinorImageryHook(major) != "" {
		t.Fatal("major without suit should return empty")
	}
}

func TestMinorSummary(t *testing.T) {
	c := cards.Card{Name: "Two of Cups", Suit: "Cups", Number: 2, Orientation: cards.Upright}
	s := MinorSummary(c)
	if !strings.Contains(s, "Cups") {
		t.Fatalf("summary should name the suit: %q", s)
	}
	rev := c
	rev.Orientation = cards.Reversed
	if !strings.Contains(MinorSummary(rev), "Reversed") {
		t.Fatal("reversed summary should acknowledge reversal")
	}
	if MinorSummary(cards.Card{Name: "The Sun"}) != "" {
		t.Fatal("major should return empty summary")
	}
}

func TestElementalRelationVocabulary(t *testing.T) {
	cases := []struct {
		e1, e2 string
		want   Relation
	}{
		{"Fire", "Fire", RelationAmplified},
		{"Fire", "Air", RelationSupportive},
		{"Air", "Fire", RelationSupportive},
		{"Water", "Earth", RelationSupportive},
		{"Fire", "Water", RelationTension},
		{"Air", "Earth", RelationTension},
		{"Fire", "Earth", RelationNeutral},
		{"", "Fire", RelationNeutral},
		{"Aether", "Fire", RelationNeutral},
	}
	for _, tc := range cases {
		if got := ElementalRelation(tc.e1, tc.e2); got != tc.want {
			t.Errorf("ElementalRelation(%q, %q) = %q, want %q", tc.e1, tc.e2, got, tc.want)
		}
	}
}

func TestRelationTakeawayUnknownFallsBack(t *testing.T) {
	if RelationKnown(Relation("surprising")) {
		t.Fatal("unknown relation should not be known")
	}
	if RelationTakeaway(Relation("surprising")) != relationTakeaways[RelationNeutral] {
		t.Fatal("unknown relation should fall back to the neutral takeaway")
	}
}

func TestElementalImageryPairs(t *testing.T) {
	if ElementalImagery("Fire", "Water") == "" {
		t.Fatal("Fire|Water pair should have imagery")
	}
	if ElementalImagery("fire", "water") == "" {
		t.Fatal("element lookup should be case-insensitive")
	}
	if ElementalImagery("Fire", "Aether") != "" {
		t.Fatal("unknown element should return empty")
	}
}

func TestLensesGatedByContext(t *testing.T) {
	for _, ctx := range []string{"self", "spiritual", "general"} {
		if !ShouldSurfaceAstroLens(ctx) || !ShouldSurfaceQabalahLens(ctx) {
			t.Errorf("context %q should surface esoteric lenses", ctx)
		}
	}
	for _, ctx := range []string{"love", "career", "wellbeing"} {
		if ShouldSurfaceAstroLens(ctx) || ShouldSurfaceQabalahLens(ctx) {
			t.Errorf("context %q should not surface esoteric lenses", ctx)
		}
	}
}

func TestAstroAndQabalahForCard(t *testing.T) {
	if s := AstroForCard("The Sun"); !strings.Contains(s, "Sun") {
		t.Fatalf("astro lens for The Sun: %q", s)
	}
	if s := QabalahForCard("The Fool"); !strings.Contains(s, "Aleph") {
		t.Fatalf("qabalah lens for The Fool: %q", s)
	}
	if AstroForCard("Two of Cups") != "" || QabalahForCard("Two of Cups") != "" {
		t.Fatal("minors should have no esoteric lens")
	}
}

// Strength and Justice swap numerals between decks; every lens must agree on
// which card is which regardless of the name used to look it up.
func TestStrengthAndJusticeAttributions(t *testing.T) {
	if s := AstroForCard("Strength"); !strings.Contains(s, "Leo") {
		t.Errorf("astro lens for Strength = %q, want Leo", s)
	}
	if s := AstroForCard("Justice"); !strings.Contains(s, "Libra") {
		t.Errorf("astro lens for Justice = %q, want Libra", s)
	}
	if s := QabalahForCard("Lust"); !strings.Contains(s, "Teth") {
		t.Errorf("qabalah lens for Lust = %q, want Teth", s)
	}
	if s := QabalahForCard("Adjustment"); !strings.Contains(s, "Lamed") {
		t.Errorf("qabalah lens for Adjustment = %q, want Lamed", s)
	}

	strength, ok := cards.TrumpNumber("Lust")
	if !ok {
		t.Fatal("Lust should resolve to a trump number")
	}
	if s := ImageryHook(strength, cards.Upright); !strings.Contains(s, "lion") {
		t.Errorf("imagery for Strength/Lust = %q, want the lion", s)
	}
	justice, ok := cards.TrumpNumber("Adjustment")
	if !ok {
		t.Fatal("Adjustment should resolve to a trump number")
	}
	if s := ImageryHook(justice, cards.Upright); !strings.Contains(s, "scales") {
		t.Errorf("imagery for Justice/Adjustment = %q, want the scales", s)
	}
}
