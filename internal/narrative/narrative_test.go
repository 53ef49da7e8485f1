package narrative

import (
	"strings"
	"testing"

	"github.com/mirelabs/arcanum/internal/cards"
	"github.com/mirelabs/arcanum/internal/reasoning"
	"github.com/mirelabs/arcanum/internal/templates"
)

func major(name string, number int, position string) cards.Card {
	return cards.Card{Name: name, Number: number, Orientation: cards.Upright, Position: position}
}

func minor(name, suit, rank string, number int, position string) cards.Card {
	return cards.Card{Name: name, Suit: suit, Rank: rank, Number: number, Orientation: cards.Upright, Position: position}
}

var threeCardLabels = []string{
	"Past — what shaped this (Card 1)",
	"Present — where you stand (Card 2)",
	"Future — where this leads (Card 3)",
}

func threeCardPayload() Payload {
	list := []cards.Card{
		minor("Nine of Swords", "Swords", "Nine", 9, threeCardLabels[0]),
		major("The Tower", 16, threeCardLabels[1]),
		major("The Sun", 19, threeCardLabels[2]),
	}
	return Payload{
		Cards:     list,
		Question:  "Will this hardship pass?",
		Context:   "general",
		SpreadKey: "three_card",
		Analysis:  AnalyzeSpread("three_card", list),
	}
}

func celticLabels() []string {
	return []string{
		"Present — core situation (Card 1)",
		"Challenge — what crosses you (Card 2)",
		"Foundation — subconscious root (Card 3)",
		"Recent past — what is leaving (Card 4)",
		"Crown — conscious aim (Card 5)",
		"Near future — what approaches (Card 6)",
		"Advice — how to meet it (Card 7)",
		"External influences — the world around you (Card 8)",
		"Hopes and fears — the inner weather (Card 9)",
		"Outcome — the current trajectory (Card 10)",
	}
}

func celticPayload() Payload {
	labels := celticLabels()
	list := []cards.Card{
		major("The Magician", 1, labels[0]),
		minor("Five of Swords", "Swords", "Five", 5, labels[1]),
		major("The Moon", 18, labels[2]),
		minor("Six of Cups", "Cups", "Six", 6, labels[3]),
		major("The Star", 17, labels[4]),
		minor("Eight of Wands", "Wands", "Eight", 8, labels[5]),
		major("Temperance", 14, labels[6]),
		minor("Four of Pentacles", "Pentacles", "Four", 4, labels[7]),
		minor("Nine of Cups", "Cups", "Nine", 9, labels[8]),
		major("The World", 21, labels[9]),
	}
	return Payload{
		Cards:     list,
		Question:  "Where is my work headed?",
		Context:   "career",
		SpreadKey: "celtic_cross",
		Analysis:  AnalyzeSpread("celtic_cross", list),
	}
}

func optsFor(p Payload, seed uint64) Options {
	ch := reasoning.BuildChain(p.Cards, p.Question, p.Context, p.SpreadKey)
	return Options{
		Reasoning: &ch,
		RNG:       templates.NewSeededRNG(seed),
		Rotation:  2,
	}
}

func TestNormalizeContext(t *testing.T) {
	warnings := 0
	warn := func(format string, args ...any) { warnings++ }

	if got := NormalizeContext("Love", warn); got != "love" {
		t.Fatalf("NormalizeContext(Love) = %q, want love", got)
	}
	if warnings != 0 {
		t.Fatalf("known context produced %d warnings", warnings)
	}
	if got := NormalizeContext("", warn); got != "general" {
		t.Fatalf("NormalizeContext(empty) = %q, want general", got)
	}
	if warnings != 0 {
		t.Fatalf("empty context produced %d warnings", warnings)
	}
	if got := NormalizeContext("finances", warn); got != "general" {
		t.Fatalf("NormalizeContext(finances) = %q, want general", got)
	}
	if warnings != 1 {
		t.Fatalf("unknown context produced %d warnings, want exactly 1", warnings)
	}
}

func TestRegistryHasAllSpreads(t *testing.T) {
	for _, key := range []string{"single", "three_card", "five_card", "relationship", "decision", "celtic_cross"} {
		if _, ok := ForSpread(key); !ok {
			t.Errorf("no builder registered for %q", key)
		}
	}
	if _, ok := ForSpread("horseshoe"); ok {
		t.Errorf("unexpected builder registered for horseshoe")
	}
}

func TestThreeCardHappyPath(t *testing.T) {
	p := threeCardPayload()
	res := mustBuild(t, p, optsFor(p, 11))

	if !res.OK() {
		t.Fatalf("expected ok result, got status=%s reason=%q", res.Status, res.Reason)
	}
	for _, label := range threeCardLabels {
		if !strings.Contains(res.Text, label) {
			t.Errorf("narrative missing position label %q", label)
		}
	}
	for _, name := range []string{"Nine of Swords", "The Tower", "The Sun"} {
		if !strings.Contains(res.Text, name) {
			t.Errorf("narrative missing card name %q", name)
		}
	}
	if !strings.Contains(res.Text, p.Question) {
		t.Errorf("narrative does not echo the question")
	}
}

func TestWrongCountFallback(t *testing.T) {
	p := celticPayload()
	p.Cards = p.Cards[:7]
	p.Analysis = AnalyzeSpread(p.SpreadKey, p.Cards)

	res := mustBuild(t, p, optsFor(p, 3))
	if res.OK() {
		t.Fatalf("expected fallback for 7-card celtic payload")
	}
	if res.Expected != 10 || res.Received != 7 {
		t.Fatalf("fallback counts = (%d, %d), want (10, 7)", res.Expected, res.Received)
	}
	if !strings.Contains(res.Text, "expected=10, received=7") {
		t.Fatalf("fallback text %q does not name the counts", res.Text)
	}
}

func TestZeroCardsFallback(t *testing.T) {
	p := Payload{SpreadKey: "single", Context: "general"}
	res := mustBuild(t, p, Options{})
	if res.OK() || res.Received != 0 || res.Expected != 1 {
		t.Fatalf("zero-card payload: got status=%s expected=%d received=%d", res.Status, res.Expected, res.Received)
	}
}

func TestIncompleteCardFallback(t *testing.T) {
	p := threeCardPayload()
	p.Cards[1].Position = ""
	res := mustBuild(t, p, Options{})
	if res.OK() {
		t.Fatalf("expected fallback for card with no position")
	}
	if !strings.Contains(res.Reason, "index 1") {
		t.Fatalf("fallback reason %q does not name the bad index", res.Reason)
	}
}

func TestCelticCrossHappyPath(t *testing.T) {
	p := celticPayload()
	res := mustBuild(t, p, optsFor(p, 99))
	if !res.OK() {
		t.Fatalf("expected ok result, got status=%s reason=%q", res.Status, res.Reason)
	}
	for _, label := range celticLabels() {
		if !strings.Contains(res.Text, label) {
			t.Errorf("narrative missing position label %q", label)
		}
	}
	if issues := ValidateReadingNarrative(res.Text, p); len(issues) != 0 {
		t.Errorf("validation flagged a complete narrative: %v", issues)
	}
}

func TestSameSeedSameNarrative(t *testing.T) {
	p := celticPayload()
	a := mustBuild(t, p, optsFor(p, 42))
	b := mustBuild(t, p, optsFor(p, 42))
	if a.Text != b.Text {
		t.Fatalf("equal seeds produced different narratives")
	}
	c := mustBuild(t, p, optsFor(p, 43))
	if a.Text == c.Text {
		t.Logf("different seeds produced identical narratives; phrase pools may be single-variant on this path")
	}
}

func TestReadingWithoutReasoningStillComposes(t *testing.T) {
	p := threeCardPayload()
	res := mustBuild(t, p, Options{RNG: templates.NewSeededRNG(5)})
	if !res.OK() {
		t.Fatalf("composition without a reasoning chain failed: %q", res.Reason)
	}
	for _, label := range threeCardLabels {
		if !strings.Contains(res.Text, label) {
			t.Errorf("narrative missing position label %q", label)
		}
	}
}

func TestWeightNoteOnHeavyPosition(t *testing.T) {
	label := "Advice — what to do (Card 4)"
	in := CardTextInput{
		Card:      minor("Queen of Cups", "Cups", "Queen", 13, label),
		Index:     3,
		SpreadKey: "five_card",
		Context:   "general",
	}
	text := BuildPositionCardText(in, Options{})
	if !strings.Contains(text, "unusual weight") {
		t.Errorf("weight 0.9 position did not get the weight note: %q", text)
	}

	in.Card.Position = "Hidden influence — beneath the surface (Card 3)"
	in.Index = 2
	text = BuildPositionCardText(in, Options{})
	if strings.Contains(text, "unusual weight") {
		t.Errorf("weight 0.6 position got the weight note: %q", text)
	}
}

func TestUnknownLabelFallsBackWithWarning(t *testing.T) {
	warnings := 0
	in := CardTextInput{
		Card:      major("The Fool", 0, "Somewhere Strange (Card 1)"),
		SpreadKey: "single",
		Context:   "general",
	}
	text := BuildPositionCardText(in, Options{Warn: func(string, ...any) { warnings++ }})
	if warnings != 1 {
		t.Fatalf("unknown label produced %d warnings, want 1", warnings)
	}
	if !strings.Contains(text, "The Fool") {
		t.Fatalf("fallback text does not name the card: %q", text)
	}
}

func TestProfileShapesOpeningAndClosing(t *testing.T) {
	p := threeCardPayload()
	p.Profile = &Profile{DisplayName: "Ana", Tone: "direct", Depth: "brief"}

	res := mustBuild(t, p, optsFor(p, 8))
	if !res.OK() {
		t.Fatalf("status = %s", res.Status)
	}
	if !strings.Contains(res.Text, "Ana, this is a three card reading") {
		t.Errorf("opening does not address the querent by name")
	}
	if !strings.Contains(res.Text, "That is the reading.") {
		t.Errorf("direct tone closing missing")
	}

	plain := threeCardPayload()
	plainRes := mustBuild(t, plain, optsFor(plain, 8))
	if strings.Contains(plainRes.Text, "Ana") {
		t.Errorf("profile leaked into an unprofiled reading")
	}
}

func TestRemediesDeterministic(t *testing.T) {
	list := []cards.Card{
		minor("Two of Wands", "Wands", "Two", 2, "a"),
		minor("Five of Wands", "Wands", "Five", 5, "b"),
		minor("Ace of Wands", "Wands", "Ace", 1, "c"),
	}
	a := BuildElementalRemedies(list, "love", 4)
	b := BuildElementalRemedies(list, "love", 4)
	if a == "" {
		t.Fatalf("all-Fire spread produced no remedy")
	}
	if a != b {
		t.Fatalf("same rotation produced different remedies:\n%q\n%q", a, b)
	}
	if c := BuildElementalRemedies(list, "love", 5); c == a {
		t.Errorf("rotation change did not change the remedy")
	}
	if !strings.Contains(a, "Fire") {
		t.Errorf("remedy does not name the dominant element: %q", a)
	}
}

func TestRemediesSkipSmallAndBalancedSpreads(t *testing.T) {
	small := []cards.Card{
		minor("Two of Wands", "Wands", "Two", 2, "a"),
		minor("Two of Cups", "Cups", "Two", 2, "b"),
	}
	if got := BuildElementalRemedies(small, "general", 0); got != "" {
		t.Errorf("two-card spread produced a remedy: %q", got)
	}

	balanced := []cards.Card{
		minor("Two of Wands", "Wands", "Two", 2, "a"),
		minor("Two of Cups", "Cups", "Two", 2, "b"),
		minor("Two of Swords", "Swords", "Two", 2, "c"),
		minor("Two of Pentacles", "Pentacles", "Two", 2, "d"),
	}
	if got := BuildElementalRemedies(balanced, "general", 0); got != "" {
		t.Errorf("balanced four-element spread produced a remedy: %q", got)
	}
}

func TestValidateFlagsMissingPieces(t *testing.T) {
	p := threeCardPayload()
	issues := ValidateReadingNarrative("A short text naming nothing.", p)
	if len(issues) == 0 {
		t.Fatalf("validation passed a narrative missing every card")
	}
	if got := ValidateReadingNarrative("", p); len(got) != 1 || got[0] != "narrative is empty" {
		t.Fatalf("empty narrative validation = %v", got)
	}
}

func mustBuild(t *testing.T, p Payload, opts Options) NarrativeResult {
	t.Helper()
	b, ok := ForSpread(p.SpreadKey)
	if !ok {
		t.Fatalf("no builder for spread %q", p.SpreadKey)
	}
	return b.Build(p, opts)
}
