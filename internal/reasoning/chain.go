package reasoning

import (
	"fmt"
	"time"

	"github.com/mirelabs/arcanum/internal/cards"
)

// Chain is the single per-reading analysis artifact handed to composition.
// It is always fully populated once built: analyzers that find nothing
// contribute explicit defaults, never nils that composition must special-case.
type Chain struct {
	QuestionIntent QuestionIntent  `json:"questionIntent"`
	NarrativeArc   NarrativeArc    `json:"narrativeArc"`
	Tensions       []Tension       `json:"tensions"`
	Throughlines   []string        `json:"throughlines"`
	Pivot          PivotCard       `json:"pivotCard"`
	EmotionalArc   EmotionalArc    `json:"emotionalArc"`
	EmphasisMap    []EmphasisEntry `json:"emphasisMap"`
	SynthesisHooks []string        `json:"synthesisHooks"`
	Context        string          `json:"context"`
	SpreadKey      string          `json:"spreadKey"`
	CardCount      int             `json:"cardCount"`
	Timestamp      time.Time       `json:"timestamp"`
}

// BuildChain runs every analyzer over the spread and packages the result.
func BuildChain(list []cards.Card, question, context, spreadKey string) Chain {
	intent := ClassifyQuestion(question)
	arc := IdentifyNarrativeArc(list)
	tensions := DetectTensions(list)
	if tensions == nil {
		tensions = []Tension{}
	}
	pivot := SelectPivot(list, spreadKey)
	emotional := MapEmotionalArc(list)
	emphasis := BuildEmphasisMap(list, pivot, tensions, emotional)

	ch := Chain{
		QuestionIntent: intent,
		NarrativeArc:   arc,
		Tensions:       tensions,
		Throughlines:   findThroughlines(list),
		Pivot:          pivot,
		EmotionalArc:   emotional,
		EmphasisMap:    emphasis,
		Context:        context,
		SpreadKey:      spreadKey,
		CardCount:      len(list),
		Timestamp:      time.Now(),
	}
	ch.SynthesisHooks = buildSynthesisHooks(ch)
	return ch
}

// findThroughlines looks for repetitions that run through the whole spread:
// a dominant suit, a heavy Major Arcana presence, a repeated rank.
func findThroughlines(list []cards.Card) []string {
	var lines []string
	if len(list) < 2 {
		return lines
	}

	majors := 0
	suitCounts := map[string]int{}
	rankCounts := map[int]int{}
	for _, c := range list {
		if c.IsMajor() {
			majors++
		}
		if c.Suit != "" {
			suitCounts[c.Suit]++
		}
		if c.IsMinor() && c.Number >= 1 && c.Number <= 10 {
			rankCounts[c.Number]++
		}
	}

	if float64(majors) >= 0.4*float64(len(list)) && majors >= 2 {
		lines = append(lines, fmt.Sprintf("With %d Major Arcana among %d cards, this reading speaks to forces larger than day-to-day choice.", majors, len(list)))
	}
	for _, suit := range []string{"Wands", "Cups", "Swords", "Pentacles"} {
		if n := suitCounts[suit]; n >= 2 && float64(n) >= 0.5*float64(len(list)) {
			lines = append(lines, fmt.Sprintf("The suit of %s runs through this spread, keeping the whole reading in the register of %s.", suit, suitRegister(suit)))
		}
	}
	for rank := 1; rank <= 10; rank++ {
		if rankCounts[rank] >= 2 {
			lines = append(lines, fmt.Sprintf("The number %d repeats across suits — the same stage of a story told in more than one language.", rank))
		}
	}
	return lines
}

func suitRegister(suit string) string {
	switch suit {
	case "Wands":
		return "will and initiative"
	case "Cups":
		return "feeling and relationship"
	case "Swords":
		return "thought and truth-telling"
	default:
		return "work and the material world"
	}
}

func buildSynthesisHooks(ch Chain) []string {
	hooks := []string{
		fmt.Sprintf("Taken together, the cards tell a story of %s: %s", ch.NarrativeArc.Name, ch.NarrativeArc.Description),
	}
	if ch.Pivot.Index >= 0 && ch.Pivot.Card != "" {
		hooks = append(hooks, fmt.Sprintf("The leverage in this reading sits with %s. %s", ch.Pivot.Card, ch.Pivot.Reason))
	}
	if ch.EmotionalArc.Summary != "" {
		hooks = append(hooks, ch.EmotionalArc.Summary)
	}
	switch ch.QuestionIntent.Type {
	case "decision":
		hooks = append(hooks, "Because you asked a choosing question, weigh each card as a counselor at the table rather than a prophecy.")
	case "timing":
		hooks = append(hooks, "Because you asked about timing, read the spread's movement — what is leaving, what approaches — more literally than usual.")
	case "blockage":
		hooks = append(hooks, "Because you asked about what blocks you, give the hardest card in this spread the most patient attention; blocks name their own keys.")
	case "outcome":
		hooks = append(hooks, "Because you asked where this leads, remember that outcome cards track trajectories, and trajectories answer to you.")
	}
	hooks = append(hooks, ch.NarrativeArc.Guidance)
	return hooks
}
