package reading

import (
	"fmt"
	"strings"
	"time"

	"github.com/mirelabs/arcanum/internal/narrative"
)

const Disclaimer = "This reading is composed for reflection. It describes patterns and possibilities, not fixed outcomes, and it is not a substitute for professional advice."

// BuildReport renders the shareable markdown document for a reading: the
// narrative itself, followed by an analysis summary and any advisory
// findings.
func BuildReport(r *Reading) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tarot Reading\n\n")
	fmt.Fprintf(&b, "- Reading ID: %s\n", r.ID)
	fmt.Fprintf(&b, "- Spread: %s\n", r.SpreadKey)
	fmt.Fprintf(&b, "- Context: %s\n", r.Context)
	if r.Question != "" {
		fmt.Fprintf(&b, "- Question: %s\n", sanitizeLine(r.Question))
	}
	if r.Deck != "" {
		fmt.Fprintf(&b, "- Deck: %s\n", r.Deck)
	}
	fmt.Fprintf(&b, "- Date: %s\n\n", r.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "%s\n\n", Disclaimer)

	if r.Status != narrative.StatusOK {
		fmt.Fprintf(&b, "## Incomplete Reading\n\n")
		fmt.Fprintf(&b, "%s\n\n", r.Narrative)
		fmt.Fprintf(&b, "- Reason: %s\n", sanitizeLine(r.FallbackReason))
		fmt.Fprintf(&b, "- Cards expected: %d, received: %d\n", r.ExpectedCards, r.ReceivedCards)
		return b.String()
	}

	fmt.Fprintf(&b, "## The Reading\n\n")
	fmt.Fprintf(&b, "%s\n\n", r.Narrative)

	if ch := r.Reasoning; ch != nil {
		fmt.Fprintf(&b, "## How This Reading Was Built\n\n")
		fmt.Fprintf(&b, "- Question intent: `%s` (focus: %s, urgency: %s)\n",
			ch.QuestionIntent.Type, ch.QuestionIntent.FocusArea, ch.QuestionIntent.Urgency)
		fmt.Fprintf(&b, "- Narrative arc: %s\n", ch.NarrativeArc.Name)
		if ch.Pivot.Index >= 0 && ch.Pivot.Card != "" {
			fmt.Fprintf(&b, "- Pivot card: %s (position %d)\n", ch.Pivot.Card, ch.Pivot.Index+1)
		}
		fmt.Fprintf(&b, "- Emotional arc: %s\n", ch.EmotionalArc.Direction)
		fmt.Fprintf(&b, "- Tensions detected: %d\n", len(ch.Tensions))
		for _, e := range ch.EmphasisMap {
			if e.Emphasis == "high" {
				fmt.Fprintf(&b, "- High emphasis: %s (%s)\n", e.Card, strings.Join(e.Reasons, ", "))
			}
		}
		b.WriteString("\n")
	}

	if len(r.Warnings) > 0 || len(r.Validation) > 0 {
		fmt.Fprintf(&b, "## Composition Notes\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- Warning: %s\n", sanitizeLine(w))
		}
		for _, v := range r.Validation {
			fmt.Fprintf(&b, "- Finding: %s\n", sanitizeLine(v))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func sanitizeLine(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if s == "" {
		return "-"
	}
	return s
}
