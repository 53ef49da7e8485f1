package narrative

import (
	"fmt"
	"strings"

	"github.com/mirelabs/arcanum/internal/reasoning"
)

// Section is one titled block of a reading. Builders assemble sections, run
// each through EnhanceSection, then join them into the final narrative.
type Section struct {
	Title string
	Body  string
}

// EnhanceSection applies the reasoning emphasis for the card at cardIndex to
// a finished section body. High emphasis earns a closing attention sentence;
// moderate emphasis earns a lighter one. Sections without a matching
// emphasis entry pass through unchanged. Pass a negative cardIndex for
// sections that are not about a single card.
func EnhanceSection(sec Section, cardIndex int, opts Options) Section {
	ch := opts.Reasoning
	if ch == nil || cardIndex < 0 || cardIndex >= len(ch.EmphasisMap) {
		return sec
	}
	switch ch.EmphasisMap[cardIndex].Emphasis {
	case reasoning.EmphasisHigh:
		sec.Body += " Of all the cards on the table, this is the one to return to when the reading has settled."
	case reasoning.EmphasisModerate:
		sec.Body += " Give this card a second look before moving on."
	}
	return sec
}

// assemble renders sections into one narrative string with markdown-style
// headings, skipping empty bodies.
func assemble(sections []Section) string {
	var b strings.Builder
	for _, s := range sections {
		if strings.TrimSpace(s.Body) == "" {
			continue
		}
		if s.Title != "" {
			if b.Len() > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString("### ")
			b.WriteString(s.Title)
			b.WriteString("\n\n")
		} else if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strings.TrimSpace(s.Body))
	}
	return b.String()
}

// ValidateReadingNarrative is the advisory structural check run over a
// finished narrative. It reports what looks wrong and never blocks output;
// callers log the findings and ship the text anyway.
func ValidateReadingNarrative(text string, p Payload) []string {
	var issues []string
	if strings.TrimSpace(text) == "" {
		return []string{"narrative is empty"}
	}
	lower := strings.ToLower(text)
	for i, c := range p.Cards {
		name := strings.ToLower(c.Name)
		if name != "" && !strings.Contains(lower, name) {
			// Thoth-style deck aliases render under a different title.
			if p.Deck == "" || p.Deck == "rider_waite" {
				issues = append(issues, fmt.Sprintf("card %d (%s) is never named in the narrative", i+1, c.Name))
			}
		}
		if c.Position != "" && !strings.Contains(text, c.Position) {
			issues = append(issues, fmt.Sprintf("position label %q does not appear in the narrative", c.Position))
		}
	}
	if len(p.Cards) > 1 && !strings.Contains(text, "###") {
		issues = append(issues, "multi-card narrative has no section headings")
	}
	if p.Question != "" && !strings.Contains(text, p.Question) {
		issues = append(issues, "the question is never echoed back to the querent")
	}
	return issues
}
