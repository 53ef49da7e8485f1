// Package narrative assembles the final reading text. Each spread shape is a
// fixed linear pipeline of section constructors behind one SpreadBuilder
// interface; builders degrade to a structured fallback on malformed input and
// treat the reasoning chain as additive: composition is correct without it.
package narrative

import (
	"fmt"

	"github.com/mirelabs/arcanum/internal/cards"
	"github.com/mirelabs/arcanum/internal/reasoning"
	"github.com/mirelabs/arcanum/internal/templates"
)

type ResultStatus string

const (
	StatusOK       ResultStatus = "ok"
	StatusFallback ResultStatus = "fallback"
)

// NarrativeResult is the tagged output of a builder: either composed text or
// a fallback naming what went wrong. Fallback is a product, not an error;
// it is user-facing prose.
type NarrativeResult struct {
	Status   ResultStatus
	Text     string
	Reason   string
	Expected int
	Received int
}

func (r NarrativeResult) OK() bool { return r.Status == StatusOK }

func okResult(text string) NarrativeResult {
	return NarrativeResult{Status: StatusOK, Text: text}
}

// Profile is the read-only personalization input. It shifts opening and
// closing phrasing only; card interpretation never depends on it.
type Profile struct {
	DisplayName    string   `json:"displayName,omitempty"`
	Tone           string   `json:"tone,omitempty"`           // warm | direct | poetic
	SpiritualFrame string   `json:"spiritualFrame,omitempty"` // psychological | mystical
	FocusAreas     []string `json:"focusAreas,omitempty"`
	Depth          string   `json:"depth,omitempty"` // brief | standard | deep
}

// Payload is the per-reading input to a builder.
type Payload struct {
	Cards     []cards.Card
	Question  string
	Context   string // already normalized
	SpreadKey string
	Deck      string
	Analysis  *SpreadAnalysis
	Profile   *Profile
}

// Options carries the cross-cutting collaborators. Reasoning is optional and
// only ever upgrades output; RNG drives phrase variety (nil degrades to the
// first variant everywhere); Warn is the side channel for recovered
// anomalies; Rotation feeds the remedy selector.
type Options struct {
	Reasoning *reasoning.Chain
	RNG       templates.RNG
	Rotation  int
	Warn      WarnFn
}

type WarnFn func(format string, args ...any)

func (o Options) warnf(format string, args ...any) {
	if o.Warn != nil {
		o.Warn(format, args...)
	}
}

// SpreadBuilder composes one spread shape into a narrative.
type SpreadBuilder interface {
	Build(p Payload, opts Options) NarrativeResult
}

var registry = map[string]SpreadBuilder{}

func register(spreadKey string, b SpreadBuilder) {
	registry[spreadKey] = b
}

// ForSpread resolves a builder by spread key.
func ForSpread(spreadKey string) (SpreadBuilder, bool) {
	b, ok := registry[spreadKey]
	return b, ok
}

// SpreadKeys lists the registered spread identifiers.
func SpreadKeys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	return keys
}

// guardCards is the shared entry check every builder runs: zero cards and
// wrong counts become fallback artifacts, as do cards missing their name or
// position. A nil return means the payload is usable.
func guardCards(p Payload, expected int, spreadName string) *NarrativeResult {
	if len(p.Cards) == 0 {
		return &NarrativeResult{
			Status:   StatusFallback,
			Reason:   fmt.Sprintf("no cards were drawn for the %s spread", spreadName),
			Expected: expected,
			Received: 0,
			Text: fmt.Sprintf("The %s spread could not be read: expected %d cards but received 0. "+
				"Draw again and the cards will be waiting.", spreadName, expected),
		}
	}
	if len(p.Cards) != expected {
		return &NarrativeResult{
			Status:   StatusFallback,
			Reason:   fmt.Sprintf("wrong card count for the %s spread", spreadName),
			Expected: expected,
			Received: len(p.Cards),
			Text: fmt.Sprintf("The %s spread could not be read: expected=%d, received=%d. "+
				"A complete draw is needed before an interpretation can be composed.", spreadName, expected, len(p.Cards)),
		}
	}
	for i, c := range p.Cards {
		if c.Name == "" || c.Position == "" {
			return &NarrativeResult{
				Status:   StatusFallback,
				Reason:   fmt.Sprintf("card at index %d is missing its name or position", i),
				Expected: expected,
				Received: len(p.Cards),
				Text: fmt.Sprintf("The %s spread could not be read: the card at position %d arrived incomplete. "+
					"Each drawn card needs both a name and a position.", spreadName, i+1),
			}
		}
	}
	return nil
}
