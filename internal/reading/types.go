// Package reading is the service layer: it takes a drawn spread off the
// wire, runs normalization, analysis, and composition, and returns one
// reading envelope per request. It holds no per-request state and is safe
// for concurrent use.
package reading

import (
	"errors"
	"time"

	"github.com/mirelabs/arcanum/internal/cards"
	"github.com/mirelabs/arcanum/internal/narrative"
	"github.com/mirelabs/arcanum/internal/reasoning"
)

var ErrUnknownSpread = errors.New("unknown spread key")

// Request is one composition request as received from a transport.
type Request struct {
	Cards     []cards.Record     `json:"cards"`
	Question  string             `json:"question,omitempty"`
	Context   string             `json:"context,omitempty"`
	SpreadKey string             `json:"spreadKey"`
	Deck      string             `json:"deck,omitempty"`
	Seed      uint64             `json:"seed,omitempty"`
	Rotation  int                `json:"rotation,omitempty"`
	Profile   *narrative.Profile `json:"profile,omitempty"`
}

// Reading is the composed envelope returned to callers and written to the
// journal. A fallback reading is still a reading: Status says which kind
// this is, and Narrative always holds user-facing text.
type Reading struct {
	ID             string                 `json:"id"`
	CreatedAt      time.Time              `json:"createdAt"`
	SpreadKey      string                 `json:"spreadKey"`
	Context        string                 `json:"context"`
	Question       string                 `json:"question,omitempty"`
	Deck           string                 `json:"deck,omitempty"`
	Seed           uint64                 `json:"seed"`
	Status         narrative.ResultStatus `json:"status"`
	Narrative      string                 `json:"narrative"`
	FallbackReason string                 `json:"fallbackReason,omitempty"`
	ExpectedCards  int                    `json:"expectedCards,omitempty"`
	ReceivedCards  int                    `json:"receivedCards"`
	Reasoning      *reasoning.Chain       `json:"reasoning,omitempty"`
	Validation     []string               `json:"validation,omitempty"`
	Warnings       []string               `json:"warnings,omitempty"`
	ReportMarkdown string                 `json:"reportMarkdown,omitempty"`
}
