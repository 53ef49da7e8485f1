package reading

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mirelabs/arcanum/internal/cards"
	"github.com/mirelabs/arcanum/internal/narrative"
	"github.com/mirelabs/arcanum/internal/reasoning"
	"github.com/mirelabs/arcanum/internal/templates"
)

// Service composes readings. The zero value is not usable; construct with
// NewService.
type Service struct {
	log *slog.Logger
	now func() time.Time
}

func NewService(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{log: log, now: time.Now}
}

// Compose runs the full pipeline for one request: normalize the cards and
// context, build the reasoning chain, dispatch to the spread builder, run
// the advisory validation, and package the envelope. The only error is an
// unknown spread key; malformed card input comes back as a fallback
// reading, not an error.
func (s *Service) Compose(ctx context.Context, req Request) (*Reading, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	builder, ok := narrative.ForSpread(req.SpreadKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpread, req.SpreadKey)
	}

	var warnings []string
	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		warnings = append(warnings, msg)
		s.log.Warn("composition warning", "spread", req.SpreadKey, "detail", msg)
	}

	list := cards.NormalizeAll(req.Cards)
	contextKey := narrative.NormalizeContext(req.Context, warn)

	seed := req.Seed
	if seed == 0 {
		seed = uint64(s.now().UnixNano())
	}

	chain := reasoning.BuildChain(list, req.Question, contextKey, req.SpreadKey)
	payload := narrative.Payload{
		Cards:     list,
		Question:  req.Question,
		Context:   contextKey,
		SpreadKey: req.SpreadKey,
		Deck:      req.Deck,
		Analysis:  narrative.AnalyzeSpread(req.SpreadKey, list),
		Profile:   req.Profile,
	}
	opts := narrative.Options{
		Reasoning: &chain,
		RNG:       templates.NewSeededRNG(seed),
		Rotation:  req.Rotation,
		Warn:      warn,
	}

	res := builder.Build(payload, opts)

	var validation []string
	if res.OK() {
		validation = narrative.ValidateReadingNarrative(res.Text, payload)
		for _, issue := range validation {
			s.log.Warn("narrative validation finding", "spread", req.SpreadKey, "issue", issue)
		}
	}

	r := &Reading{
		ID:             uuid.NewString(),
		CreatedAt:      s.now().UTC(),
		SpreadKey:      req.SpreadKey,
		Context:        contextKey,
		Question:       req.Question,
		Deck:           req.Deck,
		Seed:           seed,
		Status:         res.Status,
		Narrative:      res.Text,
		FallbackReason: res.Reason,
		ExpectedCards:  res.Expected,
		ReceivedCards:  len(list),
		Reasoning:      &chain,
		Validation:     validation,
		Warnings:       warnings,
	}
	r.ReportMarkdown = BuildReport(r)

	s.log.Info("reading composed",
		"id", r.ID,
		"spread", r.SpreadKey,
		"context", r.Context,
		"status", r.Status,
		"cards", r.ReceivedCards,
		"warnings", len(warnings),
		"validationFindings", len(validation),
	)
	return r, nil
}

// Spreads lists the spread keys this service can compose.
func (s *Service) Spreads() []string {
	return narrative.SpreadKeys()
}
