package reading

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mirelabs/arcanum/internal/cards"
	"github.com/mirelabs/arcanum/internal/narrative"
)

func testService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func intp(n int) *int { return &n }

func threeCardRequest() Request {
	return Request{
		SpreadKey: "three_card",
		Question:  "What should I focus on this season?",
		Context:   "Career",
		Seed:      77,
		Cards: []cards.Record{
			{Card: "Eight of Pentacles", Suit: "pentacles", Rank: "Eight", Position: "Past — what shaped this (Card 1)"},
			{Card: "The Tower", CardNumber: intp(16), Position: "Present — where you stand (Card 2)", Orientation: cards.Reversed},
			{Card: "The Star", Number: intp(17), Position: "Future — where this leads (Card 3)"},
		},
	}
}

func TestComposeThreeCard(t *testing.T) {
	svc := testService()
	r, err := svc.Compose(context.Background(), threeCardRequest())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if r.Status != narrative.StatusOK {
		t.Fatalf("status = %s, reason = %q", r.Status, r.FallbackReason)
	}
	if r.ID == "" {
		t.Errorf("reading has no ID")
	}
	if r.Context != "career" {
		t.Errorf("context = %q, want career", r.Context)
	}
	if r.ReceivedCards != 3 {
		t.Errorf("receivedCards = %d", r.ReceivedCards)
	}
	if r.Reasoning == nil || r.Reasoning.CardCount != 3 {
		t.Errorf("reasoning chain missing or wrong card count")
	}
	for _, name := range []string{"Eight of Pentacles", "The Tower", "The Star"} {
		if !strings.Contains(r.Narrative, name) {
			t.Errorf("narrative missing %q", name)
		}
	}
	if len(r.Validation) != 0 {
		t.Errorf("unexpected validation findings: %v", r.Validation)
	}
}

func TestComposeUnknownSpread(t *testing.T) {
	svc := testService()
	req := threeCardRequest()
	req.SpreadKey = "horseshoe"
	if _, err := svc.Compose(context.Background(), req); !errors.Is(err, ErrUnknownSpread) {
		t.Fatalf("err = %v, want ErrUnknownSpread", err)
	}
}

func TestComposeWrongCountIsFallbackNotError(t *testing.T) {
	svc := testService()
	req := threeCardRequest()
	req.Cards = req.Cards[:2]

	r, err := svc.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if r.Status != narrative.StatusFallback {
		t.Fatalf("status = %s, want fallback", r.Status)
	}
	if r.ExpectedCards != 3 || r.ReceivedCards != 2 {
		t.Errorf("counts = (%d, %d), want (3, 2)", r.ExpectedCards, r.ReceivedCards)
	}
	if !strings.Contains(r.ReportMarkdown, "Incomplete Reading") {
		t.Errorf("fallback report missing the incomplete section")
	}
}

func TestComposeSeedDeterminism(t *testing.T) {
	svc := testService()
	a, err := svc.Compose(context.Background(), threeCardRequest())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	b, err := svc.Compose(context.Background(), threeCardRequest())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if a.Narrative != b.Narrative {
		t.Fatalf("same seed produced different narratives")
	}
	if a.ID == b.ID {
		t.Errorf("distinct readings share an ID")
	}
}

func TestComposeCollectsContextWarning(t *testing.T) {
	svc := testService()
	req := threeCardRequest()
	req.Context = "finances"

	r, err := svc.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if r.Context != "general" {
		t.Errorf("context = %q, want general", r.Context)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("warnings = %v, want exactly one", r.Warnings)
	}
}

func TestReportContainsNarrativeAndSummary(t *testing.T) {
	svc := testService()
	r, err := svc.Compose(context.Background(), threeCardRequest())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	for _, want := range []string{"# Tarot Reading", "## The Reading", "## How This Reading Was Built", Disclaimer, r.Narrative} {
		if !strings.Contains(r.ReportMarkdown, want) {
			t.Errorf("report missing %q", truncate(want))
		}
	}
}

func TestSpreadsListsRegisteredBuilders(t *testing.T) {
	got := testService().Spreads()
	if len(got) != 6 {
		t.Fatalf("Spreads() returned %d keys: %v", len(got), got)
	}
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
