package interpret

import (
	"context"
	"errors"
	"strings"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/mirelabs/arcanum/internal/reading"
	"github.com/mirelabs/arcanum/internal/reasoning"
)

type mockMessager struct {
	response *anthropic.Message
	err      error
	calls    int
}

func (m *mockMessager) New(_ context.Context, _ anthropic.MessageNewParams, _ ...option.RequestOption) (*anthropic.Message, error) {
	m.calls++
	return m.response, m.err
}

func newMockMessage(text string) *anthropic.Message {
	return &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{
			{Type: "text", Text: text},
		},
	}
}

func sample() *reading.Reading {
	return &reading.Reading{
		ID:        "r-1",
		SpreadKey: "three_card",
		Context:   "career",
		Question:  "What should I focus on?",
		Narrative: "### Opening\n\nThe Tower holds the present.",
		Reasoning: &reasoning.Chain{
			NarrativeArc:   reasoning.NarrativeArc{Name: "Unfolding Story"},
			QuestionIntent: reasoning.QuestionIntent{Type: "understanding"},
		},
	}
}

func TestEmbellish(t *testing.T) {
	mock := &mockMessager{response: newMockMessage("A warm restatement.")}
	c := NewAnthropicComposer(mock, "")

	got, err := c.Embellish(context.Background(), sample())
	if err != nil {
		t.Fatalf("Embellish: %v", err)
	}
	if got != "A warm restatement." {
		t.Errorf("got %q", got)
	}
	if mock.calls != 1 {
		t.Fatalf("expected one API call, got %d", mock.calls)
	}
}

func TestBuildPromptCarriesTheReading(t *testing.T) {
	prompt := buildPrompt(sample())
	for _, want := range []string{"three_card", "The Tower holds the present", "Unfolding Story", "What should I focus on?"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestEmbellishEmptyResponse(t *testing.T) {
	c := NewAnthropicComposer(&mockMessager{response: newMockMessage("   ")}, "")
	if _, err := c.Embellish(context.Background(), sample()); err == nil {
		t.Fatalf("expected error for empty response")
	}
}

func TestEmbellishTransportError(t *testing.T) {
	c := NewAnthropicComposer(&mockMessager{err: errors.New("status code: 400 bad request")}, "")
	if _, err := c.Embellish(context.Background(), sample()); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestClipTruncatesLongNarratives(t *testing.T) {
	long := strings.Repeat("x", maxNarrativeChars+100)
	got := clip(long, maxNarrativeChars)
	if len(got) >= len(long) {
		t.Fatalf("clip did not shorten input")
	}
	if !strings.HasSuffix(got, "[reading truncated]") {
		t.Fatalf("clip output missing truncation marker")
	}
}

func TestNewFromEnvRequiresKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewAnthropicComposerFromEnv(""); err == nil {
		t.Fatalf("expected error without API key")
	}
}
