// Package interpret is the optional model-backed voice. The deterministic
// composer always produces the canonical narrative; a Composer here can
// restate it more freely. It is strictly additive and the server runs
// without it.
package interpret

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/mirelabs/arcanum/internal/reading"
)

const systemPrompt = "You are an experienced tarot reader. You will receive a structured reading that was already composed deterministically. Restate it in your own warm, grounded voice. Do not invent cards, positions, or outcomes that are not in the input, and do not make predictions about health, legal, or financial matters."

// The narrative is clipped before prompting so oversized spreads cannot
// blow the request budget.
const maxNarrativeChars = 12000

// Composer produces an alternate prose rendering of a composed reading.
type Composer interface {
	Embellish(ctx context.Context, r *reading.Reading) (string, error)
}

type Messager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type AnthropicComposer struct {
	messages Messager
	model    anthropic.Model
}

func NewAnthropicComposerFromEnv(model string) (*AnthropicComposer, error) {
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return NewAnthropicComposer(&c.Messages, model), nil
}

func NewAnthropicComposer(m Messager, model string) *AnthropicComposer {
	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_20250514)
	}
	return &AnthropicComposer{messages: m, model: anthropic.Model(model)}
}

func (a *AnthropicComposer) Embellish(ctx context.Context, r *reading.Reading) (string, error) {
	prompt := buildPrompt(r)

	var lastErr error
	for attempt := 1; attempt <= 2; attempt++ {
		resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
			Model:       a.model,
			MaxTokens:   2048,
			System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
			Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
			Temperature: anthropic.Float(0.7),
		})
		if err != nil {
			lastErr = err
			if attempt < 2 && isTransient(err) {
				time.Sleep(time.Second)
				continue
			}
			return "", fmt.Errorf("interpret transport failure: %w", err)
		}
		var sb strings.Builder
		for _, b := range resp.Content {
			if b.Type == "text" {
				sb.WriteString(b.Text)
			}
		}
		out := strings.TrimSpace(sb.String())
		if out == "" {
			return "", errors.New("interpret: empty response")
		}
		return out, nil
	}
	return "", lastErr
}

func buildPrompt(r *reading.Reading) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Spread: %s\nContext: %s\n", r.SpreadKey, r.Context)
	if r.Question != "" {
		fmt.Fprintf(&b, "Question: %s\n", r.Question)
	}
	if ch := r.Reasoning; ch != nil {
		fmt.Fprintf(&b, "Narrative arc: %s\nQuestion intent: %s\n", ch.NarrativeArc.Name, ch.QuestionIntent.Type)
		if ch.Pivot.Card != "" {
			fmt.Fprintf(&b, "Pivot card: %s\n", ch.Pivot.Card)
		}
	}
	b.WriteString("\nComposed reading:\n\n")
	b.WriteString(clip(r.Narrative, maxNarrativeChars))
	b.WriteString("\n\nRestate this reading in your own voice, keeping every card and position it names.")
	return b.String()
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n\n[reading truncated]"
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "overloaded") || strings.Contains(msg, "server error")
}
