package export

import (
	"strings"
	"testing"
	"time"

	"github.com/mirelabs/arcanum/internal/narrative"
	"github.com/mirelabs/arcanum/internal/reading"
)

func TestRenderHTML(t *testing.T) {
	r := &reading.Reading{
		ID:        "r-9",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		SpreadKey: "three_card",
		Context:   "love",
		Question:  "What <now>?",
		Status:    narrative.StatusOK,
		ReportMarkdown: "# Tarot Reading\n\n## The Reading\n\n" +
			"The Sun turns its face to you.\n",
	}

	html, err := RenderHTML(r)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	for _, want := range []string{"<!doctype html>", "<h1", "The Sun turns its face to you", "three_card"} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
	if strings.Contains(html, "<now>") {
		t.Errorf("question was not HTML-escaped")
	}
	if !strings.Contains(html, "What &lt;now&gt;?") {
		t.Errorf("escaped question not found")
	}
}
