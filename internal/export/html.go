// Package export renders reading reports to shareable formats: standalone
// HTML via goldmark, and PDF by printing that HTML through headless Chrome.
package export

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/mirelabs/arcanum/internal/reading"
)

const styleCSS = `
body { font-family: Georgia, 'Times New Roman', serif; color: #2d2a26; background: #faf8f4; margin: 0; padding: 2rem 1rem; }
.sheet { max-width: 720px; margin: 0 auto; background: #fffdf9; border: 1px solid #e0d8c8; border-radius: 6px; padding: 2.5rem 3rem; }
.sheet-meta { color: #6b6256; font-size: 0.85rem; margin-bottom: 1.5rem; }
.sheet-meta strong { color: #2d2a26; }
h1 { font-size: 1.6rem; border-bottom: 2px solid #c9b896; padding-bottom: 0.4rem; }
h2 { font-size: 1.2rem; margin-top: 2rem; color: #4a3f2f; }
h3 { font-size: 1.0rem; margin-top: 1.4rem; color: #5b4e3a; letter-spacing: 0.02em; }
blockquote { border-left: 3px solid #c9b896; margin-left: 0; padding-left: 1rem; color: #5b5346; }
code { background: #f0ebe0; padding: 0.1rem 0.3rem; border-radius: 3px; font-size: 0.85em; }
@media print { body { background: #fff; padding: 0; } .sheet { border: 0; padding: 1rem 0; } }
`

// RenderHTML converts a reading's markdown report into a complete styled
// HTML document.
func RenderHTML(r *reading.Reading) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(r.ReportMarkdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	var meta strings.Builder
	meta.WriteString("<div><strong>Spread:</strong> " + html.EscapeString(r.SpreadKey) + "</div>")
	meta.WriteString("<div><strong>Context:</strong> " + html.EscapeString(r.Context) + "</div>")
	if r.Question != "" {
		meta.WriteString("<div><strong>Question:</strong> " + html.EscapeString(r.Question) + "</div>")
	}
	meta.WriteString("<div><strong>Date:</strong> " + html.EscapeString(r.CreatedAt.Format(time.RFC1123)) + "</div>")

	return "<!doctype html><html><head><meta charset='utf-8'><title>Tarot Reading " +
		html.EscapeString(r.ID) + "</title><style>" + styleCSS + "</style></head><body>" +
		"<div class='sheet'><div class='sheet-meta'>" + meta.String() + "</div>" +
		content.String() + "</div></body></html>", nil
}
