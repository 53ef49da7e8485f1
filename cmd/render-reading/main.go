// render-reading exports a journaled reading to HTML or PDF.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/mirelabs/arcanum/internal/export"
	"github.com/mirelabs/arcanum/internal/journal"
)

func main() {
	journalPath := flag.String("journal", "data/readings.db", "Journal database path")
	id := flag.String("id", "", "Reading ID to render")
	format := flag.String("format", "pdf", "Output format: pdf, html, or md")
	out := flag.String("out", "", "Output file (defaults to <id>.<format>)")
	chrome := flag.String("chrome", "", "Chrome executable path (pdf only; auto-detected when empty)")
	flag.Parse()

	if *id == "" {
		log.Fatal("missing required flag -id")
	}

	store, err := journal.Open(*journalPath)
	if err != nil {
		log.Fatalf("open journal: %v", err)
	}
	defer store.Close()

	r, err := store.Get(*id)
	if err != nil {
		log.Fatalf("load reading: %v", err)
	}

	dest := *out
	if dest == "" {
		dest = *id + "." + *format
	}

	switch strings.ToLower(*format) {
	case "md", "markdown":
		if err := os.WriteFile(dest, []byte(r.ReportMarkdown), 0o644); err != nil {
			log.Fatalf("write %s: %v", dest, err)
		}
	case "html":
		doc, err := export.RenderHTML(r)
		if err != nil {
			log.Fatalf("render html: %v", err)
		}
		if err := os.WriteFile(dest, []byte(doc), 0o644); err != nil {
			log.Fatalf("write %s: %v", dest, err)
		}
	case "pdf":
		blob, err := export.NewPDFRenderer(*chrome).Render(context.Background(), r)
		if err != nil {
			log.Fatalf("render pdf: %v", err)
		}
		if err := os.WriteFile(dest, blob, 0o644); err != nil {
			log.Fatalf("write %s: %v", dest, err)
		}
	default:
		log.Fatalf("unknown format %q (want pdf, html, or md)", *format)
	}

	log.Printf("wrote %s", dest)
}
