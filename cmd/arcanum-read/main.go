// arcanum-read composes a reading from a drawn spread on disk and prints
// it, without running the server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/mirelabs/arcanum/internal/journal"
	"github.com/mirelabs/arcanum/internal/reading"
)

func main() {
	input := flag.String("input", "-", "Path to a JSON compose request, or - for stdin")
	markdown := flag.Bool("markdown", false, "Print the full markdown report instead of the bare narrative")
	seed := flag.Uint64("seed", 0, "Phrase-selection seed (0 picks one from the clock)")
	journalPath := flag.String("journal", "", "Optionally also save the reading to this journal database")
	verbose := flag.Bool("v", false, "Log composition warnings to stderr")
	flag.Parse()

	blob, err := readInput(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	var req reading.Request
	if err := json.Unmarshal(blob, &req); err != nil {
		log.Fatalf("parse request: %v", err)
	}
	if *seed != 0 {
		req.Seed = *seed
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	r, err := reading.NewService(logger).Compose(context.Background(), req)
	if err != nil {
		log.Fatalf("compose: %v", err)
	}

	if *journalPath != "" {
		store, err := journal.Open(*journalPath)
		if err != nil {
			log.Fatalf("open journal: %v", err)
		}
		defer store.Close()
		if err := store.Save(r); err != nil {
			log.Fatalf("save reading: %v", err)
		}
		fmt.Fprintf(os.Stderr, "saved reading %s\n", r.ID)
	}

	if *markdown {
		fmt.Println(r.ReportMarkdown)
		return
	}
	fmt.Println(r.Narrative)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
