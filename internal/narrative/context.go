package narrative

import "strings"

// Reading contexts this composer understands. Anything else normalizes to
// general with a single warning; narrative generation is never interrupted
// by an unknown context string.
var knownContexts = map[string]struct{}{
	"general":   {},
	"love":      {},
	"career":    {},
	"self":      {},
	"spiritual": {},
	"wellbeing": {},
}

func NormalizeContext(raw string, warn WarnFn) string {
	c := strings.ToLower(strings.TrimSpace(raw))
	if c == "" {
		return "general"
	}
	if _, ok := knownContexts[c]; ok {
		return c
	}
	if warn != nil {
		warn("unrecognized reading context %q, using general", raw)
	}
	return "general"
}
