// Package reasoning holds the holistic analysis pass that runs before any
// text is composed: question intent, narrative arc, emotional trajectory,
// tensions between positions, the pivot card, and the per-card emphasis map.
// Every analyzer is a pure function; an analyzer that finds nothing returns
// an explicit default, never a nil that composition has to guard against.
package reasoning

import (
	"regexp"
	"sort"
	"strings"
)

type QuestionIntent struct {
	Type      string   `json:"type"`
	FocusArea string   `json:"focusArea"`
	Urgency   string   `json:"urgency"`
	Keywords  []string `json:"keywords"`
}

type patternGroup struct {
	key      string
	priority int
	patterns []*regexp.Regexp
}

func group(key string, priority int, exprs ...string) patternGroup {
	g := patternGroup{key: key, priority: priority}
	for _, e := range exprs {
		g.patterns = append(g.patterns, regexp.MustCompile(`(?i)`+e))
	}
	return g
}

// Priority is explicit on every group and the tables are sorted once at
// init, so source declaration order is never load-bearing.
var intentGroups = []patternGroup{
	group("decision", 10, `\bshould i\b`, `\b(choose|choice|decide|decision|deciding)\b`, `\bwhether\b`, `\beither\b.*\bor\b`),
	group("timing", 20, `\bwhen\b`, `\bhow long\b`, `\bhow soon\b`, `\btiming\b`, `\bthis (week|month|year)\b`),
	group("blockage", 30, `\b(stuck|blocked|blockage|obstacle|obstacles)\b`, `\bholding me back\b`, `\bcan'?t (seem|move|get past)\b`, `\bwhy (can'?t|won'?t)\b`),
	group("confirmation", 40, `\bam i right\b`, `\bis (it|this|he|she) (true|real|really)\b`, `\b(confirm|confirmation|reassure|reassurance|validate)\b`),
	group("outcome", 50, `\bwill\b`, `\b(outcome|result|end up|turn out|happen)\b`, `\bgoing to\b`),
	group("understanding", 60, `\bwhy\b`, `\b(understand|understanding|meaning|mean[s]?)\b`, `\bwhat is (behind|underneath)\b`),
	group("exploration", 70, `\b(tell|show) me\b`, `\bwhat about\b`, `\b(insight|explore|exploring|guidance)\b`),
}

var focusGroups = []patternGroup{
	group("love", 10, `\b(love|relationship|partner|romance|romantic|marriage|dating|crush|ex)\b`),
	group("career", 20, `\b(career|job|work|business|promotion|boss|colleague|interview)\b`),
	group("money", 30, `\b(money|finance|financial|debt|wealth|income|savings)\b`),
	group("health", 40, `\b(health|healing|illness|body|energy levels|wellness)\b`),
	group("family", 50, `\b(family|mother|father|parent|parents|child|children|sibling|brother|sister)\b`),
	group("self", 60, `\b(myself|self|confidence|purpose|identity|growth|habits)\b`),
	group("spiritual", 70, `\b(spirit|spiritual|soul|universe|faith|awakening|path)\b`),
}

var urgencyGroups = []patternGroup{
	group("high", 10, `\b(urgent|urgently|immediately|right now|asap|today|desperate|crisis)\b`),
	group("low", 20, `\b(someday|eventually|curious|no rush|long run|one day|in general)\b`),
}

func init() {
	for _, table := range [][]patternGroup{intentGroups, focusGroups, urgencyGroups} {
		sort.SliceStable(table, func(i, j int) bool { return table[i].priority < table[j].priority })
	}
}

// firstMatch returns the key of the first group (in priority order) with any
// matching pattern. First-match-wins is the contract: the tables encode
// priority, not preference strength.
func firstMatch(table []patternGroup, question string) (string, bool) {
	for _, g := range table {
		for _, p := range g.patterns {
			if p.MatchString(question) {
				return g.key, true
			}
		}
	}
	return "", false
}

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"what": {}, "when": {}, "will": {}, "should": {}, "would": {}, "could": {},
	"about": {}, "have": {}, "has": {}, "had": {}, "was": {}, "were": {},
	"are": {}, "you": {}, "your": {}, "mine": {}, "them": {}, "they": {},
	"there": {}, "here": {}, "from": {}, "into": {}, "how": {}, "why": {},
	"who": {}, "does": {}, "doing": {}, "can": {}, "cant": {}, "not": {},
	"get": {}, "going": {}, "been": {}, "being": {}, "over": {}, "under": {},
}

var wordSplit = regexp.MustCompile(`[^a-zA-Z]+`)

func extractKeywords(question string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, raw := range wordSplit.Split(strings.ToLower(question), -1) {
		if len(raw) < 3 {
			continue
		}
		if _, stop := stopWords[raw]; stop {
			continue
		}
		if _, dup := seen[raw]; dup {
			continue
		}
		seen[raw] = struct{}{}
		out = append(out, raw)
		if len(out) == 5 {
			break
		}
	}
	return out
}

// ClassifyQuestion maps a free-text question to a typed intent. Empty or
// whitespace-only input returns the fixed open default.
func ClassifyQuestion(question string) QuestionIntent {
	q := strings.TrimSpace(question)
	if q == "" {
		return QuestionIntent{Type: "open", FocusArea: "general", Urgency: "medium"}
	}

	intent := QuestionIntent{Type: "open", FocusArea: "general", Urgency: "medium"}
	if key, ok := firstMatch(intentGroups, q); ok {
		intent.Type = key
	}
	if key, ok := firstMatch(focusGroups, q); ok {
		intent.FocusArea = key
	}
	if key, ok := firstMatch(urgencyGroups, q); ok {
		intent.Urgency = key
	}
	intent.Keywords = extractKeywords(q)
	return intent
}
