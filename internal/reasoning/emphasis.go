package reasoning

import "github.com/mirelabs/arcanum/internal/cards"

type EmphasisLevel string

const (
	EmphasisNormal   EmphasisLevel = "normal"
	EmphasisModerate EmphasisLevel = "moderate"
	EmphasisHigh     EmphasisLevel = "high"
)

var emphasisRank = map[EmphasisLevel]int{
	EmphasisNormal:   0,
	EmphasisModerate: 1,
	EmphasisHigh:     2,
}

type EmphasisEntry struct {
	Index    int           `json:"index"`
	Card     string        `json:"card"`
	Position string        `json:"position"`
	Emphasis EmphasisLevel `json:"emphasis"`
	Reasons  []string      `json:"reasons"`
}

// raise escalates monotonically: emphasis never downgrades once earned.
func (e *EmphasisEntry) raise(to EmphasisLevel, reason string) {
	if emphasisRank[to] > emphasisRank[e.Emphasis] {
		e.Emphasis = to
	}
	e.Reasons = append(e.Reasons, reason)
}

// BuildEmphasisMap assigns each card an emphasis level from the other
// analyzer outputs, one entry per card in spread order.
func BuildEmphasisMap(list []cards.Card, pivot PivotCard, tensions []Tension, arc EmotionalArc) []EmphasisEntry {
	entries := make([]EmphasisEntry, len(list))
	for i, c := range list {
		entries[i] = EmphasisEntry{
			Index:    i,
			Card:     c.Name,
			Position: c.Position,
			Emphasis: EmphasisNormal,
		}
	}

	keyMembers := map[int]struct{}{}
	for _, t := range tensions {
		if t.IsKeyTension {
			keyMembers[t.Positions[0]] = struct{}{}
			keyMembers[t.Positions[1]] = struct{}{}
		}
	}

	for i := range entries {
		if i == pivot.Index {
			entries[i].raise(EmphasisHigh, "pivot-card")
		}
		if _, ok := keyMembers[i]; ok {
			entries[i].raise(EmphasisHigh, "key-tension")
		}
		if arc.Peak != nil && arc.Peak.Index == i {
			entries[i].raise(EmphasisModerate, "emotional-peak")
		}
		if arc.Valley != nil && arc.Valley.Index == i {
			entries[i].raise(EmphasisModerate, "emotional-valley")
		}
		if list[i].IsMajor() {
			entries[i].raise(EmphasisModerate, "major-arcana")
		}
	}
	return entries
}
