// Package templates is the static phrase library keyed by canonical position
// label. Each template carries interchangeable intro and frame variants plus
// the connector phrases used when no reasoning signal applies. The table is
// immutable after init.
package templates

import (
	"fmt"
	"strings"

	"github.com/mirelabs/arcanum/internal/cards"
)

// Template holds the phrasing for one spread position. Intro variants are
// format strings with a single %s slot for the card's display name. IntroFns
// extends the variant pool with per-card-name functions where a plain format
// string is not enough.
type Template struct {
	Intros        []string
	IntroFns      []func(card string) string
	Frames        []string
	ConnectorPrev []string
	ConnectorNext []string
	Imagery       bool
}

// Intro renders one intro variant for the card name. Function variants sit
// after the string variants in the selection pool.
func (t Template) Intro(rng RNG, card string) string {
	total := len(t.Intros) + len(t.IntroFns)
	if total == 0 {
		return ""
	}
	i := 0
	if rng != nil {
		i = rng.Intn(total)
	}
	if i < len(t.Intros) {
		return fmt.Sprintf(t.Intros[i], card)
	}
	return t.IntroFns[i-len(t.Intros)](card)
}

func (t Template) Frame(rng RNG) string { return PickOne(rng, t.Frames) }

var library = map[string]Template{
	"Guidance — the single card (Card 1)": {
		Intros: []string{
			"One card answers here: %s.",
			"%s steps forward alone to meet your question.",
			"The whole reading rests on a single card, and it is %s.",
		},
		Frames: []string{
			"Let this one image do its work slowly; a single card read deeply outweighs ten read quickly.",
			"Sit with this card through the day and notice where its language resurfaces.",
		},
		Imagery: true,
	},
	"Past — what shaped this (Card 1)": {
		Intros: []string{
			"In the position of the past sits %s.",
			"%s opens the story, showing what shaped the present question.",
		},
		Frames: []string{
			"Whatever else the spread says, it says it downstream of this.",
			"This is the soil the present grew from; it explains more than it binds.",
		},
		ConnectorNext: []string{
			"Out of that ground, the present takes its shape.",
			"From there the story steps into now.",
		},
		Imagery: true,
	},
	"Present — where you stand (Card 2)": {
		Intros: []string{
			"The present is held by %s.",
			"Where you stand now, %s turns its face to you.",
		},
		Frames: []string{
			"This is the card to test against your own felt sense of the moment.",
			"Read this card as a mirror first and a forecast never.",
		},
		ConnectorPrev: []string{"Against that backdrop,", "Carrying that history,"},
		ConnectorNext: []string{"And from this moment, a direction emerges.", "What follows leans on how this is met."},
		Imagery:       true,
	},
	"Future — where this leads (Card 3)": {
		Intros: []string{
			"The current trajectory is named by %s.",
			"Ahead of you, %s waits on the path as it presently runs.",
		},
		Frames: []string{
			"A future card describes momentum, not verdict; it moves when you do.",
			"Treat this as the weather forecast, not the appointment.",
		},
		ConnectorPrev: []string{"If nothing redirects the current,", "Following the line the first two cards draw,"},
		Imagery:       true,
	},
	"Present — core situation (Card 1)": {
		Intros: []string{
			"At the center of the spread lies %s.",
			"%s anchors the reading as the core of the situation.",
			"The heart of the matter shows itself as %s.",
		},
		Frames: []string{
			"Every other card in this spread speaks in relation to this one.",
			"Hold this card as the keynote; the rest are harmonies and counterpoints.",
		},
		ConnectorNext: []string{"Crossing it comes the shape of the resistance.", "Against this center, a complication leans in."},
		Imagery:       true,
	},
	"Challenge — what crosses you (Card 2)": {
		Intros: []string{
			"Crossing the center is %s.",
			"The crossing card, %s, names what resists or complicates.",
		},
		Frames: []string{
			"A crossing card is not an enemy; it is the grain of the wood you are carving.",
			"Name this pressure precisely and it loses half its weight.",
		},
		ConnectorPrev: []string{"Laid across that center,", "Meeting that core energy,"},
		ConnectorNext: []string{"Beneath both, something older stirs.", "Under this crossing, the roots come into view."},
		Imagery:       true,
	},
	"Hidden influence — beneath the surface (Card 3)": {
		Intros: []string{
			"Beneath the surface works %s.",
			"%s moves under the visible situation, felt before it is seen.",
		},
		Frames: []string{
			"What operates below awareness sets the terms the conscious mind then argues over.",
		},
		ConnectorPrev: []string{"Under the visible pattern,", "Below what you already know,"},
		ConnectorNext: []string{"Knowing this, the advice card has context.", "With the hidden current named, guidance can land."},
	},
	"Advice — what to do (Card 4)": {
		Intros: []string{
			"The spread's counsel arrives as %s.",
			"Asked what to do, the cards answer with %s.",
		},
		Frames: []string{
			"Advice in a spread is always an invitation, never an instruction.",
			"Take from this card one concrete act small enough to do this week.",
		},
		ConnectorPrev: []string{"Given all of that,", "In response to everything above,"},
		ConnectorNext: []string{"Follow it or not, the trajectory card shows where the current runs.", "From that counsel, the probable arc extends."},
		Imagery:       true,
	},
	"Likely outcome — where this is heading (Card 5)": {
		Intros: []string{
			"On the present course, the reading closes with %s.",
			"%s stands at the end of the line the other cards draw.",
		},
		Frames: []string{
			"Outcomes in tarot are trajectories: change the inputs and this card changes with them.",
		},
		ConnectorPrev: []string{"All currents considered,", "If the pattern holds,"},
		Imagery:       true,
	},
	"You — your energy in this bond (Card 1)": {
		Intros: []string{
			"Your side of the bond appears as %s.",
			"%s stands in your position, carrying what you bring to this connection.",
		},
		Frames: []string{
			"Read this card with the most honesty you can afford; it is about you, not about them.",
		},
		ConnectorNext: []string{"Across from it, the other side of the bond takes form.", "Facing this, the other's energy answers."},
		Imagery:       true,
	},
	"The other — their energy (Card 2)": {
		Intros: []string{
			"The other person's energy shows as %s.",
			"Across the table, %s speaks for the other side.",
		},
		Frames: []string{
			"This card describes their energy in the bond, not their whole self.",
		},
		ConnectorPrev: []string{"Opposite your card,", "In answer to what you bring,"},
		ConnectorNext: []string{"Between these two energies, a third thing lives.", "And between you, the connection itself has its own card."},
		Imagery:       true,
	},
	"The connection — what lives between you (Card 3)": {
		Intros: []string{
			"What lives between you takes the shape of %s.",
			"The bond itself — a third presence — appears as %s.",
		},
		Frames: []string{
			"A relationship is a third thing with its own weather; this card is its sky.",
		},
		ConnectorPrev: []string{"Where the two energies meet,", "Out of both sides of the table,"},
		ConnectorNext: []string{"What strains this third thing comes next.", "Every bond carries a strain; here is this one's."},
		Imagery:       true,
	},
	"The challenge — what strains the bond (Card 4)": {
		Intros: []string{
			"The strain on this bond is named by %s.",
			"%s marks where this connection is being tested.",
		},
		Frames: []string{
			"Strain named early is strain that can be worked with.",
		},
		ConnectorPrev: []string{"Pressing on that connection,", "Against the bond,"},
		ConnectorNext: []string{"Through that strain, a direction still shows itself.", "And past the strain, the movement of the bond appears."},
	},
	"The direction — where this is moving (Card 5)": {
		Intros: []string{
			"The direction of this bond reads as %s.",
			"%s points where this connection is presently moving.",
		},
		Frames: []string{
			"Directions are chosen daily; this card shows the current choice, repeated.",
		},
		ConnectorPrev: []string{"Taking all four cards together,", "With both energies and their strain in view,"},
		Imagery:       true,
	},
	"The heart of the decision (Card 1)": {
		Intros: []string{
			"At the heart of this decision sits %s.",
			"%s names what this choice is actually about.",
		},
		Frames: []string{
			"Most decisions are about something other than their stated subject; this card points at the real one.",
		},
		ConnectorNext: []string{"From that center, two paths open.", "Out of this heart, the first path branches."},
		Imagery:       true,
	},
	"The first path (Card 2)": {
		Intros: []string{
			"The first path carries the energy of %s.",
			"Down one branch, %s shows the flavor of that life.",
		},
		Frames: []string{
			"Read this as the felt texture of the path, not a score for it.",
		},
		ConnectorPrev: []string{"Branching one way,", "Down the first fork,"},
		ConnectorNext: []string{"The other branch answers differently.", "Set against it, the second path speaks."},
	},
	"The second path (Card 3)": {
		Intros: []string{
			"The second path answers with %s.",
			"Down the other branch, %s sets the tone.",
		},
		Frames: []string{
			"Neither path card crowns a winner; together they clarify the trade.",
		},
		ConnectorPrev: []string{"Down the other fork,", "In contrast,"},
		ConnectorNext: []string{"But a decision spread always holds one card you did not ask for.", "Before choosing, look at what has not been seen."},
	},
	"What you are not seeing (Card 4)": {
		Intros: []string{
			"What you are not seeing surfaces as %s.",
			"%s holds the blind spot in this decision.",
		},
		Frames: []string{
			"Blind spots are not failures of intelligence, only of angle; this card changes the angle.",
		},
		ConnectorPrev: []string{"Outside the frame you have been using,", "Behind both options,"},
		ConnectorNext: []string{"With the blind spot lit, guidance can be plain.", "Now the counsel card can speak to the whole picture."},
	},
	"Guidance — how to choose (Card 5)": {
		Intros: []string{
			"For the choosing itself, the cards offer %s.",
			"%s closes the spread with counsel on how — not what — to choose.",
		},
		Frames: []string{
			"Good guidance changes how you stand while deciding; the decision then often makes itself.",
		},
		ConnectorPrev: []string{"Holding heart, paths, and blind spot together,", "With everything on the table,"},
		Imagery:       true,
	},
	"Foundation — subconscious root (Card 3)": {
		Intros: []string{
			"At the root of the situation, below awareness, lies %s.",
			"%s works in the foundations, older than the question itself.",
		},
		Frames: []string{
			"What the root card names is usually felt as mood long before it is understood as cause.",
		},
		ConnectorPrev: []string{"Beneath the cross of the first two cards,", "Under all of it,"},
		ConnectorNext: []string{"What is passing away sits beside that root.", "Behind you, something is already leaving."},
	},
	"Recent past — what is leaving (Card 4)": {
		Intros: []string{
			"Passing out of the situation is %s.",
			"%s stands in the recent past, its influence waning but not gone.",
		},
		Frames: []string{
			"Departing influences still cast light; notice what of this you are tempted to carry forward.",
		},
		ConnectorPrev: []string{"While that root holds,", "As the deeper pattern continues,"},
		ConnectorNext: []string{"Above the situation, a conscious aim crowns the cross.", "Meanwhile, what you reach for shows at the crown."},
	},
	"Crown — conscious aim (Card 5)": {
		Intros: []string{
			"At the crown — what you consciously reach for — stands %s.",
			"%s names the best outcome you are presently able to imagine.",
		},
		Frames: []string{
			"Compare this card with the root card; the distance between them is the real work of the reading.",
		},
		ConnectorPrev: []string{"Over everything,", "Held consciously in mind,"},
		ConnectorNext: []string{"And approaching from ahead, the near future answers.", "What actually approaches may differ; the next card says."},
	},
	"Near future — what approaches (Card 6)": {
		Intros: []string{
			"Approaching within weeks rather than months is %s.",
			"%s comes toward you in the near term.",
		},
		Frames: []string{
			"Near-future cards are weather fronts: real, datable, and survivable.",
		},
		ConnectorPrev: []string{"Descending from that aim,", "Whatever is hoped for,"},
		ConnectorNext: []string{"The staff of the spread now turns to you and yours.", "From here the reading climbs the staff: self, world, soul, end."},
	},
	"Advice — how to meet it (Card 7)": {
		Intros: []string{
			"The spread's own counsel is %s.",
			"How to meet all of this: %s.",
			"As advice, the cards hand you %s.",
		},
		Frames: []string{
			"Of the ten cards, this is the one that asks something of you; the rest only describe.",
			"If you keep a single card from this reading, keep this one.",
		},
		ConnectorPrev: []string{"Given what approaches,", "In the face of that,"},
		ConnectorNext: []string{"Around you, the environment has its own opinion.", "The world around you answers next."},
		Imagery:       true,
	},
	"External influences — the world around you (Card 8)": {
		Intros: []string{
			"The world around you contributes %s.",
			"%s describes the room you are doing all this in.",
		},
		Frames: []string{
			"Environment is neither excuse nor verdict; it is terrain, and terrain can be used.",
		},
		ConnectorPrev: []string{"While you work with that advice,", "Outside your own effort,"},
		ConnectorNext: []string{"Within you, hopes and fears braid together.", "Closer in, the inner weather shows itself."},
	},
	"Hopes and fears — the inner weather (Card 9)": {
		Intros: []string{
			"Your hopes and fears share one card: %s.",
			"%s holds the braid of what you most want and most dread.",
		},
		Frames: []string{
			"In this position the same card is usually both hope and fear; ask which reading you feed.",
		},
		ConnectorPrev: []string{"Inside that environment,", "Beneath your composure,"},
		ConnectorNext: []string{"And so the spread arrives at its final card.", "All lines now converge on the outcome."},
	},
	"Outcome — the current trajectory (Card 10)": {
		Intros: []string{
			"The trajectory of all ten cards resolves into %s.",
			"Where the whole pattern points: %s.",
		},
		Frames: []string{
			"An outcome card is the spread's closing argument, not the court's verdict; you remain the judge.",
			"Return to this card in a month and read it again; trajectories answer to changed inputs.",
		},
		ConnectorPrev: []string{"Summing every current above,", "Carried by all that precedes it,"},
		Imagery:       true,
	},
}

// Lookup resolves a template by exact canonical position label.
func Lookup(positionLabel string) (Template, bool) {
	t, ok := library[positionLabel]
	return t, ok
}

// RenderFallback is the defensive path for unrecognized position labels: a
// minimal but well-formed sentence so composition never emits nothing.
func RenderFallback(positionLabel string, c cards.Card) string {
	var b strings.Builder
	label := strings.TrimSpace(positionLabel)
	if label == "" {
		label = "This position"
	}
	fmt.Fprintf(&b, "%s: %s (%s).", label, c.Name, c.Orientation)
	if c.Meaning != "" {
		fmt.Fprintf(&b, " %s.", strings.TrimSuffix(c.Meaning, "."))
	}
	return b.String()
}
