package colorhunt

import "math/rand"

// MismatchPolicy decides how a round's ink relates to its text.
type MismatchPolicy int

const (
	// MismatchStrict resamples the ink until it differs from the text.
	MismatchStrict MismatchPolicy = iota
	// MismatchLoose samples the ink independently; it may equal the text.
	MismatchLoose
)

// String returns the config name of the policy.
func (p MismatchPolicy) String() string {
	if p == MismatchLoose {
		return "loose"
	}
	return "strict"
}

// Round is one word the player has to resolve.
type Round struct {
	Text ColorName // The label shown, and the correct answer
	Ink  ColorName // The color the label is rendered in
}

// Matches reports whether the ink agrees with the text.
func (r Round) Matches() bool {
	return r.Text == r.Ink
}

// RoundGenerator produces rounds from an injected random source.
// It holds no state besides the source.
type RoundGenerator struct {
	rng    *rand.Rand
	policy MismatchPolicy
}

// NewRoundGenerator creates a generator drawing from rng.
func NewRoundGenerator(rng *rand.Rand, policy MismatchPolicy) *RoundGenerator {
	return &RoundGenerator{rng: rng, policy: policy}
}

// Policy returns the generator's mismatch policy.
func (g *RoundGenerator) Policy() MismatchPolicy {
	return g.policy
}

// Next returns a fresh round. Text is uniform over the palette.
func (g *RoundGenerator) Next() Round {
	text := ColorName(g.rng.Intn(colorCount))
	ink := ColorName(g.rng.Intn(colorCount))

	if g.policy == MismatchStrict {
		for ink == text {
			ink = ColorName(g.rng.Intn(colorCount))
		}
	}

	return Round{Text: text, Ink: ink}
}
