package colorhunt

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-colorhunt/internal/core"
)

// Effect durations in animation frames.
const (
	defaultFadeFrames = 8 // ~270ms at 30fps
	defaultPopFrames  = 5 // ~170ms at 30fps
)

// Fade interpolates the word's ink between two rounds in Lab space.
// It is purely cosmetic and never reads or writes the Session.
type Fade struct {
	from   colorful.Color
	to     colorful.Color
	frame  int
	frames int
}

// NewFade creates a finished fade that lasts frames once started.
func NewFade(frames int) Fade {
	return Fade{frames: frames, frame: frames}
}

// Start begins a transition from one ink to another.
func (f *Fade) Start(from, to core.RGB) {
	f.from = toColorful(from)
	f.to = toColorful(to)
	f.frame = 0
}

// Snap jumps straight to c without animating.
func (f *Fade) Snap(c core.RGB) {
	f.from = toColorful(c)
	f.to = f.from
	f.frame = f.frames
}

// Advance moves the fade forward one frame.
func (f *Fade) Advance() {
	if f.frame < f.frames {
		f.frame++
	}
}

// Done reports whether the transition has finished.
func (f Fade) Done() bool {
	return f.frame >= f.frames
}

// Progress returns the eased position of the fade in [0, 1].
func (f Fade) Progress() float64 {
	if f.frames <= 0 {
		return 1
	}
	t := core.ClampF(float64(f.frame)/float64(f.frames), 0, 1)
	return easeOutQuad(t)
}

// Color returns the ink to draw this frame.
func (f Fade) Color() core.Color {
	switch {
	case f.Done():
		return core.Color(f.to.Clamped().Hex())
	case f.frame == 0:
		return core.Color(f.from.Clamped().Hex())
	}
	return core.Color(f.from.BlendLab(f.to, f.Progress()).Clamped().Hex())
}

// Pop highlights a pressed button for a few frames.
type Pop struct {
	choice    ColorName
	remaining int
	frames    int
}

// NewPop creates an idle pop effect lasting frames once started.
func NewPop(frames int) Pop {
	return Pop{frames: frames}
}

// Start highlights choice.
func (p *Pop) Start(choice ColorName) {
	p.choice = choice
	p.remaining = p.frames
}

// Advance counts one frame down.
func (p *Pop) Advance() {
	if p.remaining > 0 {
		p.remaining--
	}
}

// Active reports whether c is currently highlighted.
func (p Pop) Active(c ColorName) bool {
	return p.remaining > 0 && p.choice == c
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// timerColor picks the countdown color from the fraction of time left.
func timerColor(remaining, total int) core.Color {
	if total <= 0 {
		return core.ColorGreen
	}
	frac := float64(remaining) / float64(total)
	switch {
	case frac <= 0.10:
		return core.ColorRed
	case frac <= 0.25:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}
