package colorhunt

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-colorhunt/internal/core"
)

// ColorName is one of the fixed set of named colors. It is both the
// guessable label and the ink a round is rendered in.
type ColorName int

const (
	Red ColorName = iota
	Green
	Blue
	Yellow
	Orange
	Purple
	Cyan
	Pink
	Brown
	Gray
	Teal
	Magenta

	colorCount int = iota
)

var colorLabels = [colorCount]string{
	"Red", "Green", "Blue", "Yellow", "Orange", "Purple",
	"Cyan", "Pink", "Brown", "Gray", "Teal", "Magenta",
}

var colorValues = [colorCount]core.RGB{
	Red:     {R: 255, G: 0, B: 0},
	Green:   {R: 0, G: 255, B: 0},
	Blue:    {R: 0, G: 0, B: 255},
	Yellow:  {R: 255, G: 255, B: 0},
	Orange:  {R: 255, G: 200, B: 0},
	Purple:  {R: 128, G: 0, B: 128},
	Cyan:    {R: 0, G: 255, B: 255},
	Pink:    {R: 255, G: 175, B: 175},
	Brown:   {R: 139, G: 69, B: 19},
	Gray:    {R: 128, G: 128, B: 128},
	Teal:    {R: 0, G: 128, B: 128},
	Magenta: {R: 255, G: 0, B: 255},
}

// AllColors returns every ColorName in palette order.
func AllColors() []ColorName {
	out := make([]ColorName, colorCount)
	for i := range out {
		out[i] = ColorName(i)
	}
	return out
}

// ColorCount is the size of the palette.
func ColorCount() int {
	return colorCount
}

// Valid reports whether c belongs to the palette.
func (c ColorName) Valid() bool {
	return c >= 0 && int(c) < colorCount
}

// String returns the display label.
func (c ColorName) String() string {
	if !c.Valid() {
		return fmt.Sprintf("ColorName(%d)", int(c))
	}
	return colorLabels[c]
}

// RGB returns the lookup value used to render c.
func (c ColorName) RGB() core.RGB {
	if !c.Valid() {
		return core.RGB{}
	}
	return colorValues[c]
}

// ParseColorName resolves a label, ignoring case and surrounding space.
func ParseColorName(s string) (ColorName, error) {
	s = strings.TrimSpace(s)
	for i, label := range colorLabels {
		if strings.EqualFold(label, s) {
			return ColorName(i), nil
		}
	}
	return 0, fmt.Errorf("colorhunt: unknown color %q", s)
}
