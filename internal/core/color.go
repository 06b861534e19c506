package core

import "fmt"

// Color is a foreground color for a screen cell.
// It holds either an ANSI 256-color index ("9") or a true-color hex value ("#ff0000").
// The empty string is the terminal default.
type Color string

// Predefined colors for HUD elements.
const (
	ColorDefault Color = ""
	ColorRed     Color = "9"
	ColorGreen   Color = "10"
	ColorYellow  Color = "11"
	ColorBlue    Color = "12"
	ColorWhite   Color = "15"
	ColorGray    Color = "245"
	ColorDim     Color = "240"
)

// RGB is a 24-bit color value.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color converts the RGB value to a true-color cell color.
func (c RGB) Color() Color {
	return Color(c.Hex())
}
