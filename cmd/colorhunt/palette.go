package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-colorhunt/internal/games/colorhunt"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the colors and their shortcut keys",
	Long:  `Prints every color in the game with its shortcut key and RGB value.`,
	Args:  cobra.NoArgs,
	Run:   runPalette,
}

var (
	paletteHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	paletteDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func runPalette(cmd *cobra.Command, args []string) {
	fmt.Println(paletteHeaderStyle.Render("Color Hunt palette"))
	fmt.Println()
	fmt.Printf("  %-3s  %-2s  %-8s  %s\n", "Key", "", "Name", "RGB")
	fmt.Printf("  %-3s  %-2s  %-8s  %s\n", "---", "", "----", "---")

	for _, c := range colorhunt.AllColors() {
		rgb := c.RGB()
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(rgb.Hex())).Render("██")
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(rgb.Hex())).Render(fmt.Sprintf("%-8s", c))
		fmt.Printf("  %-3s  %s  %s  %s\n", colorhunt.ShortcutKey(c), swatch, name,
			paletteDimStyle.Render(fmt.Sprintf("%3d,%3d,%3d  %s", rgb.R, rgb.G, rgb.B, rgb.Hex())))
	}
}
