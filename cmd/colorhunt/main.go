// colorhunt is a terminal reaction game: pick the button that names the
// word on screen, not the color it is printed in.
//
// Usage:
//
//	colorhunt                   - Play the default game
//	colorhunt play [mode]       - Play a mode (colorhunt, colorhunt_loose)
//	colorhunt list              - List available modes
//	colorhunt palette           - Show colors and their shortcut keys
//	colorhunt config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Game config YAML
//	--env-file <path>  - Environment file with COLORHUNT_* overrides (default: .env)
//	--seed <value>     - Set RNG seed for reproducible rounds
//	--log-file <path>  - Write logs to a file (the terminal belongs to the game)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-colorhunt/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-colorhunt/internal/games/colorhunt"
)

var (
	// Global flags
	flagConfig   string
	flagEnvFile  string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorhunt",
	Short: "Color Hunt - match the text, not the color",
	Long: `Color Hunt shows a color name printed in a different color.
Pick the button that matches the TEXT before the clock runs out.

  +1 for a correct pick
  -2 for a wrong pick (the score never drops below zero)
  60 seconds per game

Available commands:
  play     - Play a mode (default when no command is given)
  list     - Show all available modes
  palette  - Show colors and their shortcut keys
  config   - Print the effective configuration

Examples:
  colorhunt
  colorhunt play colorhunt_loose
  colorhunt --seed 42 --log-file /tmp/colorhunt.log`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadDotEnv(flagEnvFile)
	},
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Path to environment file with COLORHUNT_* overrides")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(configCmd)
}
