package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-colorhunt/internal/config"
	"github.com/vovakirdan/tui-colorhunt/internal/core"
	"github.com/vovakirdan/tui-colorhunt/internal/games/colorhunt"
	"github.com/vovakirdan/tui-colorhunt/internal/platform/tui"
	"github.com/vovakirdan/tui-colorhunt/internal/registry"
)

var (
	flagDuration int
	flagFPS      int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Color Hunt",
	Long: `Start playing. The mode defaults to "colorhunt".

Modes:
  colorhunt        - The word is never printed in its own color
  colorhunt_loose  - The print color is picked independently and may match

Controls:
  Enter        - Start
  1-9 0 - =    - Pick Red, Green, Blue, Yellow, Orange, Purple,
                 Cyan, Pink, Brown, Gray, Teal, Magenta
  Mouse        - Click a button to pick it
  Y / N        - Play again / exit (after game over)
  Q/Ctrl+C     - Quit

Examples:
  colorhunt play
  colorhunt play colorhunt_loose
  colorhunt play --duration 30
  colorhunt play --config ./my-colorhunt.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagDuration, "duration", 0, "Countdown in seconds (0 = from config)")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Animation frame rate (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "colorhunt"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'colorhunt list' to see available modes.")
		os.Exit(1)
	}

	gameCfg, err := config.LoadColorHunt(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDuration > 0 {
		gameCfg.Session.DurationSeconds = flagDuration
	}
	if flagFPS > 0 {
		gameCfg.Effects.FrameRate = flagFPS
	}
	if err := gameCfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	colorhunt.SetConfig(gameCfg)

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size; the first WindowSizeMsg corrects it if needed
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.FrameRate = gameCfg.Effects.FrameRate
	cfg.Seed = flagSeed

	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "mode", gameID, "duration", gameCfg.Session.DurationSeconds, "clamp", gameCfg.Scoring.Clamp)

	runErr := tui.Run(game, cfg, logger)
	if runErr != nil {
		logger.Error("game loop failed", "error", runErr)
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
