package colorhunt

import (
	"math/rand"

	"github.com/vovakirdan/tui-colorhunt/internal/config"
	"github.com/vovakirdan/tui-colorhunt/internal/core"
	"github.com/vovakirdan/tui-colorhunt/internal/registry"
)

// Mode selects how rounds are dealt.
type Mode string

const (
	ModeStrict Mode = "strict"
	ModeLoose  Mode = "loose"
)

// Phase is the screen the adapter is showing.
type Phase int

const (
	PhaseInstructions Phase = iota
	PhasePlaying
	PhaseGameOver
)

// Game adapts a Session to the platform's registry.Game interface.
// It owns the screens around the session and the cosmetic effects.
type Game struct {
	mode    Mode
	cfg     config.ColorHuntConfig
	rng     *rand.Rand
	session *Session
	phase   Phase

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// Cosmetic state, never read by the session
	fade Fade
	pop  Pop
	last *GuessResult
}

// Package-level config, set by the CLI before the game is created
var (
	selectedConfig *config.ColorHuntConfig
)

// SetConfig overrides the configuration used by newly reset games.
func SetConfig(cfg config.ColorHuntConfig) {
	selectedConfig = &cfg
}

// New creates a Color Hunt game that never renders a word in its own color.
func New() *Game {
	return &Game{mode: ModeStrict}
}

// NewLoose creates a Color Hunt game whose ink may match the word.
func NewLoose() *Game {
	return &Game{mode: ModeLoose}
}

func init() {
	registry.Register("colorhunt", func() registry.Game {
		return New()
	})
	registry.Register("colorhunt_loose", func() registry.Game {
		return NewLoose()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeLoose {
		return "colorhunt_loose"
	}
	return "colorhunt"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeLoose {
		return "Color Hunt (Loose)"
	}
	return "Color Hunt"
}

// Reset loads configuration and returns to the instructions screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.cfg = g.loadConfig()
	g.session = nil
	g.phase = PhaseInstructions
	g.fade = NewFade(g.cfg.Effects.FadeFrames)
	g.pop = NewPop(g.cfg.Effects.PopFrames)
	g.last = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

func (g *Game) loadConfig() config.ColorHuntConfig {
	cfg := config.DefaultColorHuntConfig()
	if selectedConfig != nil {
		cfg = *selectedConfig
	}
	if g.mode == ModeLoose {
		cfg.Rounds.Mismatch = config.MismatchLoose
	}
	return cfg
}

// Resize adapts to new terminal dimensions; the session is untouched.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Config returns the configuration in effect.
func (g *Game) Config() config.ColorHuntConfig {
	return g.cfg
}

// Session returns the running session, or nil before the first start.
func (g *Game) Session() *Session {
	return g.session
}

// Phase returns the screen currently shown.
func (g *Game) Phase() Phase {
	return g.phase
}

// Step applies one input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case PhaseInstructions:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionGuess) {
			g.start()
			return core.StepResult{State: g.State(), Started: true}
		}

	case PhasePlaying:
		if in.Has(core.ActionGuess) {
			choice := ColorName(in.Choice)
			if choice.Valid() {
				g.guess(choice)
			}
		}

	case PhaseGameOver:
		prevInk := g.session.CurrentRound().Ink
		if in.Has(core.ActionRestart) && g.session.Reset() {
			g.phase = PhasePlaying
			g.last = nil
			g.fade.Start(prevInk.RGB(), g.session.CurrentRound().Ink.RGB())
			return core.StepResult{State: g.State(), Started: true}
		}
	}

	return core.StepResult{State: g.State()}
}

// start creates the session when the instructions are dismissed.
func (g *Game) start() {
	gen := NewRoundGenerator(g.rng, mismatchPolicy(g.cfg.Rounds.Mismatch))
	g.session = NewSession(gen,
		WithDuration(g.cfg.Session.DurationSeconds),
		WithScoring(ScoringRules{
			CorrectPoints: g.cfg.Scoring.CorrectPoints,
			WrongPenalty:  g.cfg.Scoring.WrongPenalty,
			Clamp:         clampPolicy(g.cfg.Scoring.Clamp),
		}),
	)
	g.phase = PhasePlaying
	g.fade.Snap(g.session.CurrentRound().Ink.RGB())
}

func (g *Game) guess(choice ColorName) {
	prevInk := g.session.CurrentRound().Ink
	res := g.session.Guess(choice)
	if !res.Applied {
		return
	}
	g.last = &res
	g.pop.Start(choice)
	g.fade.Start(prevInk.RGB(), res.Round.Ink.RGB())
}

// Tick advances the countdown by one second.
func (g *Game) Tick() core.StepResult {
	if g.phase != PhasePlaying {
		return core.StepResult{State: g.State()}
	}
	if g.session.Tick() {
		g.phase = PhaseGameOver
		return core.StepResult{State: g.State(), Ended: true}
	}
	return core.StepResult{State: g.State()}
}

// Animate advances the fade and pop effects by one frame.
func (g *Game) Animate() {
	g.fade.Advance()
	g.pop.Advance()
}

// HitTest returns the palette index of the button under (x, y).
func (g *Game) HitTest(x, y int) (int, bool) {
	if g.tooSmall {
		return 0, false
	}
	l := g.layout()
	for i, r := range l.buttons {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Waiting:  g.phase == PhaseInstructions,
		GameOver: g.phase == PhaseGameOver,
	}
	if g.session != nil {
		st.Score = g.session.Score()
		st.SecondsLeft = g.session.SecondsRemaining()
	} else {
		st.SecondsLeft = g.cfg.Session.DurationSeconds
	}
	return st
}

// LastGuess returns the most recent applied guess, if any.
func (g *Game) LastGuess() (GuessResult, bool) {
	if g.last == nil {
		return GuessResult{}, false
	}
	return *g.last, true
}

func mismatchPolicy(name string) MismatchPolicy {
	if name == config.MismatchLoose {
		return MismatchLoose
	}
	return MismatchStrict
}

func clampPolicy(name string) ClampPolicy {
	if name == config.ClampThreshold {
		return ClampThreshold
	}
	return ClampFloor
}
