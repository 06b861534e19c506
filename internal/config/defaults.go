package config

import (
	_ "embed"
)

//go:embed defaults/colorhunt.yaml
var defaultColorHuntYAML []byte

// DefaultColorHuntConfig returns the default Color Hunt configuration.
func DefaultColorHuntConfig() ColorHuntConfig {
	return ColorHuntConfig{
		Session: SessionConfig{
			DurationSeconds: 60,
		},
		Scoring: ScoringConfig{
			CorrectPoints: 1,
			WrongPenalty:  2,
			Clamp:         ClampFloor,
		},
		Rounds: RoundsConfig{
			Mismatch: MismatchStrict,
		},
		Effects: EffectsConfig{
			FrameRate:  30,
			FadeFrames: 8,
			PopFrames:  5,
		},
	}
}
