// Package config provides YAML-based game configuration loading
// for Color Hunt.
package config

import (
	"errors"
	"fmt"
)

// Policy names accepted in YAML and environment overrides.
const (
	ClampFloor     = "floor"
	ClampThreshold = "threshold"

	MismatchStrict = "strict"
	MismatchLoose  = "loose"
)

// ColorHuntConfig contains all configuration for the Color Hunt game.
type ColorHuntConfig struct {
	Session SessionConfig `yaml:"session"`
	Scoring ScoringConfig `yaml:"scoring"`
	Rounds  RoundsConfig  `yaml:"rounds"`
	Effects EffectsConfig `yaml:"effects"`
}

// SessionConfig defines the countdown.
type SessionConfig struct {
	DurationSeconds int `yaml:"duration_seconds"`
}

// ScoringConfig defines points per guess.
type ScoringConfig struct {
	CorrectPoints int    `yaml:"correct_points"`
	WrongPenalty  int    `yaml:"wrong_penalty"`
	Clamp         string `yaml:"clamp"` // "floor" or "threshold"
}

// RoundsConfig defines how rounds are dealt.
type RoundsConfig struct {
	Mismatch string `yaml:"mismatch"` // "strict" or "loose"
}

// EffectsConfig defines cosmetic animation timing.
type EffectsConfig struct {
	FrameRate  int `yaml:"frame_rate"`  // Animation frames per second
	FadeFrames int `yaml:"fade_frames"` // Frames to blend the ink between rounds
	PopFrames  int `yaml:"pop_frames"`  // Frames a pressed button stays highlighted
}

// Validate checks that every value is usable.
func (c ColorHuntConfig) Validate() error {
	var errs []error

	if c.Session.DurationSeconds <= 0 {
		errs = append(errs, fmt.Errorf("session.duration_seconds must be positive, got %d", c.Session.DurationSeconds))
	}
	if c.Scoring.CorrectPoints <= 0 {
		errs = append(errs, fmt.Errorf("scoring.correct_points must be positive, got %d", c.Scoring.CorrectPoints))
	}
	if c.Scoring.WrongPenalty < 0 {
		errs = append(errs, fmt.Errorf("scoring.wrong_penalty must not be negative, got %d", c.Scoring.WrongPenalty))
	}
	switch c.Scoring.Clamp {
	case ClampFloor, ClampThreshold:
	default:
		errs = append(errs, fmt.Errorf("scoring.clamp must be %q or %q, got %q", ClampFloor, ClampThreshold, c.Scoring.Clamp))
	}
	switch c.Rounds.Mismatch {
	case MismatchStrict, MismatchLoose:
	default:
		errs = append(errs, fmt.Errorf("rounds.mismatch must be %q or %q, got %q", MismatchStrict, MismatchLoose, c.Rounds.Mismatch))
	}
	if c.Effects.FrameRate <= 0 || c.Effects.FrameRate > 120 {
		errs = append(errs, fmt.Errorf("effects.frame_rate must be in 1..120, got %d", c.Effects.FrameRate))
	}
	if c.Effects.FadeFrames < 0 || c.Effects.PopFrames < 0 {
		errs = append(errs, errors.New("effects frame counts must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
