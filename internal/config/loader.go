package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvDuration  = "COLORHUNT_DURATION"
	EnvClamp     = "COLORHUNT_CLAMP"
	EnvMismatch  = "COLORHUNT_MISMATCH"
	EnvFrameRate = "COLORHUNT_FPS"
)

// LoadColorHunt loads Color Hunt configuration, applies environment
// overrides and validates the result.
// Search order: customPath -> ~/.colorhunt/configs/colorhunt.yaml -> ./configs/colorhunt.yaml -> embedded default
func LoadColorHunt(customPath string) (ColorHuntConfig, error) {
	cfg, err := loadColorHuntFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadColorHuntFile(customPath string) (ColorHuntConfig, error) {
	// Files only need to name the values they change
	cfg := DefaultColorHuntConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("colorhunt.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultColorHuntConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "colorhunt.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultColorHuntConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultColorHuntYAML, &cfg); err != nil {
		return DefaultColorHuntConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorhunt", "configs", filename)
}

// LoadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with COLORHUNT_* environment variables.
func ApplyEnv(cfg *ColorHuntConfig) error {
	if v, ok := lookupEnv(EnvDuration); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvDuration, err)
		}
		cfg.Session.DurationSeconds = n
	}
	if v, ok := lookupEnv(EnvClamp); ok {
		cfg.Scoring.Clamp = strings.ToLower(v)
	}
	if v, ok := lookupEnv(EnvMismatch); ok {
		cfg.Rounds.Mismatch = strings.ToLower(v)
	}
	if v, ok := lookupEnv(EnvFrameRate); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvFrameRate, err)
		}
		cfg.Effects.FrameRate = n
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// Marshal renders cfg as YAML.
func Marshal(cfg ColorHuntConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
