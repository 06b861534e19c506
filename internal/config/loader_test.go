package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order falls through to the embedded default.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{EnvDuration, EnvClamp, EnvMismatch, EnvFrameRate} {
		t.Setenv(k, "")
	}
	return dir
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML ColorHuntConfig
	if err := yaml.Unmarshal(defaultColorHuntYAML, &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultColorHuntConfig() {
		t.Errorf("embedded YAML = %+v, hardcoded = %+v", fromYAML, DefaultColorHuntConfig())
	}
}

func TestLoadColorHuntDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadColorHunt("")
	if err != nil {
		t.Fatalf("LoadColorHunt() failed: %v", err)
	}
	if cfg.Session.DurationSeconds != 60 {
		t.Errorf("DurationSeconds = %d, expected 60", cfg.Session.DurationSeconds)
	}
	if cfg.Scoring.Clamp != ClampFloor {
		t.Errorf("Clamp = %q, expected %q", cfg.Scoring.Clamp, ClampFloor)
	}
	if cfg.Rounds.Mismatch != MismatchStrict {
		t.Errorf("Mismatch = %q, expected %q", cfg.Rounds.Mismatch, MismatchStrict)
	}
}

func TestLoadColorHuntCustomPartial(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	data := "session:\n  duration_seconds: 30\nscoring:\n  clamp: threshold\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadColorHunt(path)
	if err != nil {
		t.Fatalf("LoadColorHunt() failed: %v", err)
	}
	if cfg.Session.DurationSeconds != 30 {
		t.Errorf("DurationSeconds = %d, expected 30", cfg.Session.DurationSeconds)
	}
	if cfg.Scoring.Clamp != ClampThreshold {
		t.Errorf("Clamp = %q, expected %q", cfg.Scoring.Clamp, ClampThreshold)
	}
	// Unnamed values keep their defaults
	if cfg.Scoring.WrongPenalty != 2 {
		t.Errorf("WrongPenalty = %d, expected default 2", cfg.Scoring.WrongPenalty)
	}
	if cfg.Effects.FrameRate != 30 {
		t.Errorf("FrameRate = %d, expected default 30", cfg.Effects.FrameRate)
	}
}

func TestLoadColorHuntLocalDir(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := "rounds:\n  mismatch: loose\n"
	if err := os.WriteFile(filepath.Join(dir, "configs", "colorhunt.yaml"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadColorHunt("")
	if err != nil {
		t.Fatalf("LoadColorHunt() failed: %v", err)
	}
	if cfg.Rounds.Mismatch != MismatchLoose {
		t.Errorf("Mismatch = %q, expected %q", cfg.Rounds.Mismatch, MismatchLoose)
	}
}

func TestLoadColorHuntErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadColorHunt(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("session: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadColorHunt(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("scoring:\n  clamp: sometimes\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadColorHunt(invalid)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "scoring.clamp") {
		t.Errorf("error %q should name scoring.clamp", err)
	}
}

func TestApplyEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDuration, "45")
	t.Setenv(EnvClamp, "THRESHOLD")
	t.Setenv(EnvMismatch, "loose")
	t.Setenv(EnvFrameRate, "60")

	cfg, err := LoadColorHunt("")
	if err != nil {
		t.Fatalf("LoadColorHunt() failed: %v", err)
	}
	if cfg.Session.DurationSeconds != 45 {
		t.Errorf("DurationSeconds = %d, expected 45", cfg.Session.DurationSeconds)
	}
	if cfg.Scoring.Clamp != ClampThreshold {
		t.Errorf("Clamp = %q, expected %q", cfg.Scoring.Clamp, ClampThreshold)
	}
	if cfg.Rounds.Mismatch != MismatchLoose {
		t.Errorf("Mismatch = %q, expected %q", cfg.Rounds.Mismatch, MismatchLoose)
	}
	if cfg.Effects.FrameRate != 60 {
		t.Errorf("FrameRate = %d, expected 60", cfg.Effects.FrameRate)
	}
}

func TestApplyEnvBadNumber(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDuration, "soon")

	cfg := DefaultColorHuntConfig()
	if err := ApplyEnv(&cfg); err == nil {
		t.Error("expected error for non-numeric duration")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)

	// Missing file is fine
	if err := LoadDotEnv(filepath.Join(dir, "nope.env")); err != nil {
		t.Errorf("LoadDotEnv(missing) = %v, expected nil", err)
	}

	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("COLORHUNT_TEST_DOTENV=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COLORHUNT_TEST_DOTENV", "")
	os.Unsetenv("COLORHUNT_TEST_DOTENV")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() failed: %v", err)
	}
	if got := os.Getenv("COLORHUNT_TEST_DOTENV"); got != "from-file" {
		t.Errorf("COLORHUNT_TEST_DOTENV = %q, expected %q", got, "from-file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ColorHuntConfig)
		wantErr bool
	}{
		{"defaults", func(*ColorHuntConfig) {}, false},
		{"zero duration", func(c *ColorHuntConfig) { c.Session.DurationSeconds = 0 }, true},
		{"zero correct points", func(c *ColorHuntConfig) { c.Scoring.CorrectPoints = 0 }, true},
		{"negative penalty", func(c *ColorHuntConfig) { c.Scoring.WrongPenalty = -1 }, true},
		{"zero penalty", func(c *ColorHuntConfig) { c.Scoring.WrongPenalty = 0 }, false},
		{"unknown mismatch", func(c *ColorHuntConfig) { c.Rounds.Mismatch = "never" }, true},
		{"frame rate too high", func(c *ColorHuntConfig) { c.Effects.FrameRate = 500 }, true},
		{"negative fade", func(c *ColorHuntConfig) { c.Effects.FadeFrames = -1 }, true},
		{"no effects", func(c *ColorHuntConfig) { c.Effects.FadeFrames, c.Effects.PopFrames = 0, 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultColorHuntConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	cfg := DefaultColorHuntConfig()
	cfg.Session.DurationSeconds = 90

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "duration_seconds: 90") {
		t.Errorf("Marshal() output missing duration:\n%s", data)
	}
}
