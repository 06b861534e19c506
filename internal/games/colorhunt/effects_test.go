package colorhunt

import (
	"testing"

	"github.com/vovakirdan/tui-colorhunt/internal/core"
)

func TestFadeEndpoints(t *testing.T) {
	f := NewFade(4)
	if !f.Done() {
		t.Error("new fade should be finished")
	}

	f.Start(Red.RGB(), Blue.RGB())
	if f.Done() {
		t.Fatal("started fade should not be finished")
	}
	if got := f.Color(); got != core.Color("#ff0000") {
		t.Errorf("first frame = %s, expected start color", got)
	}

	var mid core.Color
	for i := 0; i < 4; i++ {
		f.Advance()
		if i == 1 {
			mid = f.Color()
		}
	}
	if !f.Done() {
		t.Error("fade should finish after its frame count")
	}
	if got := f.Color(); got != core.Color("#0000ff") {
		t.Errorf("last frame = %s, expected end color", got)
	}
	if mid == "#ff0000" || mid == "#0000ff" {
		t.Errorf("middle frame %s should be between endpoints", mid)
	}

	// Advancing a finished fade is harmless
	f.Advance()
	if got := f.Color(); got != core.Color("#0000ff") {
		t.Errorf("after extra Advance = %s", got)
	}
}

func TestFadeSnapAndZeroFrames(t *testing.T) {
	f := NewFade(0)
	f.Start(Red.RGB(), Teal.RGB())
	if !f.Done() || f.Color() != Teal.RGB().Color() {
		t.Error("zero-frame fade should jump to the target")
	}

	g := NewFade(8)
	g.Snap(Green.RGB())
	if !g.Done() || g.Color() != Green.RGB().Color() {
		t.Error("Snap should show the color immediately")
	}
}

func TestFadeProgressEases(t *testing.T) {
	f := NewFade(10)
	f.Start(Red.RGB(), Blue.RGB())

	prev := -1.0
	for i := 0; i <= 10; i++ {
		p := f.Progress()
		if p < prev {
			t.Fatalf("progress decreased at frame %d: %f < %f", i, p, prev)
		}
		prev = p
		f.Advance()
	}
	if prev != 1 {
		t.Errorf("final progress = %f, expected 1", prev)
	}
}

func TestPop(t *testing.T) {
	p := NewPop(2)
	if p.Active(Red) {
		t.Error("idle pop should not be active")
	}

	p.Start(Cyan)
	if !p.Active(Cyan) {
		t.Error("started pop should highlight its choice")
	}
	if p.Active(Red) {
		t.Error("pop should only highlight its choice")
	}

	p.Advance()
	p.Advance()
	if p.Active(Cyan) {
		t.Error("pop should expire after its frame count")
	}
}

func TestTimerColor(t *testing.T) {
	tests := []struct {
		remaining, total int
		expected         core.Color
	}{
		{60, 60, core.ColorGreen},
		{16, 60, core.ColorGreen},
		{15, 60, core.ColorYellow},
		{7, 60, core.ColorYellow},
		{6, 60, core.ColorRed},
		{0, 60, core.ColorRed},
		{5, 0, core.ColorGreen},
	}

	for _, tc := range tests {
		if got := timerColor(tc.remaining, tc.total); got != tc.expected {
			t.Errorf("timerColor(%d, %d) = %q, expected %q", tc.remaining, tc.total, got, tc.expected)
		}
	}
}
