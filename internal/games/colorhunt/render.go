package colorhunt

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-colorhunt/internal/core"
)

const (
	minScreenW = 52
	minScreenH = 16

	gridCols     = 4
	gridRows     = 3
	buttonHeight = 3
	buttonGap    = 1
	maxButtonW   = 20
)

// shortcutKeys are the keyboard shortcuts for the buttons, in palette order.
var shortcutKeys = [colorCount]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}

// ShortcutKey returns the key that guesses c.
func ShortcutKey(c ColorName) string {
	if !c.Valid() {
		return ""
	}
	return shortcutKeys[c]
}

// layout holds the screen regions for the current dimensions.
type layout struct {
	word    core.Rect
	footerY int
	buttons [colorCount]core.Rect
}

func (g *Game) layout() layout {
	var l layout

	gridTop := g.screenH - gridRows*buttonHeight
	l.footerY = gridTop - 1
	l.word = core.NewRect(2, 2, g.screenW-4, l.footerY-3)

	bw := core.Min((g.screenW-4-(gridCols-1)*buttonGap)/gridCols, maxButtonW)
	gw := gridCols*bw + (gridCols-1)*buttonGap
	gx := (g.screenW - gw) / 2
	for i := range l.buttons {
		col, row := i%gridCols, i/gridCols
		l.buttons[i] = core.NewRect(gx+col*(bw+buttonGap), gridTop+row*buttonHeight, bw, buttonHeight)
	}
	return l
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	dst.DrawTextCentered(0, g.Title()+" - Match the Color!", core.ColorWhite)
	dst.DrawBox(l.word, core.ColorGray)

	switch g.phase {
	case PhaseInstructions:
		g.renderLines(dst, l.word, g.instructionLines(), core.ColorWhite)
	case PhasePlaying:
		g.renderWord(dst, l.word)
	case PhaseGameOver:
		g.renderLines(dst, l.word, []string{
			"Game Over!",
			"",
			fmt.Sprintf("Score: %d", g.session.Score()),
			"",
			"Play again? (y/n)",
		}, core.ColorWhite)
	}

	g.renderFooter(dst, l.footerY)
	g.renderButtons(dst, l)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH), core.ColorGray)
}

func (g *Game) instructionLines() []string {
	return []string{
		"Match the TEXT, not the COLOR!",
		"",
		fmt.Sprintf("+%d for correct", g.cfg.Scoring.CorrectPoints),
		fmt.Sprintf("-%d for wrong", g.cfg.Scoring.WrongPenalty),
		fmt.Sprintf("%d seconds", g.cfg.Session.DurationSeconds),
		"",
		"Press Enter to start",
	}
}

// renderLines centers lines vertically inside the word box, dropping
// whatever does not fit.
func (g *Game) renderLines(dst *core.Screen, box core.Rect, lines []string, c core.Color) {
	inner := box.H - 2
	if len(lines) > inner {
		lines = lines[:core.Max(inner, 0)]
	}
	top := box.Y + 1 + (inner-len(lines))/2
	for i, line := range lines {
		dst.DrawTextCenteredIn(box, top+i, line, c)
	}
}

// renderWord draws the round's text, letter-spaced, in the fading ink.
func (g *Game) renderWord(dst *core.Screen, box core.Rect) {
	text := strings.ToUpper(g.session.CurrentRound().Text.String())
	spaced := strings.Join(strings.Split(text, ""), " ")
	_, cy := box.Center()
	dst.DrawTextCenteredIn(box, cy, spaced, g.fade.Color())
}

// renderFooter draws time on the left, score on the right and feedback between.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	st := g.State()

	timeStr := fmt.Sprintf("Time: %d", st.SecondsLeft)
	dst.DrawTextColor(2, y, timeStr, timerColor(st.SecondsLeft, g.cfg.Session.DurationSeconds))

	scoreStr := fmt.Sprintf("Score: %d", st.Score)
	dst.DrawTextColor(g.screenW-2-len(scoreStr), y, scoreStr, core.ColorWhite)

	if g.phase != PhasePlaying || g.last == nil {
		return
	}
	if g.last.Correct {
		dst.DrawTextCentered(y, fmt.Sprintf("Correct! %+d", g.last.Delta), core.ColorGreen)
		return
	}
	msg := "Wrong"
	if g.last.Delta != 0 {
		msg = fmt.Sprintf("Wrong %d", g.last.Delta)
	}
	dst.DrawTextCentered(y, msg, core.ColorRed)
}

// renderButtons draws the twelve color buttons, each label in its own color.
func (g *Game) renderButtons(dst *core.Screen, l layout) {
	for i, r := range l.buttons {
		c := ColorName(i)
		label := ShortcutKey(c) + " " + c.String()
		labelColor := c.RGB().Color()
		if g.phase == PhaseGameOver {
			labelColor = core.ColorDim
		}

		if g.pop.Active(c) {
			dst.DrawHeavyBox(r, core.ColorWhite)
		} else {
			dst.DrawBox(r, core.ColorDim)
		}
		dst.DrawTextCenteredIn(r, r.Y+1, label, labelColor)
	}
}
