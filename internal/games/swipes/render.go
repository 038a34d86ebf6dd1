package swipes

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/vovakirdan/binary-swipes/internal/bst"
	"github.com/vovakirdan/binary-swipes/internal/core"
	"github.com/vovakirdan/binary-swipes/internal/engine"
)

const (
	treeTop     = 3 // below HUD, timer bar and separator
	treePad     = 3 // columns kept free on both sides of the tree
	zoneFromBot = 3 // swipe zone line, counted from the bottom row
	lowTime     = 0.3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderTimer(dst)
	dst.DrawHLine(0, 2, g.screenW, '─', core.ColorDim)

	laneTop := treeTop
	if g.lvl != nil {
		laneTop = g.renderTree(dst) + 1
	}
	zoneY := g.screenH - zoneFromBot
	g.renderZone(dst, zoneY)

	switch g.state.Phase {
	case engine.PhaseIdle:
		dst.DrawTextCentered((laneTop+zoneY)/2, "Press Enter to start", core.ColorAccent)
	case engine.PhaseCountdown:
		g.renderCountdown(dst, (laneTop+zoneY)/2)
	default:
		g.renderNode(dst, laneTop, zoneY-1)
	}

	if g.resultShown {
		g.renderResult(dst)
	}
	if g.paused {
		g.renderPaused(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorWarning)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDim)
}

// renderHUD draws level, target and score.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("LVL %d", g.state.Level), core.ColorAccent)

	if len(g.state.Path) > 0 {
		dst.DrawTextCentered(0, fmt.Sprintf("FIND %d", g.state.Target), core.ColorTarget)
	}

	score := fmt.Sprintf("SCORE %d  BEST %d", g.state.Score, g.highScore)
	dst.DrawTextColor(g.screenW-len(score)-1, 0, score, core.ColorAccent)
}

// renderTimer draws the swipe timer bar while the player can answer.
func (g *Game) renderTimer(dst *core.Screen) {
	width := g.screenW - 4
	if width <= 0 || g.lvl == nil {
		return
	}

	var frac float64
	switch g.state.Phase {
	case engine.PhaseApproaching:
		frac = 1
	case engine.PhaseAwaitingSwipe:
		frac = 1 - progress(g.phaseElapsed(), g.lvl.SwipeTimeout)
	default:
		return
	}

	filled := int(math.Round(frac * float64(width)))
	color := core.ColorAccent
	if frac < lowTime {
		color = core.ColorWarning
	}
	dst.DrawHLine(2, 1, filled, '█', color)
	dst.DrawHLine(2+filled, 1, width-filled, '░', core.ColorDim)
}

// treeRowGap returns the row spacing between tree depths.
func (g *Game) treeRowGap() int {
	if treeTop+2*g.lvl.TreeDepth+zoneFromBot+4 <= g.screenH {
		return 2
	}
	return 1
}

// renderTree draws every node as a dot, with values for the nodes already
// passed. It returns the last row used.
func (g *Game) renderTree(dst *core.Screen) int {
	gap := g.treeRowGap()
	visited := make(map[int]bool, len(g.state.Path))
	for i := 0; i < g.state.PathIndex && i < len(g.state.Path); i++ {
		visited[g.state.Path[i]] = true
	}
	current, hasCurrent := g.state.Current()
	reveal := g.state.Phase == engine.PhaseGameOver

	bottom := treeTop
	bst.Walk(g.lvl.Root, func(n *bst.Node) {
		x := g.nodeX(n.XFraction)
		y := treeTop + n.Depth*gap
		bottom = max(bottom, y)

		switch {
		case visited[n.Value]:
			drawLabel(dst, x, y, strconv.Itoa(n.Value), core.ColorPath)
		case hasCurrent && n.Value == current:
			color := core.ColorNode
			if g.state.Phase == engine.PhaseLevelComplete {
				color = core.ColorCorrect
			}
			drawLabel(dst, x, y, strconv.Itoa(n.Value), color)
		case reveal && n.Value == g.state.Target:
			drawLabel(dst, x, y, strconv.Itoa(n.Value), core.ColorTarget)
		default:
			dst.SetColor(x, y, '·', core.ColorDim)
		}
	})
	return bottom
}

// nodeX maps a node's horizontal fraction to a screen column.
func (g *Game) nodeX(xFraction float64) int {
	return int(math.Round(core.MapRange(xFraction, 0, 1, treePad, float64(g.screenW-1-treePad))))
}

func drawLabel(dst *core.Screen, cx, y int, text string, c core.Color) {
	dst.DrawTextColor(cx-len(text)/2, y, text, c)
}

// renderZone draws the swipe line and direction hints.
func (g *Game) renderZone(dst *core.Screen, y int) {
	color := core.ColorDim
	if g.state.Phase == engine.PhaseAwaitingSwipe {
		color = core.ColorAccent
	}
	dst.DrawHLine(0, y, g.screenW, '─', color)
	dst.DrawTextColor(2, y+1, "◀ smaller", core.ColorDim)
	larger := "larger ▶"
	dst.DrawTextColor(g.screenW-len([]rune(larger))-2, y+1, larger, core.ColorDim)
}

// renderCountdown draws the 3-2-1 digits.
func (g *Game) renderCountdown(dst *core.Screen, y int) {
	dst.DrawTextCentered(y-1, "GET READY", core.ColorDim)
	dst.DrawTextCentered(y, strconv.Itoa(g.countdownDigit()), core.ColorAccent)
	dst.DrawTextCentered(y+1, fmt.Sprintf("find %d", g.state.Target), core.ColorTarget)
}

// renderNode draws the node in play on its way from the tree to the swipe
// line, or sliding off after a correct swipe.
func (g *Game) renderNode(dst *core.Screen, top, zone int) {
	if g.lvl == nil || top > zone {
		return
	}
	cx := g.screenW / 2
	y := zone
	index := g.state.PathIndex
	color := core.ColorNode

	switch g.state.Phase {
	case engine.PhaseApproaching:
		p := core.EaseOutQuart(progress(g.phaseElapsed(), g.lvl.ApproachDuration))
		y = int(math.Round(core.Lerp(float64(top), float64(zone), p)))
	case engine.PhaseTransitioning:
		// The node just answered slides out toward the swipe.
		index--
		t := core.EaseInOutCubic(progress(g.phaseElapsed(), g.opts.Transition))
		dir := 1.0
		if g.lastSwipe == engine.Left {
			dir = -1
		}
		cx += int(math.Round(dir * t * float64(g.screenW/2)))
		color = core.ColorCorrect
	case engine.PhaseLevelComplete:
		color = core.ColorCorrect
	case engine.PhaseGameOver:
		color = core.ColorWrong
	}

	if index < 0 || index >= len(g.state.Path) {
		return
	}
	label := "[ " + strconv.Itoa(g.state.Path[index]) + " ]"
	drawLabel(dst, cx, y, label, color)
}

// renderResult draws the outcome box.
func (g *Game) renderResult(dst *core.Screen) {
	complete := g.state.Phase == engine.PhaseLevelComplete

	title, titleColor := "WRONG WAY!", core.ColorWrong
	switch {
	case complete:
		title, titleColor = "FOUND IT!", core.ColorCorrect
	case g.state.WasTimeout:
		title = "TOO SLOW!"
	}

	type line struct {
		text  string
		color core.Color
	}
	lines := []line{{title, titleColor}}
	if !complete {
		lines = append(lines, line{fmt.Sprintf("Target was %d", g.state.Target), core.ColorTarget})
	}
	lines = append(lines,
		line{"", core.ColorDefault},
		line{stat("LEVEL", g.state.Level), core.ColorDefault},
		line{stat("CORRECT SWIPES", g.CorrectSwipes()), core.ColorDefault},
		line{stat("TOTAL SCORE", g.state.Score), core.ColorAccent},
	)
	if g.NewHighScore() {
		lines = append(lines, line{"NEW HIGH SCORE!", core.ColorWarning})
	}
	hint := "[Enter] try again  [Q] quit"
	if complete {
		hint = "[Enter] next  [R] retry  [Q] quit"
		if !g.progresses() {
			hint = "[Enter] again  [R] retry  [Q] quit"
		}
	}
	lines = append(lines, line{"", core.ColorDefault}, line{hint, core.ColorDim})

	w := 4
	for _, l := range lines {
		w = max(w, len([]rune(l.text))+4)
	}
	h := len(lines) + 2
	box := core.NewRect((g.screenW-w)/2, (g.screenH-h)/2, w, h)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, titleColor)
	for i, l := range lines {
		x := box.X + (w-len([]rune(l.text)))/2
		dst.DrawTextColor(x, box.Y+1+i, l.text, l.color)
	}
}

func stat(label string, value int) string {
	return fmt.Sprintf("%-16s%5d", label, value)
}

// renderPaused draws the pause banner.
func (g *Game) renderPaused(dst *core.Screen) {
	msg := "  PAUSED - press P  "
	y := g.screenH / 2
	dst.DrawTextCentered(y, msg, core.ColorWarning)
}

// progress returns elapsed/total clamped to [0, 1].
func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return core.ClampF(float64(elapsed)/float64(total), 0, 1)
}
