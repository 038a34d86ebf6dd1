package swipes

import "github.com/vovakirdan/binary-swipes/internal/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Level       int
	Phase       engine.Phase
	Score       int
	HighScore   int
	PathIndex   int
	Path        []int
	Target      int
	Countdown   int // digit on screen during COUNTDOWN, 0 otherwise
	ResultShown bool
	Paused      bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Mode:        string(g.mode),
		Level:       g.state.Level,
		Phase:       g.state.Phase,
		Score:       g.state.Score,
		HighScore:   g.highScore,
		PathIndex:   g.state.PathIndex,
		Path:        append([]int(nil), g.state.Path...),
		Target:      g.state.Target,
		Countdown:   g.countdownDigit(),
		ResultShown: g.resultShown,
		Paused:      g.paused,
	}
}

// countdownDigit returns 3, 2 or 1 during COUNTDOWN and 0 otherwise.
func (g *Game) countdownDigit() int {
	if g.state.Phase != engine.PhaseCountdown {
		return 0
	}
	if g.opts.CountdownStep <= 0 {
		return 1
	}
	step := int(g.phaseElapsed() / g.opts.CountdownStep)
	return max(1, countdownSteps-step)
}
