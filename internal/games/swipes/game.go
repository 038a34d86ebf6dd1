// Package swipes implements Binary Swipes: numbers from a balanced binary
// search tree approach the player, who swipes left for smaller and right
// for larger to walk down to the target before time runs out.
package swipes

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/binary-swipes/internal/config"
	"github.com/vovakirdan/binary-swipes/internal/core"
	"github.com/vovakirdan/binary-swipes/internal/engine"
	"github.com/vovakirdan/binary-swipes/internal/level"
	"github.com/vovakirdan/binary-swipes/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeCampaign advances a level after every completed one.
	ModeCampaign Mode = "campaign"
	// ModePractice replays the chosen level with a fresh tree.
	ModePractice Mode = "practice"
)

// Run outcomes reported through core.GameState.Outcome.
const (
	OutcomeWrongSwipe = "wrong_swipe"
	OutcomeTimeout    = "timeout"
)

// Countdown digits shown before a level.
const countdownSteps = 3

// Minimum screen size.
const (
	minScreenW = 40
	minScreenH = 16
)

// HighScoreStore persists the best score per mode.
type HighScoreStore interface {
	HighScore(mode string) (int, error)
	SetHighScore(mode string, score int) error
}

// Options configures a Game.
type Options struct {
	Table         *config.LevelTable // nil means the default table
	Preset        config.DifficultyPreset
	StartLevel    int // first level of a run, 1 if unset
	CountdownStep time.Duration
	Transition    time.Duration
	ResultDelay   time.Duration
	HighScores    HighScoreStore
	Observers     []Observer
}

// DefaultOptions returns options with the default table and timings.
func DefaultOptions() Options {
	return Options{
		Preset:        config.DifficultyNormal,
		StartLevel:    1,
		CountdownStep: config.DefaultCountdownStepMs * time.Millisecond,
		Transition:    config.DefaultTransitionMs * time.Millisecond,
		ResultDelay:   config.DefaultResultDelayMs * time.Millisecond,
	}
}

var (
	defaultsMu sync.Mutex
	defaults   = DefaultOptions()
)

// SetDefaults sets the options used by games created through the registry.
func SetDefaults(opts Options) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = opts
}

// Defaults returns the options used by games created through the registry.
func Defaults() Options {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	return defaults
}

// SetStartLevel sets the first level for registry-created games.
func SetStartLevel(n int) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults.StartLevel = n
}

func init() {
	registry.Register("swipes", func() registry.Game {
		return New(ModeCampaign, Defaults())
	})
	registry.Register("swipes_practice", func() registry.Game {
		return New(ModePractice, Defaults())
	})
}

// phaseTimer fires once the clock reaches deadline, but only while the
// game still holds the snapshot it was armed for. Any transition replaces
// the snapshot, which cancels the timer.
type phaseTimer struct {
	armedFor *engine.State
	deadline time.Duration
}

// Game is the single writer of the current state snapshot and level.
type Game struct {
	mode Mode
	opts Options
	gen  *level.Generator
	rng  *rand.Rand

	tick    uint64
	tickDur time.Duration
	clock   time.Duration // simulated time since Reset

	state *engine.State
	lvl   *level.Level

	timer       phaseTimer
	phaseStart  time.Duration
	resultShown bool
	lastSwipe   engine.Direction

	highScore  int
	savedScore int // last value written to HighScores

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game in the given mode.
func New(mode Mode, opts Options) *Game {
	if opts.StartLevel < 1 {
		opts.StartLevel = 1
	}
	return &Game{
		mode:  mode,
		opts:  opts,
		state: engine.Initial(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "swipes_practice"
	}
	return "swipes"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Binary Swipes (Practice)"
	}
	return "Binary Swipes"
}

// Reset starts a new run at the configured start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	table := config.DefaultLevelTable()
	if g.opts.Table != nil {
		table = *g.opts.Table
	}
	table = config.ApplyPreset(table, g.opts.Preset)
	g.gen = level.NewGenerator(&table, g.rng)

	g.tick = 0
	g.tickDur = cfg.TickDuration()
	g.clock = 0
	g.timer = phaseTimer{}
	g.resultShown = false
	g.lastSwipe = engine.DirectionNone
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.loadHighScore()

	g.state = engine.Initial()
	g.lvl = nil
	g.startLevel(g.opts.StartLevel, false)
}

// Resize updates the screen size without touching play state.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.state.Phase.IsTerminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.clock += g.tickDur

	switch {
	case in.Has(core.ActionLeft):
		g.swipe(engine.Left)
	case in.Has(core.ActionRight):
		g.swipe(engine.Right)
	case in.Has(core.ActionConfirm):
		g.confirm()
	case in.Has(core.ActionRestart):
		g.restart()
	}

	g.fireTimer()

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	gs := core.GameState{
		Score:     g.state.Score,
		HighScore: g.highScore,
		Level:     g.state.Level,
		GameOver:  g.state.Phase == engine.PhaseGameOver,
		Paused:    g.paused || g.tooSmall,
	}
	if gs.GameOver {
		gs.Outcome = OutcomeWrongSwipe
		if g.state.WasTimeout {
			gs.Outcome = OutcomeTimeout
		}
	}
	return gs
}

// Phase returns the current phase.
func (g *Game) Phase() engine.Phase {
	return g.state.Phase
}

// Current returns the current state snapshot and level together.
func (g *Game) Current() (*engine.State, *level.Level) {
	return g.state, g.lvl
}

// HighScore returns the best score seen in this mode.
func (g *Game) HighScore() int {
	return g.highScore
}

// NewHighScore reports whether the current score is a new best.
func (g *Game) NewHighScore() bool {
	return g.state.Score > 0 && g.state.Score >= g.highScore
}

// CorrectSwipes returns how many correct swipes the current level took.
func (g *Game) CorrectSwipes() int {
	if g.state.Phase == engine.PhaseLevelComplete {
		return len(g.state.Path) - 1
	}
	return g.state.PathIndex
}

func (g *Game) progresses() bool {
	return g.mode == ModeCampaign && g.opts.Preset.Progresses()
}

// startLevel builds level n and installs it together with a new snapshot.
func (g *Game) startLevel(n int, resetScore bool) {
	lvl, err := g.gen.Create(n)
	if err != nil {
		// The table is validated on load, so this is a bug.
		panic(fmt.Sprintf("swipes: %v", err))
	}

	next := engine.WithLevel(g.state, n)
	if resetScore {
		next = engine.ResetScore(next)
	}
	next = engine.StartLevel(next, lvl.Path, lvl.Target)

	g.lvl = lvl
	g.apply(next)
}

func (g *Game) swipe(dir engine.Direction) {
	res := engine.ProcessSwipe(g.state, dir)
	if !engine.Changed(g.state, res.Next) {
		return
	}
	g.lastSwipe = dir
	g.highScore = max(g.highScore, res.Next.Score)
	g.saveHighScore()
	g.apply(res.Next)
}

// confirm starts play from IDLE, or moves on from a result screen.
func (g *Game) confirm() {
	switch g.state.Phase {
	case engine.PhaseIdle:
		g.startLevel(g.opts.StartLevel, false)
	case engine.PhaseLevelComplete:
		if !g.resultShown {
			return
		}
		n := g.state.Level
		if g.progresses() {
			n++
		}
		g.startLevel(n, false)
	case engine.PhaseGameOver:
		if g.resultShown {
			g.startLevel(g.state.Level, true)
		}
	}
}

// restart replays the current level from a score of zero.
func (g *Game) restart() {
	if g.state.Phase.IsTerminal() {
		g.startLevel(g.state.Level, true)
	}
}

// apply installs next and arms the timer for its phase.
func (g *Game) apply(next *engine.State) {
	prev := g.state
	if !engine.Changed(prev, next) {
		return
	}
	g.state = next
	g.phaseStart = g.clock
	g.timer = phaseTimer{}

	switch next.Phase {
	case engine.PhaseCountdown:
		g.arm(countdownSteps * g.opts.CountdownStep)
	case engine.PhaseApproaching:
		g.arm(g.lvl.ApproachDuration)
	case engine.PhaseAwaitingSwipe:
		g.arm(g.lvl.SwipeTimeout)
	case engine.PhaseTransitioning:
		g.arm(g.opts.Transition)
	case engine.PhaseLevelComplete, engine.PhaseGameOver:
		g.resultShown = false
		g.saveHighScore()
		g.arm(g.opts.ResultDelay)
	}

	for _, o := range g.opts.Observers {
		o.OnPhase(prev, next, g.lvl)
	}
}

func (g *Game) arm(d time.Duration) {
	g.timer = phaseTimer{armedFor: g.state, deadline: g.clock + d}
}

func (g *Game) fireTimer() {
	t := g.timer
	if t.armedFor == nil || t.armedFor != g.state || g.clock < t.deadline {
		return
	}
	g.timer = phaseTimer{}

	switch g.state.Phase {
	case engine.PhaseCountdown:
		g.apply(engine.CountdownDone(g.state))
	case engine.PhaseApproaching:
		g.apply(engine.NodeArrived(g.state))
	case engine.PhaseAwaitingSwipe:
		g.apply(engine.ProcessTimeout(g.state))
	case engine.PhaseTransitioning:
		g.apply(engine.AdvanceToNextNode(g.state))
	case engine.PhaseLevelComplete, engine.PhaseGameOver:
		g.resultShown = true
	}
}

// phaseElapsed returns the simulated time spent in the current phase.
func (g *Game) phaseElapsed() time.Duration {
	return g.clock - g.phaseStart
}

func (g *Game) loadHighScore() {
	if g.opts.HighScores == nil {
		return
	}
	best, err := g.opts.HighScores.HighScore(g.ID())
	if err != nil {
		return
	}
	g.highScore = max(g.highScore, best)
	g.savedScore = best
}

func (g *Game) saveHighScore() {
	if g.opts.HighScores == nil || g.highScore <= g.savedScore {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	g.opts.HighScores.SetHighScore(g.ID(), g.highScore)
	g.savedScore = g.highScore
}
