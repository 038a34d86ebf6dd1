// Package engine implements the binary swipes state machine.
//
// Every transition takes a *State and returns a *State. A transition that
// does not apply in the current phase returns its argument unchanged, the
// same pointer. A transition that applies always returns a new snapshot.
// Snapshots are never modified after they are returned, so callers detect
// change with prev != next.
package engine

// Phase is the discrete state of play.
type Phase string

const (
	PhaseIdle          Phase = "IDLE"           // before the first level starts
	PhaseCountdown     Phase = "COUNTDOWN"      // 3-2-1 before a level
	PhaseApproaching   Phase = "APPROACHING"    // node moving toward the player
	PhaseAwaitingSwipe Phase = "AWAITING_SWIPE" // node arrived, timer running
	PhaseTransitioning Phase = "TRANSITIONING"  // correct swipe, moving to next node
	PhaseLevelComplete Phase = "LEVEL_COMPLETE" // target reached
	PhaseGameOver      Phase = "GAME_OVER"      // wrong swipe or timeout
)

// String returns the phase name.
func (p Phase) String() string {
	return string(p)
}

// IsTerminal reports whether the phase waits for an outside start, restart
// or next-level action.
func (p Phase) IsTerminal() bool {
	return p == PhaseLevelComplete || p == PhaseGameOver
}

// AcceptsSwipe reports whether swipes are processed in this phase.
// Swipes made while the node is still approaching count.
func (p Phase) AcceptsSwipe() bool {
	return p == PhaseAwaitingSwipe || p == PhaseApproaching
}

// Direction is a swipe direction.
type Direction int

const (
	// DirectionNone means no swipe is possible.
	DirectionNone Direction = iota
	Left
	Right
)

// String returns "left", "right" or "none".
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// State is one immutable snapshot of play progress.
type State struct {
	Phase         Phase
	Level         int
	Score         int
	PathIndex     int   // node the player occupies
	Path          []int // root to target, shared between snapshots, never written
	Target        int
	WasWrongSwipe bool // cause of the last GAME_OVER
	WasTimeout    bool // cause of the last GAME_OVER
}

// Initial returns the state before any level is started.
func Initial() *State {
	return &State{
		Phase: PhaseIdle,
		Level: 1,
	}
}

// Current returns the value at PathIndex, or false if the path is empty.
func (s *State) Current() (int, bool) {
	if s.PathIndex < 0 || s.PathIndex >= len(s.Path) {
		return 0, false
	}
	return s.Path[s.PathIndex], true
}

// Next returns the value after PathIndex, or false at the end of the path.
func (s *State) Next() (int, bool) {
	i := s.PathIndex + 1
	if i < 1 || i >= len(s.Path) {
		return 0, false
	}
	return s.Path[i], true
}

// Remaining returns how many correct swipes are left to reach the target.
func (s *State) Remaining() int {
	return max(0, len(s.Path)-1-s.PathIndex)
}

func (s *State) clone() *State {
	c := *s
	return &c
}

// Changed reports whether a transition produced a new snapshot.
func Changed(prev, next *State) bool {
	return prev != next
}
