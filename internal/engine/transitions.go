package engine

// StartLevel moves any phase to COUNTDOWN with path and target installed.
// The path index and both outcome flags are reset; score is kept.
func StartLevel(s *State, path []int, target int) *State {
	next := s.clone()
	next.Phase = PhaseCountdown
	next.PathIndex = 0
	next.Path = append([]int(nil), path...)
	next.Target = target
	next.WasWrongSwipe = false
	next.WasTimeout = false
	return next
}

// WithLevel returns a snapshot with the level number set.
func WithLevel(s *State, level int) *State {
	next := s.clone()
	next.Level = level
	return next
}

// ResetScore returns a snapshot with score set to zero.
func ResetScore(s *State) *State {
	next := s.clone()
	next.Score = 0
	return next
}

// CountdownDone moves COUNTDOWN to APPROACHING.
func CountdownDone(s *State) *State {
	return advance(s, PhaseCountdown, PhaseApproaching)
}

// NodeArrived moves APPROACHING to AWAITING_SWIPE.
func NodeArrived(s *State) *State {
	return advance(s, PhaseApproaching, PhaseAwaitingSwipe)
}

// AdvanceToNextNode moves TRANSITIONING to APPROACHING.
func AdvanceToNextNode(s *State) *State {
	return advance(s, PhaseTransitioning, PhaseApproaching)
}

func advance(s *State, from, to Phase) *State {
	if s.Phase != from {
		return s
	}
	next := s.clone()
	next.Phase = to
	return next
}

// ProcessTimeout ends the game when the swipe timer expires.
// It only applies in AWAITING_SWIPE.
func ProcessTimeout(s *State) *State {
	if s.Phase != PhaseAwaitingSwipe {
		return s
	}
	next := s.clone()
	next.Phase = PhaseGameOver
	next.WasWrongSwipe = false
	next.WasTimeout = true
	return next
}

// CorrectSwipe returns the direction from the current node to the next one
// on the path, or DirectionNone at the end of the path.
func CorrectSwipe(s *State) Direction {
	cur, ok := s.Current()
	if !ok {
		return DirectionNone
	}
	nxt, ok := s.Next()
	if !ok {
		return DirectionNone
	}
	if nxt > cur {
		return Right
	}
	return Left
}

// SwipeResult is the outcome of ProcessSwipe.
type SwipeResult struct {
	Correct bool
	Next    *State
}

// ProcessSwipe applies a swipe. Outside APPROACHING and AWAITING_SWIPE it
// returns the input state unchanged.
//
// A correct swipe advances the path index and score, ending in
// LEVEL_COMPLETE on the last path element and TRANSITIONING otherwise. A
// wrong swipe ends the game with score and path index untouched.
func ProcessSwipe(s *State, dir Direction) SwipeResult {
	if !s.Phase.AcceptsSwipe() {
		return SwipeResult{Correct: false, Next: s}
	}

	want := CorrectSwipe(s)
	if want == DirectionNone || dir != want {
		next := s.clone()
		next.Phase = PhaseGameOver
		next.WasWrongSwipe = true
		next.WasTimeout = false
		return SwipeResult{Correct: false, Next: next}
	}

	next := s.clone()
	next.PathIndex++
	next.Score++
	next.WasWrongSwipe = false
	next.WasTimeout = false
	if next.PathIndex == len(next.Path)-1 {
		next.Phase = PhaseLevelComplete
	} else {
		next.Phase = PhaseTransitioning
	}
	return SwipeResult{Correct: true, Next: next}
}
