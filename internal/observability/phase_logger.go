package observability

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binary-swipes/internal/engine"
	"github.com/vovakirdan/binary-swipes/internal/level"
)

// PhaseLogger logs every phase change of a game. Terminal phases go out at
// info, everything else at debug.
type PhaseLogger struct {
	logger *log.Logger
}

// NewPhaseLogger wraps logger.
func NewPhaseLogger(logger *log.Logger) *PhaseLogger {
	return &PhaseLogger{logger: logger}
}

// OnPhase implements swipes.Observer.
func (p *PhaseLogger) OnPhase(prev, next *engine.State, lvl *level.Level) {
	if p == nil || p.logger == nil || next == nil {
		return
	}
	if prev != nil && prev.Phase == next.Phase && prev.PathIndex == next.PathIndex {
		return
	}

	kv := []any{
		"phase", next.Phase,
		"level", next.Level,
		"score", next.Score,
		"index", next.PathIndex,
	}
	if lvl != nil {
		kv = append(kv, "target", lvl.Target)
	}

	switch next.Phase {
	case engine.PhaseGameOver:
		cause := "wrong_swipe"
		if next.WasTimeout {
			cause = "timeout"
		}
		p.logger.Info("run over", append(kv, "cause", cause)...)
	case engine.PhaseLevelComplete:
		p.logger.Info("level complete", kv...)
	default:
		p.logger.Debug("phase", kv...)
	}
}
