package swipes

import (
	"github.com/vovakirdan/binary-swipes/internal/engine"
	"github.com/vovakirdan/binary-swipes/internal/level"
)

// Observer is notified after every transition that produced a new snapshot.
// lvl is the level that next belongs to. Observers run on the game's
// goroutine and must not block.
type Observer interface {
	OnPhase(prev, next *engine.State, lvl *level.Level)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(prev, next *engine.State, lvl *level.Level)

// OnPhase calls f.
func (f ObserverFunc) OnPhase(prev, next *engine.State, lvl *level.Level) {
	f(prev, next, lvl)
}

// AddObserver attaches o to this game only.
func (g *Game) AddObserver(o Observer) {
	obs := make([]Observer, 0, len(g.opts.Observers)+1)
	obs = append(obs, g.opts.Observers...)
	g.opts.Observers = append(obs, o)
}
