// Package level assembles playable levels from the level table and a
// generated tree.
package level

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/binary-swipes/internal/bst"
	"github.com/vovakirdan/binary-swipes/internal/config"
)

// MaxAttempts bounds how many trees are generated for one level.
const MaxAttempts = 10

// ErrGenerationExhausted is returned when no attempt produced a target that
// needs at least one swipe.
var ErrGenerationExhausted = errors.New("level: no valid target path after max attempts")

// Level is one playable unit. It is never modified after Create returns;
// moving on to another level or retrying replaces it.
type Level struct {
	Number           int
	Root             *bst.Node
	Target           int
	Path             []int // root value first, target last
	ApproachDuration time.Duration
	SwipeTimeout     time.Duration
	TreeDepth        int
}

// Swipes returns the number of correct swipes needed to reach the target.
func (l *Level) Swipes() int {
	return len(l.Path) - 1
}

// Generator creates levels from a level table.
type Generator struct {
	table *config.LevelTable
	rng   *rand.Rand
}

// NewGenerator creates a generator over table. A nil table uses the default
// table; a nil rng draws from the process-wide source.
func NewGenerator(table *config.LevelTable, rng *rand.Rand) *Generator {
	if table == nil {
		t := config.DefaultLevelTable()
		table = &t
	}
	return &Generator{table: table, rng: rng}
}

// Table returns the level table the generator reads from.
func (g *Generator) Table() *config.LevelTable {
	return g.table
}

// Create builds level n. Tree errors are returned straight away since they
// come from the table, not from chance.
func (g *Generator) Create(n int) (*Level, error) {
	cfg := g.table.Get(n)

	for attempt := 0; attempt < MaxAttempts; attempt++ {
		root, err := bst.Generate(g.rng, cfg.TreeDepth, cfg.MinValue, cfg.MaxValue)
		if err != nil {
			return nil, fmt.Errorf("level: cannot build level %d: %w", n, err)
		}

		target := bst.PickTarget(g.rng, root, bst.DefaultMinDepth)
		path, ok := bst.PathTo(root, target)
		if !ok || len(path) < 2 {
			continue
		}

		return &Level{
			Number:           n,
			Root:             root,
			Target:           target,
			Path:             append([]int(nil), path...),
			ApproachDuration: cfg.Approach(),
			SwipeTimeout:     cfg.SwipeTimeout(),
			TreeDepth:        cfg.TreeDepth,
		}, nil
	}

	return nil, fmt.Errorf("level %d: %w", n, ErrGenerationExhausted)
}

// Create builds level n from the default table. It panics if generation
// fails, which the default table makes unreachable.
func Create(n int) *Level {
	lvl, err := NewGenerator(nil, nil).Create(n)
	if err != nil {
		panic(err)
	}
	return lvl
}
