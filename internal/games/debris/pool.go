package debris

import (
	"github.com/voidwake/space-debris/internal/config"
)

// Pool is the bounded, insertion-ordered collection of live debris plus
// the spawn countdown. Spawn order is preserved; removal never reorders
// the survivors.
type Pool struct {
	items     []Debris
	capacity  int
	gridW     int
	gridH     int
	scoreCol  int
	countdown int
	scratch   []int // Reused destroy-index buffer
}

// NewPool creates an empty pool sized from the game config.
func NewPool(cfg config.Config) *Pool {
	return &Pool{
		items:    make([]Debris, 0, cfg.Pool.Capacity),
		capacity: cfg.Pool.Capacity,
		gridW:    cfg.Grid.Width,
		gridH:    cfg.Grid.Height,
		scoreCol: cfg.Scoring.ScoreColumn,
	}
}

// Arm resets the spawn countdown, used at round start.
func (p *Pool) Arm(interval int) {
	p.countdown = interval
}

// Clear drops all live debris.
func (p *Pool) Clear() {
	p.items = p.items[:0]
}

// TickSpawn decrements the spawn countdown. When it reaches zero, one
// debris is spawned from the given seed and the active difficulty's speed
// range, and the countdown reloads from the difficulty's spawn interval.
// A pool at capacity drops the new debris silently. Returns true if a
// spawn attempt happened, so the caller knows the seed was consumed.
func (p *Pool) TickSpawn(seed int64, params config.DifficultyParams) bool {
	p.countdown--
	if p.countdown > 0 {
		return false
	}
	p.countdown = params.SpawnInterval

	if len(p.items) >= p.capacity {
		return true
	}
	p.items = append(p.items, Spawn(seed, params.SpeedMin, params.SpeedMax, p.gridW, p.gridH))
	return true
}

// TickAll advances every debris in insertion order and returns the number
// of points scored this tick. A point is tallied immediately after the
// debris that earned it advances, and only while the player is still
// running: debris behind a collision in the same pass drain without
// scoring. Destroyed debris are removed after the pass, highest index
// first, so pending indices stay valid.
func (p *Pool) TickAll(pl *Player) int {
	scored := 0
	destroy := p.scratch[:0]

	for i := range p.items {
		switch p.items[i].Advance(pl, p.scoreCol) {
		case StatusScorePoint:
			if pl.Running() {
				scored++
			}
		case StatusDestroy:
			destroy = append(destroy, i)
		}
	}

	for j := len(destroy) - 1; j >= 0; j-- {
		i := destroy[j]
		p.items = append(p.items[:i], p.items[i+1:]...)
	}
	p.scratch = destroy[:0]

	return scored
}

// Items returns the live debris in spawn order. The slice is owned by the
// pool and valid until the next tick.
func (p *Pool) Items() []Debris {
	return p.items
}

// Len returns the number of live debris.
func (p *Pool) Len() int {
	return len(p.items)
}

// Countdown returns the ticks remaining until the next spawn attempt.
func (p *Pool) Countdown() int {
	return p.countdown
}
