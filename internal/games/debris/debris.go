package debris

import (
	"math/rand"

	"github.com/voidwake/space-debris/internal/core"
)

// Status is the per-tick classification of a debris after advancing.
// It is transient: the pool acts on it immediately and nothing stores it.
type Status int

const (
	StatusNormal Status = iota
	StatusScorePoint
	StatusDestroy
)

// Debris is one obstacle drifting leftward across the grid at a fixed row.
// Speed is a tick-delay: the number of ticks between column steps, so a
// higher value means slower debris.
type Debris struct {
	Col   int
	Row   int
	Speed int
	Color core.Color
	delay int // Countdown to the next column step
}

// Spawn derives a debris deterministically from seed: row uniform in
// [2, gridH), speed uniform in [speedMin, speedMax), color uniform over
// the 13-color palette. The column starts at the right edge. Equal seeds
// yield identical debris.
func Spawn(seed int64, speedMin, speedMax, gridW, gridH int) Debris {
	rng := rand.New(rand.NewSource(seed))

	speed := speedMin + rng.Intn(speedMax-speedMin)
	return Debris{
		Col:   gridW - 1,
		Row:   2 + rng.Intn(gridH-2),
		Speed: speed,
		Color: core.DebrisPalette[rng.Intn(len(core.DebrisPalette))],
		delay: speed,
	}
}

// Advance moves the debris one tick and classifies the result.
//
// While the round is running: the delay counter decrements, and at zero
// the debris steps one column left and the counter reloads from Speed.
// Landing on the player's exact cell stops the player. Classification
// happens only on ticks where the column changed, so crossing the score
// column fires ScorePoint exactly once, and reaching column 0 fires
// Destroy on a later tick (the column moves one place per step).
//
// When the round is not running the debris skips motion entirely and
// reports Destroy, so a stopped round drains the whole pool.
func (d *Debris) Advance(pl *Player, scoreCol int) Status {
	if !pl.Running() {
		return StatusDestroy
	}

	moved := false
	d.delay--
	if d.delay <= 0 {
		d.Col--
		d.delay = d.Speed
		moved = true
	}

	if d.Col == pl.Col && d.Row == pl.Row {
		pl.Collide()
	}

	if moved {
		switch {
		case d.Col == scoreCol:
			return StatusScorePoint
		case d.Col <= 0:
			return StatusDestroy
		}
	}
	return StatusNormal
}
