package debris

import (
	"github.com/voidwake/space-debris/internal/core"
)

// PlayerStatus is the lifecycle state of the player within a round.
type PlayerStatus int

const (
	PlayerRunning PlayerStatus = iota
	PlayerStopped
)

// Player is the marker the user steers up and down. The column is fixed
// after spawn; only the row moves, one cell per tick at most.
type Player struct {
	Col    int
	Row    int
	vy     int // -1 up, +1 down, 0 only before the first steer
	status PlayerStatus
	gridH  int
}

// NewPlayer places a player at its spawn pose: the vertical midpoint,
// one quarter of the grid width in, not yet moving.
func NewPlayer(gridW, gridH int) Player {
	return Player{
		Col:   gridW / 4,
		Row:   gridH / 2,
		gridH: gridH,
	}
}

// Advance moves the player one row in the direction of its velocity and
// returns the current status. Rows wrap: moving off the top re-enters at
// the bottom and vice versa. A stopped player does not move.
func (p *Player) Advance() PlayerStatus {
	if p.status != PlayerRunning {
		return p.status
	}
	switch {
	case p.vy < 0:
		p.Row = core.WrapDec(p.Row, p.gridH)
	case p.vy > 0:
		p.Row = core.WrapInc(p.Row, p.gridH)
	}
	return p.status
}

// Steer applies a directional input. Up and down set the velocity to -1
// and +1; once moving, the player can re-steer but never stop, so no
// input restores a zero velocity. Returns true if the velocity changed.
// Inputs are ignored while stopped, as are non-directional actions.
func (p *Player) Steer(a core.Action) bool {
	if p.status != PlayerRunning {
		return false
	}
	switch a {
	case core.ActionUp:
		changed := p.vy != -1
		p.vy = -1
		return changed
	case core.ActionDown:
		changed := p.vy != 1
		p.vy = 1
		return changed
	}
	return false
}

// Collide stops the player. Idempotent; a stopped player stays stopped
// until the round is reset.
func (p *Player) Collide() {
	p.status = PlayerStopped
}

// Halt zeroes the velocity. Called by the controller once on the
// game-over transition, never in response to input.
func (p *Player) Halt() {
	p.vy = 0
}

// Status returns the player's lifecycle state.
func (p *Player) Status() PlayerStatus {
	return p.status
}

// Running reports whether the player (and thus the round) is live.
func (p *Player) Running() bool {
	return p.status == PlayerRunning
}

// Velocity returns the current vertical velocity.
func (p *Player) Velocity() int {
	return p.vy
}
