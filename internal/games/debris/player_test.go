package debris

import (
	"testing"

	"github.com/voidwake/space-debris/internal/core"
)

func TestPlayerSpawnPose(t *testing.T) {
	p := NewPlayer(80, 25)

	if p.Col != 20 {
		t.Errorf("spawn column = %d, expected 20 (width/4)", p.Col)
	}
	if p.Row != 12 {
		t.Errorf("spawn row = %d, expected 12 (height/2)", p.Row)
	}
	if p.Velocity() != 0 {
		t.Errorf("spawn velocity = %d, expected 0", p.Velocity())
	}
	if !p.Running() {
		t.Error("player should spawn running")
	}
}

func TestPlayerAdvance(t *testing.T) {
	tests := []struct {
		name        string
		action      core.Action
		startRow    int
		expectedRow int
	}{
		{"no velocity stays put", core.ActionNone, 12, 12},
		{"up moves one row up", core.ActionUp, 12, 11},
		{"down moves one row down", core.ActionDown, 12, 13},
		{"up from row 0 wraps to bottom", core.ActionUp, 0, 24},
		{"down from last row wraps to top", core.ActionDown, 24, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(80, 25)
			p.Row = tc.startRow
			p.Steer(tc.action)

			if st := p.Advance(); st != PlayerRunning {
				t.Errorf("Advance() = %v, expected running", st)
			}
			if p.Row != tc.expectedRow {
				t.Errorf("row = %d, expected %d", p.Row, tc.expectedRow)
			}
		})
	}
}

func TestPlayerRowStaysInRange(t *testing.T) {
	p := NewPlayer(80, 25)
	p.Steer(core.ActionUp)

	for i := 0; i < 100; i++ {
		p.Advance()
		if p.Row < 0 || p.Row >= 25 {
			t.Fatalf("row left the grid: %d", p.Row)
		}
	}

	p.Steer(core.ActionDown)
	for i := 0; i < 100; i++ {
		p.Advance()
		if p.Row < 0 || p.Row >= 25 {
			t.Fatalf("row left the grid: %d", p.Row)
		}
	}
}

func TestPlayerCannotStopOnceMoving(t *testing.T) {
	p := NewPlayer(80, 25)

	if !p.Steer(core.ActionUp) {
		t.Error("first steer should change velocity")
	}
	if p.Velocity() != -1 {
		t.Errorf("velocity = %d, expected -1", p.Velocity())
	}

	// Same direction again: no change, still moving.
	if p.Steer(core.ActionUp) {
		t.Error("repeated steer in the same direction should not report a change")
	}

	// Re-steering is allowed but never back to zero.
	if !p.Steer(core.ActionDown) {
		t.Error("opposite steer should change velocity")
	}
	if p.Velocity() != 1 {
		t.Errorf("velocity = %d, expected 1", p.Velocity())
	}

	// Non-directional actions never touch velocity.
	for _, a := range []core.Action{core.ActionNone, core.ActionPause, core.ActionRestart, core.ActionSelectEasy} {
		p.Steer(a)
		if p.Velocity() == 0 {
			t.Fatalf("action %v returned velocity to zero", a)
		}
	}
}

func TestPlayerCollide(t *testing.T) {
	p := NewPlayer(80, 25)
	p.Steer(core.ActionDown)

	p.Collide()
	if p.Running() {
		t.Error("player should be stopped after collision")
	}

	// Idempotent.
	p.Collide()
	if p.Status() != PlayerStopped {
		t.Error("second Collide() should leave player stopped")
	}

	// A stopped player ignores input and motion.
	row := p.Row
	if p.Steer(core.ActionUp) {
		t.Error("stopped player should ignore steering")
	}
	if st := p.Advance(); st != PlayerStopped {
		t.Errorf("Advance() = %v, expected stopped", st)
	}
	if p.Row != row {
		t.Error("stopped player should not move")
	}
}
