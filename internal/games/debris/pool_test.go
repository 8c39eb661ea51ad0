package debris

import (
	"testing"

	"github.com/voidwake/space-debris/internal/config"
)

func testPool(capacity int) *Pool {
	cfg := config.Default()
	cfg.Pool.Capacity = capacity
	return NewPool(cfg)
}

func TestPoolSpawnCadence(t *testing.T) {
	p := testPool(40)
	params := config.DifficultyParams{SpawnInterval: 5, SpeedMin: 4, SpeedMax: 9}
	p.Arm(params.SpawnInterval)

	seed := int64(0)
	for tick := 1; tick <= 15; tick++ {
		spawned := p.TickSpawn(seed, params)
		if spawned {
			seed++
		}
		expectSpawn := tick%5 == 0
		if spawned != expectSpawn {
			t.Fatalf("tick %d: spawned = %v, expected %v", tick, spawned, expectSpawn)
		}
	}

	if p.Len() != 3 {
		t.Errorf("pool has %d debris after 15 ticks at interval 5, expected 3", p.Len())
	}
}

func TestPoolCountdownReload(t *testing.T) {
	p := testPool(40)
	params := config.DifficultyParams{SpawnInterval: 3, SpeedMin: 1, SpeedMax: 4}
	p.Arm(params.SpawnInterval)

	for i := 0; i < 3; i++ {
		p.TickSpawn(int64(i), params)
	}
	if p.Countdown() != 3 {
		t.Errorf("countdown = %d after spawn, expected reload to 3", p.Countdown())
	}
}

func TestPoolCapacityDropsSilently(t *testing.T) {
	p := testPool(3)
	params := config.DifficultyParams{SpawnInterval: 1, SpeedMin: 4, SpeedMax: 9}
	p.Arm(params.SpawnInterval)

	for i := 0; i < 10; i++ {
		if !p.TickSpawn(int64(i), params) {
			t.Fatalf("tick %d: interval 1 should spawn every tick", i)
		}
	}

	if p.Len() != 3 {
		t.Errorf("pool has %d debris, expected capacity cap of 3", p.Len())
	}
}

func TestPoolRemovalKeepsOrder(t *testing.T) {
	p := testPool(40)
	pl := runningPlayer()

	// Two debris one step from destruction, interleaved with survivors.
	p.items = []Debris{
		{Col: 5, Row: 3, Speed: 1, delay: 1},
		{Col: 1, Row: 4, Speed: 1, delay: 1},
		{Col: 9, Row: 5, Speed: 1, delay: 1},
		{Col: 1, Row: 6, Speed: 1, delay: 1},
	}

	p.TickAll(&pl)

	if p.Len() != 2 {
		t.Fatalf("pool has %d debris after removal pass, expected 2", p.Len())
	}
	if p.items[0].Col != 4 || p.items[0].Row != 3 {
		t.Errorf("first survivor = %+v, expected the column-5 debris", p.items[0])
	}
	if p.items[1].Col != 8 || p.items[1].Row != 5 {
		t.Errorf("second survivor = %+v, expected the column-9 debris", p.items[1])
	}
}

func TestPoolTallyStopsAtCollision(t *testing.T) {
	p := testPool(40)
	pl := runningPlayer() // (col 20, row 12)

	p.items = []Debris{
		// Scores this tick, before the collision.
		{Col: 19, Row: 5, Speed: 1, delay: 1},
		// Moves onto the player's cell: collision.
		{Col: pl.Col + 1, Row: pl.Row, Speed: 1, delay: 1},
		// Would score, but the round is already stopped: drains instead.
		{Col: 19, Row: 7, Speed: 1, delay: 1},
	}

	scored := p.TickAll(&pl)

	if scored != 1 {
		t.Errorf("scored = %d, expected 1 (only the pre-collision debris)", scored)
	}
	if pl.Running() {
		t.Error("player should be stopped")
	}
	if p.Len() != 2 {
		t.Errorf("pool has %d debris, expected 2 (post-collision debris drained)", p.Len())
	}
}

func TestPoolDrainsWhenRoundStopped(t *testing.T) {
	p := testPool(40)
	pl := runningPlayer()
	pl.Collide()

	p.items = []Debris{
		{Col: 50, Row: 3, Speed: 2, delay: 2},
		{Col: 40, Row: 4, Speed: 3, delay: 3},
		{Col: 30, Row: 5, Speed: 4, delay: 4},
	}

	if scored := p.TickAll(&pl); scored != 0 {
		t.Errorf("scored = %d in a stopped round, expected 0", scored)
	}
	if p.Len() != 0 {
		t.Errorf("pool has %d debris after a stopped-round pass, expected 0", p.Len())
	}
}
