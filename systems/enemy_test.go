package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelgrove/scurry/components"
	cfg "github.com/pixelgrove/scurry/config"
	"github.com/pixelgrove/scurry/tags"
)

// A single patrol pen: the enemy bounces between the side walls at x=32
// and x=160.
const gridPatrol = "######\n" +
	"#....#\n" +
	"#.E..#\n" +
	"######"

func enemyParts(t *testing.T, e *ecs.ECS) (*components.PhysicsData, *components.ObjectData) {
	t.Helper()
	entry, ok := tags.Enemy.First(e.World)
	if !ok {
		t.Fatal("no enemy in world")
	}
	return components.Physics.Get(entry), components.Object.Get(entry)
}

func stepEnemies(e *ecs.ECS, dt float64) {
	input := GetOrCreateInput(e)
	input.DT = dt
	UpdateEnemies(e)
}

func TestEnemyPatrolReversal(t *testing.T) {
	e := newWorld(t, gridPatrol)
	physics, obj := enemyParts(t, e)

	if physics.Velocity.X != cfg.Enemy.PatrolSpeed {
		t.Fatalf("initial Velocity.X = %v, want %v", physics.Velocity.X, cfg.Enemy.PatrolSpeed)
	}

	// Four free steps toward the right wall, no contact yet.
	for i := 0; i < 4; i++ {
		stepEnemies(e, 0.1)
		if physics.Velocity.X != cfg.Enemy.PatrolSpeed {
			t.Fatalf("step %d: Velocity.X = %v, want unchanged %v", i+1, physics.Velocity.X, cfg.Enemy.PatrolSpeed)
		}
	}

	// Fifth step hits the wall: flush clamp, sign flip, same magnitude.
	stepEnemies(e, 0.1)
	if physics.Velocity.X != -cfg.Enemy.PatrolSpeed {
		t.Errorf("Velocity.X after wall hit = %v, want %v", physics.Velocity.X, -cfg.Enemy.PatrolSpeed)
	}
	if obj.X != 128 {
		t.Errorf("X after wall hit = %v, want 128 (flush against the wall)", obj.X)
	}
	if !physics.HitWall {
		t.Error("HitWall = false, want true on the reversing step")
	}

	// Patrols back and reverses off the left wall.
	for i := 0; i < 7; i++ {
		stepEnemies(e, 0.1)
	}
	if physics.Velocity.X != cfg.Enemy.PatrolSpeed {
		t.Errorf("Velocity.X after left wall = %v, want %v", physics.Velocity.X, cfg.Enemy.PatrolSpeed)
	}
	if obj.X != 32 {
		t.Errorf("X after left wall = %v, want 32", obj.X)
	}
}

func TestEnemyStaysGrounded(t *testing.T) {
	e := newWorld(t, gridPatrol)
	physics, obj := enemyParts(t, e)

	for i := 0; i < 20; i++ {
		stepEnemies(e, 0.1)
	}
	if obj.Y != 64 {
		t.Errorf("Y = %v, want 64 (on the floor)", obj.Y)
	}
	if !physics.OnGround {
		t.Error("OnGround = false, want true")
	}
}

func TestEnemiesIndependent(t *testing.T) {
	// Two pens separated by a full wall column.
	const grid = "###########\n" +
		"#....#....#\n" +
		"#.E..#..E.#\n" +
		"###########"

	e := newWorld(t, grid)
	var speeds []float64
	for i := 0; i < 30; i++ {
		stepEnemies(e, 0.1)
	}
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		speeds = append(speeds, components.Physics.Get(entry).Velocity.X)
	})
	if len(speeds) != 2 {
		t.Fatalf("enemies = %d, want 2", len(speeds))
	}
	for i, v := range speeds {
		if v != cfg.Enemy.PatrolSpeed && v != -cfg.Enemy.PatrolSpeed {
			t.Errorf("enemy %d Velocity.X = %v, want magnitude %v", i, v, cfg.Enemy.PatrolSpeed)
		}
	}
}
