package systems

import (
	"github.com/pixelgrove/scurry/components"
	cfg "github.com/pixelgrove/scurry/config"
	"github.com/pixelgrove/scurry/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer advances the player one step: direct-drive horizontal
// velocity, gravity, axis-separated collision, then the coyote/jump state
// machine. Jump evaluation happens after motion so it sees this step's
// actual ground contact.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	input := GetOrCreateInput(e)
	dt := clampDT(input.DT)
	axis := clampAxis(input.Axis)

	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	if input.Jump {
		player.JumpRequested = true
	}

	// No acceleration curve: the axis drives velocity directly, so direction
	// changes are instantaneous.
	physics.Velocity.X = axis * cfg.Player.MoveSpeed
	applyGravity(physics, dt)

	moveHorizontal(obj.Object, physics, dt)
	moveVertical(obj.Object, physics, dt)

	if physics.OnGround {
		player.CoyoteTimer = 0
	} else {
		player.CoyoteTimer += dt
	}

	if player.JumpRequested {
		tryJump(player, physics)
	}
	// Consumed every step whether or not a jump fired: a request issued
	// mid-air past the grace window is dropped, never queued.
	player.JumpRequested = false
}

// tryJump fires iff the player is grounded or still inside the coyote
// window (boundary inclusive). Firing poisons the timer past the window so
// the same grace period cannot produce a second jump before re-landing.
func tryJump(player *components.PlayerData, physics *components.PhysicsData) {
	if physics.OnGround || player.CoyoteTimer <= cfg.Player.CoyoteTime {
		physics.Velocity.Y = -cfg.Player.JumpSpeed
		physics.OnGround = false
		player.CoyoteTimer = cfg.Player.CoyoteTime + 1
	}
}

// respawnPlayer puts the player back at the level spawn with velocity and
// jump/ground state fully cleared, as if freshly created.
func respawnPlayer(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	obj.X = player.SpawnX
	obj.Y = player.SpawnY
	obj.Update()

	physics.Velocity = components.Vector{}
	physics.OnGround = false
	physics.HitWall = false
	player.CoyoteTimer = 0
	player.JumpRequested = false
}
