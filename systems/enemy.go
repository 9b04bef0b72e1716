package systems

import (
	"github.com/pixelgrove/scurry/components"
	"github.com/pixelgrove/scurry/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies advances every patrolling enemy. Enemies collide only
// against static solids, so their relative update order does not matter.
func UpdateEnemies(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	dt := clampDT(input.DT)

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		applyGravity(physics, dt)

		// The reversal reads this step's collision outcome: detect first,
		// then flip.
		if moveHorizontal(obj.Object, physics, dt) {
			physics.Velocity.X = -physics.Velocity.X
		}

		moveVertical(obj.Object, physics, dt)
	})
}
