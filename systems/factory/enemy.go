package factory

import (
	"github.com/pixelgrove/scurry/archetypes"
	"github.com/pixelgrove/scurry/components"
	cfg "github.com/pixelgrove/scurry/config"
	"github.com/pixelgrove/scurry/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Enemy.Width, cfg.Enemy.Height))
	obj.Data = enemy

	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Enemy.SetValue(enemy, components.EnemyData{
		PatrolSpeed: cfg.Enemy.PatrolSpeed,
	})
	// Patrol starts pointing right.
	components.Physics.SetValue(enemy, components.PhysicsData{
		Velocity: components.Vector{X: cfg.Enemy.PatrolSpeed},
	})

	addToSpace(ecs, obj)

	return enemy
}
