package factory

import (
	"github.com/pixelgrove/scurry/archetypes"
	"github.com/pixelgrove/scurry/assets"
	"github.com/pixelgrove/scurry/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateGoal(ecs *ecs.ECS, rect assets.GoalRect) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	obj := resolv.NewObject(rect.X, rect.Y, rect.Width, rect.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.Width, rect.Height))
	obj.Data = goal

	components.Object.SetValue(goal, components.ObjectData{Object: obj})

	return goal
}
