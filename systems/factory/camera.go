package factory

import (
	"github.com/pixelgrove/scurry/archetypes"
	"github.com/pixelgrove/scurry/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
