package factory

import (
	"github.com/pixelgrove/scurry/archetypes"
	"github.com/pixelgrove/scurry/assets"
	"github.com/pixelgrove/scurry/components"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCollectible(ecs *ecs.ECS, spawn assets.CollectibleSpawn) *donburi.Entry {
	collectible := archetypes.Collectible.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.Width, spawn.Height)
	obj.SetShape(resolv.NewRectangle(0, 0, spawn.Width, spawn.Height))
	obj.Data = collectible

	components.Object.SetValue(collectible, components.ObjectData{Object: obj})
	components.Collectible.SetValue(collectible, components.CollectibleData{
		Value:      spawn.Value,
		PulseScale: 1,
	})

	// Slow scale pulse, render-only.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(1.0, 1.3, 0.5, ease.InOutQuad),
		gween.New(1.3, 1.0, 0.5, ease.InOutQuad),
	)
	components.Tween.Set(collectible, tw)

	return collectible
}
