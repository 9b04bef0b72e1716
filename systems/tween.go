package systems

import (
	"github.com/pixelgrove/scurry/components"
	"github.com/pixelgrove/scurry/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances the collectible pulse sequences. Purely cosmetic,
// so it keeps running after level completion.
func UpdateTweens(e *ecs.ECS) {
	input := GetOrCreateInput(e)
	dt := float32(clampDT(input.DT))

	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		scale, _, done := tw.Update(dt)
		if done {
			tw.Reset()
		}
		components.Collectible.Get(entry).PulseScale = float64(scale)
	})
}
