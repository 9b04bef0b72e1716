package systems

import (
	"github.com/pixelgrove/scurry/components"
	"github.com/pixelgrove/scurry/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups collects every uncollected collectible the player box
// overlaps. The collected flag flips exactly once; overlapping the same
// collectible across many frames scores a single pickup.
func UpdatePickups(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	session := GetOrCreateSession(e)

	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		collectible := components.Collectible.Get(entry)
		if collectible.Collected {
			return
		}
		obj := components.Object.Get(entry)
		if overlaps(playerObj.Object, obj.Object) {
			collectible.Collected = true
			session.Score += collectible.Value
		}
	})
}
