package systems

import (
	"github.com/pixelgrove/scurry/components"
	"github.com/pixelgrove/scurry/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemyContact checks the advanced player box against every enemy.
// First contact wins: one death per frame, then the player respawns at the
// level spawn and remaining enemies are not checked.
func UpdateEnemyContact(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	hit := false
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if hit {
			return
		}
		enemyObj := components.Object.Get(entry)
		if overlaps(playerObj.Object, enemyObj.Object) {
			hit = true
		}
	})

	if hit {
		session := GetOrCreateSession(e)
		session.Deaths++
		respawnPlayer(playerEntry)
	}
}
