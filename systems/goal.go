package systems

import (
	"github.com/pixelgrove/scurry/components"
	"github.com/pixelgrove/scurry/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGoal marks the level complete the first frame the player box
// overlaps the goal box. Later frames never reach here: the gameplay gate
// freezes the whole chain until an external reset.
func UpdateGoal(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	goalEntry, ok := tags.Goal.First(e.World)
	if !ok {
		return
	}

	playerObj := components.Object.Get(playerEntry)
	goalObj := components.Object.Get(goalEntry)

	if !overlaps(playerObj.Object, goalObj.Object) {
		return
	}

	session := GetOrCreateSession(e)
	session.Complete = true

	if levelEntry, ok := components.Level.First(e.World); ok {
		levelData := components.Level.Get(levelEntry)
		SaveLevelResult(levelData.LevelIndex, session.Score, session.Deaths)
	}
}
