package factory

import (
	"github.com/pixelgrove/scurry/archetypes"
	"github.com/pixelgrove/scurry/assets"
	"github.com/pixelgrove/scurry/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelAtIndex(ecs, 0)
}

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader()
	levels := loader.MustLoadLevels()

	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	levelData := &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: &levels[levelIndex],
	}

	components.Level.Set(level, levelData)

	return level
}
