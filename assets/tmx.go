package assets

import (
	"fmt"

	"github.com/lafriks/go-tiled"

	"github.com/pixelgrove/scurry/config"
)

// Object group names recognized in Tiled maps.
const (
	tmxGroupSolids       = "Solids"
	tmxGroupPlayerSpawn  = "PlayerSpawn"
	tmxGroupEnemySpawns  = "EnemySpawns"
	tmxGroupCollectibles = "Collectibles"
	tmxGroupGoal         = "Goal"
)

// loadTMXLevel loads a Tiled map as a level. Geometry and spawns come from
// object groups, so the map needs no tilesets or tile layers; everything is
// converted into the same Level aggregate the grid parser produces.
func loadTMXLevel(path string) (Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(levelFS))
	if err != nil {
		return Level{}, fmt.Errorf("load tiled map %s: %w", path, err)
	}

	level := Level{
		Name:        path,
		PlayerSpawn: defaultPlayerSpawn(),
		Goal:        defaultGoal(),
		Width:       levelMap.Width * levelMap.TileWidth,
		Height:      levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case tmxGroupSolids:
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, SolidTile{
					X: o.X, Y: o.Y, Width: o.Width, Height: o.Height,
				})
			}
		case tmxGroupPlayerSpawn:
			for _, o := range og.Objects {
				level.PlayerSpawn = PlayerSpawn{X: o.X, Y: o.Y}
			}
		case tmxGroupEnemySpawns:
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{X: o.X, Y: o.Y})
			}
		case tmxGroupCollectibles:
			for _, o := range og.Objects {
				value := o.Properties.GetInt("value")
				if value == 0 {
					value = config.Collectible.Value
				}
				level.Collectibles = append(level.Collectibles, CollectibleSpawn{
					X: o.X, Y: o.Y, Width: o.Width, Height: o.Height, Value: value,
				})
			}
		case tmxGroupGoal:
			for _, o := range og.Objects {
				level.Goal = GoalRect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
			}
		}
	}

	return level, nil
}
