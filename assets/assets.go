package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pixelgrove/scurry/config"
)

//go:embed all:levels
var levelFS embed.FS

// ErrLevelNotFound marks a level source path that does not exist. Load-time
// failures are fatal to the load; no partial level is ever returned.
var ErrLevelNotFound = errors.New("level not found")

// FormatError reports a structurally invalid level grid.
type FormatError struct {
	Name   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("level %q: %s", e.Name, e.Reason)
}

// SolidTile is one immutable block of static world geometry.
type SolidTile struct {
	X, Y, Width, Height float64
}

type PlayerSpawn struct {
	X, Y float64
}

type EnemySpawn struct {
	X, Y float64
}

type CollectibleSpawn struct {
	X, Y, Width, Height float64
	Value               int
}

type GoalRect struct {
	X, Y, Width, Height float64
}

// Level is the parsed, collidable form of one level source. It is built once
// per (re)load and read-only during simulation.
type Level struct {
	Name         string
	Solids       []SolidTile
	EnemySpawns  []EnemySpawn
	Collectibles []CollectibleSpawn
	Goal         GoalRect
	PlayerSpawn  PlayerSpawn
	Width        int // pixels
	Height       int // pixels
}

// Grid characters. Anything else is empty space.
const (
	cellSolid       = '#'
	cellPlayer      = 'P'
	cellEnemy       = 'E'
	cellCollectible = 'C'
	cellGoal        = 'G'
)

// ParseLevel turns a character-grid level description into a Level.
// Rows are lines, columns are characters; lines may have ragged length.
// An empty grid is rejected with a *FormatError.
func ParseLevel(name, text string) (Level, error) {
	lines := splitGridLines(text)
	if len(lines) == 0 {
		return Level{}, &FormatError{Name: name, Reason: "empty grid"}
	}

	const tile = float64(config.TileSize)

	level := Level{
		Name:        name,
		PlayerSpawn: defaultPlayerSpawn(),
		Goal:        defaultGoal(),
		Height:      len(lines) * config.TileSize,
	}

	maxLen := 0
	for row, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
		for col, ch := range line {
			x := float64(col) * tile
			y := float64(row) * tile
			switch ch {
			case cellSolid:
				level.Solids = append(level.Solids, SolidTile{X: x, Y: y, Width: tile, Height: tile})
			case cellPlayer:
				// Spawn one tile above the marker so the two-tile-tall
				// player box rests on the tile below.
				level.PlayerSpawn = PlayerSpawn{X: x, Y: y - tile}
			case cellEnemy:
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{X: x, Y: y})
			case cellCollectible:
				level.Collectibles = append(level.Collectibles, CollectibleSpawn{
					X:      x + config.Collectible.Inset,
					Y:      y + config.Collectible.Inset,
					Width:  config.Collectible.Size,
					Height: config.Collectible.Size,
					Value:  config.Collectible.Value,
				})
			case cellGoal:
				// Same vertical convention as the player spawn.
				level.Goal = GoalRect{X: x, Y: y - tile, Width: tile, Height: tile * 2}
			}
		}
	}

	level.Width = maxLen * config.TileSize
	return level, nil
}

// LoadLevelFile reads and parses a grid level from an arbitrary disk path.
// A missing file yields ErrLevelNotFound.
func LoadLevelFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, path)
		}
		return Level{}, err
	}
	return ParseLevel(filepath.Base(path), string(data))
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevels loads every embedded level, grid (.txt) and Tiled map (.tmx)
// alike, in directory order.
func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join("levels", entry.Name())
		switch filepath.Ext(entry.Name()) {
		case ".txt":
			data, err := levelFS.ReadFile(path)
			if err != nil {
				panic(fmt.Sprintf("failed to read level %s: %v", path, err))
			}
			level, err := ParseLevel(entry.Name(), string(data))
			if err != nil {
				panic(err)
			}
			levels = append(levels, level)
		case ".tmx":
			level, err := loadTMXLevel(path)
			if err != nil {
				panic(err)
			}
			levels = append(levels, level)
		}
	}

	if len(levels) == 0 {
		panic("no level files found in assets/levels")
	}
	return levels
}

func defaultPlayerSpawn() PlayerSpawn {
	// One tile in from the top-left corner.
	return PlayerSpawn{X: config.TileSize, Y: config.TileSize}
}

func defaultGoal() GoalRect {
	return GoalRect{X: 0, Y: 0, Width: config.TileSize, Height: config.TileSize * 2}
}

// splitGridLines splits the level text into rows, tolerating CRLF endings and
// a trailing newline. Empty input produces zero rows.
func splitGridLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	}
	return lines
}
