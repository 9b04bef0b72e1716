package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const borderGrid = "#####\n#P..#\n#..E#\n#####"

func TestParseLevelBorderGrid(t *testing.T) {
	level, err := ParseLevel("border", borderGrid)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}

	if got, want := level.Width, 5*32; got != want {
		t.Errorf("Width = %d, want %d", got, want)
	}
	if got, want := level.Height, 4*32; got != want {
		t.Errorf("Height = %d, want %d", got, want)
	}

	// P sits at (1,1); the spawn is anchored one tile above the marker.
	if level.PlayerSpawn.X != 32 || level.PlayerSpawn.Y != 0 {
		t.Errorf("PlayerSpawn = (%v, %v), want (32, 0)", level.PlayerSpawn.X, level.PlayerSpawn.Y)
	}

	if len(level.EnemySpawns) != 1 {
		t.Fatalf("EnemySpawns = %d, want 1", len(level.EnemySpawns))
	}
	if e := level.EnemySpawns[0]; e.X != 96 || e.Y != 64 {
		t.Errorf("EnemySpawns[0] = (%v, %v), want (96, 64)", e.X, e.Y)
	}

	// Four border walls: 5 + 5 across, 2 + 2 down the open sides.
	if got, want := len(level.Solids), 14; got != want {
		t.Errorf("Solids = %d, want %d", got, want)
	}
	for _, s := range level.Solids {
		if s.Width != 32 || s.Height != 32 {
			t.Errorf("solid %+v is not one tile", s)
		}
	}
}

func TestParseLevelDefaults(t *testing.T) {
	level, err := ParseLevel("bare", "#####\n#...#\n#####")
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if level.PlayerSpawn != defaultPlayerSpawn() {
		t.Errorf("PlayerSpawn = %+v, want default %+v", level.PlayerSpawn, defaultPlayerSpawn())
	}
	if level.Goal != defaultGoal() {
		t.Errorf("Goal = %+v, want default %+v", level.Goal, defaultGoal())
	}
}

func TestParseLevelGoalAnchor(t *testing.T) {
	level, err := ParseLevel("goal", "....\n..G.\n####")
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	want := GoalRect{X: 64, Y: 0, Width: 32, Height: 64}
	if level.Goal != want {
		t.Errorf("Goal = %+v, want %+v", level.Goal, want)
	}
}

func TestParseLevelCollectibleInset(t *testing.T) {
	level, err := ParseLevel("pickup", "C")
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if len(level.Collectibles) != 1 {
		t.Fatalf("Collectibles = %d, want 1", len(level.Collectibles))
	}
	c := level.Collectibles[0]
	if c.X != 8 || c.Y != 8 || c.Width != 16 || c.Height != 16 {
		t.Errorf("Collectibles[0] = %+v, want 16x16 box inset by 8", c)
	}
	if c.Value != 1 {
		t.Errorf("Collectibles[0].Value = %d, want 1", c.Value)
	}
}

func TestParseLevelRaggedLines(t *testing.T) {
	level, err := ParseLevel("ragged", "##\n#######\n#")
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if got, want := level.Width, 7*32; got != want {
		t.Errorf("Width = %d, want %d", got, want)
	}
	if got, want := level.Height, 3*32; got != want {
		t.Errorf("Height = %d, want %d", got, want)
	}
	if got, want := len(level.Solids), 10; got != want {
		t.Errorf("Solids = %d, want %d", got, want)
	}
}

func TestParseLevelCRLF(t *testing.T) {
	level, err := ParseLevel("crlf", "###\r\n#P#\r\n###\r\n")
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if got, want := level.Height, 3*32; got != want {
		t.Errorf("Height = %d, want %d", got, want)
	}
	if level.PlayerSpawn.X != 32 || level.PlayerSpawn.Y != 0 {
		t.Errorf("PlayerSpawn = %+v, want (32, 0)", level.PlayerSpawn)
	}
}

func TestParseLevelEmpty(t *testing.T) {
	_, err := ParseLevel("empty", "")
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Errorf("ParseLevel(%q) error = %v, want *FormatError", "", err)
	}
}

func TestParseLevelLoneNewline(t *testing.T) {
	// A lone newline is one empty row, not an empty grid: it parses into a
	// degenerate zero-width, one-row level.
	level, err := ParseLevel("blank", "\n")
	if err != nil {
		t.Fatalf("ParseLevel(%q) error = %v, want nil", "\n", err)
	}
	if level.Width != 0 || level.Height != 32 {
		t.Errorf("size = %dx%d, want 0x32", level.Width, level.Height)
	}
	if len(level.Solids) != 0 {
		t.Errorf("Solids = %d, want 0", len(level.Solids))
	}
}

func TestLoadLevelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.txt")
	if err := os.WriteFile(path, []byte("###\n#P#\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	level, err := LoadLevelFile(path)
	if err != nil {
		t.Fatalf("LoadLevelFile: %v", err)
	}
	if level.Name != "tiny.txt" {
		t.Errorf("Name = %q, want %q", level.Name, "tiny.txt")
	}
	if got, want := len(level.Solids), 8; got != want {
		t.Errorf("Solids = %d, want %d", got, want)
	}
}

func TestLoadLevelFileMissing(t *testing.T) {
	_, err := LoadLevelFile(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("error = %v, want ErrLevelNotFound", err)
	}
}

func TestMustLoadLevels(t *testing.T) {
	levels := NewLevelLoader().MustLoadLevels()
	if len(levels) != 2 {
		t.Fatalf("levels = %d, want 2", len(levels))
	}

	grid := levels[0]
	if grid.Width != 60*32 || grid.Height != 17*32 {
		t.Errorf("level1 size = %dx%d, want %dx%d", grid.Width, grid.Height, 60*32, 17*32)
	}
	if len(grid.EnemySpawns) == 0 || len(grid.Collectibles) == 0 {
		t.Errorf("level1 missing spawns: %d enemies, %d collectibles",
			len(grid.EnemySpawns), len(grid.Collectibles))
	}

	tmx := levels[1]
	if tmx.Width != 40*32 || tmx.Height != 17*32 {
		t.Errorf("level2 size = %dx%d, want %dx%d", tmx.Width, tmx.Height, 40*32, 17*32)
	}
	if got := tmx.PlayerSpawn; got.X != 64 || got.Y != 448 {
		t.Errorf("level2 PlayerSpawn = %+v, want (64, 448)", got)
	}
	if got, want := len(tmx.EnemySpawns), 2; got != want {
		t.Errorf("level2 EnemySpawns = %d, want %d", got, want)
	}
	if got, want := len(tmx.Collectibles), 5; got != want {
		t.Fatalf("level2 Collectibles = %d, want %d", got, want)
	}
	// The last pickup carries an explicit value property.
	if got, want := tmx.Collectibles[4].Value, 5; got != want {
		t.Errorf("level2 Collectibles[4].Value = %d, want %d", got, want)
	}
	want := GoalRect{X: 1184, Y: 448, Width: 32, Height: 64}
	if tmx.Goal != want {
		t.Errorf("level2 Goal = %+v, want %+v", tmx.Goal, want)
	}
}
