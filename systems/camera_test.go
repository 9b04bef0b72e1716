package systems

import (
	"math"
	"testing"

	"github.com/pixelgrove/scurry/assets"
	"github.com/pixelgrove/scurry/components"
	cfg "github.com/pixelgrove/scurry/config"
	"github.com/pixelgrove/scurry/systems/factory"
)

func TestCameraClampsToLevelEdge(t *testing.T) {
	e := newWorld(t, gridOpen)
	factory.CreateCamera(e)
	levelEntry := e.World.Entry(e.World.Create(components.Level))
	components.Level.Set(levelEntry, &components.LevelData{
		CurrentLevel: &assets.Level{Width: 1920, Height: 1080},
	})

	// The player sits near the top-left corner, so the smoothed target is
	// the clamped view center, not the player itself.
	for i := 0; i < 400; i++ {
		UpdateCamera(e)
	}

	wantX := float64(cfg.C.Width) / 2
	wantY := float64(cfg.C.Height) / 2

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatal("no camera in world")
	}
	camera := components.Camera.Get(cameraEntry)
	if math.Abs(camera.Position.X-wantX) > 1 {
		t.Errorf("Position.X = %v, want near %v", camera.Position.X, wantX)
	}
	if math.Abs(camera.Position.Y-wantY) > 1 {
		t.Errorf("Position.Y = %v, want near %v", camera.Position.Y, wantY)
	}
}

func TestSnapCamera(t *testing.T) {
	e := newWorld(t, gridOpen)
	factory.CreateCamera(e)

	SnapCamera(e, 123, 456)

	entry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatal("no camera in world")
	}
	camera := components.Camera.Get(entry)
	if camera.Position.X != 123 || camera.Position.Y != 456 {
		t.Errorf("Position = %+v, want (123, 456)", camera.Position)
	}
}
