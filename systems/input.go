package systems

import (
	"os"

	cfg "github.com/pixelgrove/scurry/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard into the Input singleton.
// Must run before the simulation systems.
func UpdateInput(e *ecs.ECS) {
	input := GetOrCreateInput(e)

	// Fixed step: ebiten ticks at a constant TPS.
	input.DT = 1.0 / float64(cfg.C.TPS)

	axis := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		axis -= 1.0
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		axis += 1.0
	}
	input.Axis = axis

	input.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	input.Reset = inpututil.IsKeyJustPressed(ebiten.KeyR)

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		os.Exit(0)
	}
}
