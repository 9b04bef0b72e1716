package systems

import (
	"fmt"

	"github.com/pixelgrove/scurry/components"
	cfg "github.com/pixelgrove/scurry/config"
	"github.com/pixelgrove/scurry/fonts"
	"github.com/pixelgrove/scurry/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cameraOrigin returns the world coordinate of the screen's top-left corner.
func cameraOrigin(e *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return camera.Position.X - float64(width)/2, camera.Position.Y - float64(height)/2
}

// DrawLevel fills the background and draws the solid tiles.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.World.BackgroundColor)

	camX, camY := cameraOrigin(e, screen)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)

		// Viewport culling
		if obj.X+obj.W < camX || obj.X > camX+width ||
			obj.Y+obj.H < camY || obj.Y > camY+height {
			return
		}

		vector.DrawFilledRect(screen,
			float32(obj.X-camX), float32(obj.Y-camY),
			float32(obj.W), float32(obj.H),
			cfg.World.GroundColor, false)
	})
}

// DrawEntities draws the goal, uncollected collectibles, enemies and the
// player, in that order.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOrigin(e, screen)

	if goalEntry, ok := tags.Goal.First(e.World); ok {
		obj := components.Object.Get(goalEntry)
		vector.DrawFilledRect(screen,
			float32(obj.X-camX), float32(obj.Y-camY),
			float32(obj.W), float32(obj.H),
			cfg.World.GoalColor, false)
	}

	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		collectible := components.Collectible.Get(entry)
		if collectible.Collected {
			return
		}
		obj := components.Object.Get(entry)
		scale := collectible.PulseScale
		if scale == 0 {
			scale = 1
		}
		radius := obj.W / 2 * scale
		vector.DrawFilledCircle(screen,
			float32(obj.X+obj.W/2-camX), float32(obj.Y+obj.H/2-camY),
			float32(radius),
			cfg.World.CollectibleColor, true)
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.DrawFilledRect(screen,
			float32(obj.X-camX), float32(obj.Y-camY),
			float32(obj.W), float32(obj.H),
			cfg.World.EnemyColor, false)
	})

	if playerEntry, ok := tags.Player.First(e.World); ok {
		obj := components.Object.Get(playerEntry)
		vector.DrawFilledRect(screen,
			float32(obj.X-camX), float32(obj.Y-camY),
			float32(obj.W), float32(obj.H),
			cfg.World.PlayerColor, false)
	}
}

// DrawHUD renders the score and death counters in the top-left corner.
// It reads the same snapshot surface the tests consume.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	snap := TakeSnapshot(e)
	line := fmt.Sprintf("Score: %d  Deaths: %d", snap.Score, snap.Deaths)
	text.Draw(screen, line, fonts.HUD.Get(), int(cfg.HUD.Margin), int(cfg.HUD.Margin)+20, cfg.HUD.TextColor)
}

// DrawVictory renders the level complete overlay with the restart hint.
func DrawVictory(e *ecs.ECS, screen *ebiten.Image) {
	if !IsLevelComplete(e) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Victory.OverlayColor, false)

	title := cfg.Victory.Title
	titleWidth := len(title) * 20 // Approximate width for 32pt font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, fonts.Title.Get(), titleX, int(cfg.Victory.TitleY), cfg.Victory.TitleColor)

	hint := cfg.Victory.ContinueHint
	hintWidth := len(hint) * 12
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, fonts.HUD.Get(), hintX, int(cfg.Victory.HintY), cfg.Victory.HintColor)
}
