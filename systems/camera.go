package systems

import (
	"math"

	"github.com/pixelgrove/scurry/components"
	"github.com/pixelgrove/scurry/config"
	"github.com/pixelgrove/scurry/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player with smoothing and a horizontal
// look-ahead, clamped to the level bounds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when the player is moving - freeze offset when idle
	if math.Abs(physics.Velocity.X) > config.Camera.SpeedThreshold {
		direction := 1.0
		if physics.Velocity.X < 0 {
			direction = -1.0
		}
		targetLookAhead := direction * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := playerObj.X + playerObj.W/2 + camera.LookAheadX
	targetY := playerObj.Y + playerObj.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	// Keep the view inside the level.
	minCameraX := screenWidth / 2
	maxCameraX := levelWidth - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelHeight - screenHeight/2

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera immediately, used right after level load so
// the view does not pan in from the origin.
func SnapCamera(e *ecs.ECS, x, y float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = x
	camera.Position.Y = y
}
