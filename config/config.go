package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// TileSize is the side length of one level grid cell in pixels. It is the
// atomic unit of solid geometry: every wall tile is TileSize x TileSize.
const TileSize = 32

// PhysicsConfig contains physics values shared by every kinematic body
type PhysicsConfig struct {
	Gravity float64 // downward acceleration, px/s^2

	// MinDT is the floor applied to the frame delta. A zero or negative dt
	// would turn integration into a silent no-op, so it is clamped instead.
	MinDT float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 // horizontal speed at full input axis, px/s
	JumpSpeed float64 // upward launch speed, px/s

	// CoyoteTime is the grace window in seconds after walking off a ledge
	// during which a jump input still fires.
	CoyoteTime float64

	// Dimensions
	Width  float64
	Height float64
}

// EnemyConfig contains enemy patrol configuration
type EnemyConfig struct {
	PatrolSpeed float64 // horizontal patrol speed, px/s; sign flips on wall contact

	// Dimensions
	Width  float64
	Height float64
}

// CollectibleConfig contains collectible placement and scoring values
type CollectibleConfig struct {
	Size  float64 // hitbox side length
	Inset float64 // offset from the tile corner so the box is centered
	Value int     // score awarded on pickup
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// VictoryConfig contains the level complete overlay configuration
type VictoryConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	HintY        float64
	Title        string
	ContinueHint string
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64 // how fast the camera closes on the player (0.0-1.0)
	LookAheadDistanceX float64 // max horizontal look-ahead offset in pixels
	LookAheadSmoothing float64 // how fast the look-ahead offset changes (0.0-1.0)
	SpeedThreshold     float64 // minimum speed to update look-ahead
}

// WorldConfig contains level rendering colors
type WorldConfig struct {
	BackgroundColor  color.RGBA
	GroundColor      color.RGBA
	PlayerColor      color.RGBA
	EnemyColor       color.RGBA
	CollectibleColor color.RGBA
	GoalColor        color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Collectible CollectibleConfig
var HUD HUDConfig
var Menu MenuConfig
var Victory VictoryConfig
var Camera CameraConfig
var World WorldConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Amber        = color.RGBA{R: 255, G: 196, B: 40, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity: 1800,
		MinDT:   0.0001,
	}

	Player = PlayerConfig{
		MoveSpeed:  260,
		JumpSpeed:  660,
		CoyoteTime: 0.12,
		Width:      TileSize,
		Height:     TileSize * 2,
	}

	Enemy = EnemyConfig{
		PatrolSpeed: 140,
		Width:       TileSize,
		Height:      TileSize,
	}

	Collectible = CollectibleConfig{
		Size:  16,
		Inset: 8,
		Value: 1,
	}

	HUD = HUDConfig{
		Margin:    12,
		TextColor: White,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Amber,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            140,
		MenuStartY:        240,
		MenuItemHeight:    30,
		MenuItemGap:       14,
	}

	Victory = VictoryConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		HintColor:    White,
		TitleY:       200,
		HintY:        260,
		Title:        "Victory!",
		ContinueHint: "Press R to restart",
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadDistanceX: 60.0,
		LookAheadSmoothing: 0.05,
		SpeedThreshold:     0.1,
	}

	World = WorldConfig{
		BackgroundColor:  color.RGBA{R: 24, G: 28, B: 40, A: 255},
		GroundColor:      color.RGBA{R: 90, G: 105, B: 136, A: 255},
		PlayerColor:      color.RGBA{R: 80, G: 200, B: 255, A: 255},
		EnemyColor:       color.RGBA{R: 235, G: 80, B: 80, A: 255},
		CollectibleColor: Amber,
		GoalColor:        BrightGreen,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
