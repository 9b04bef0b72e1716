package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// CoyoteTimer counts seconds since the player last stood on solid ground.
	// Pinned at zero while grounded.
	CoyoteTimer float64

	// JumpRequested is edge-triggered: set by input, consumed (cleared) at the
	// end of every simulation step whether or not a jump fired.
	JumpRequested bool

	// SpawnX, SpawnY is where the player respawns after enemy contact.
	SpawnX float64
	SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
