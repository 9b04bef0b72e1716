package components

import (
	"github.com/yohamta/donburi"
)

type CollectibleData struct {
	Value     int
	Collected bool // flips true exactly once, on first overlap with the player

	PulseScale float64 // render-only scale driven by the pulse tween
}

var Collectible = donburi.NewComponentType[CollectibleData]()
