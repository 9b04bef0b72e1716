package components

import (
	"github.com/yohamta/donburi"
)

// InputData is the singleton frame input consumed by the simulation systems.
// The input system fills it from the keyboard each frame; tests write it
// directly to drive the simulation deterministically.
type InputData struct {
	DT   float64 // elapsed seconds for this step; clamped to a positive floor
	Axis float64 // horizontal input in [-1, 1]
	Jump bool    // one-shot jump request for this step

	Reset bool // reload-level request (handled by the scene, not the sim)
}

var Input = donburi.NewComponentType[InputData]()
