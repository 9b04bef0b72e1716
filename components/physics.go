package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	Velocity Vector // px/s

	// OnGround is cleared at the start of every vertical resolution phase and
	// set again only when a downward contact is resolved this step.
	OnGround bool

	// HitWall records whether the horizontal phase clamped against a solid
	// this step. Horizontal contact does not zero Velocity.X; patrol reversal
	// and wall behavior read this flag instead.
	HitWall bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
