package systems

import (
	"github.com/pixelgrove/scurry/components"
	"github.com/pixelgrove/scurry/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Box is an axis-aligned rectangle in world pixels.
type Box struct {
	X, Y, W, H float64
}

// Snapshot is the read-only per-frame view of the simulation handed to
// rendering and tests: boxes, score, deaths, and the complete flag. The
// core exposes no drawing, only this.
type Snapshot struct {
	Player         Box
	PlayerVelocity components.Vector
	Enemies        []Box
	Collectibles   []Box // uncollected only
	Goal           Box
	Score          int
	Deaths         int
	Complete       bool
}

func boxOf(entry *donburi.Entry) Box {
	obj := components.Object.Get(entry)
	return Box{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// TakeSnapshot captures the current simulation state.
func TakeSnapshot(e *ecs.ECS) Snapshot {
	var snap Snapshot

	if playerEntry, ok := tags.Player.First(e.World); ok {
		snap.Player = boxOf(playerEntry)
		snap.PlayerVelocity = components.Physics.Get(playerEntry).Velocity
	}

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		snap.Enemies = append(snap.Enemies, boxOf(entry))
	})

	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		if components.Collectible.Get(entry).Collected {
			return
		}
		snap.Collectibles = append(snap.Collectibles, boxOf(entry))
	})

	if goalEntry, ok := tags.Goal.First(e.World); ok {
		snap.Goal = boxOf(goalEntry)
	}

	session := GetOrCreateSession(e)
	snap.Score = session.Score
	snap.Deaths = session.Deaths
	snap.Complete = session.Complete

	return snap
}
