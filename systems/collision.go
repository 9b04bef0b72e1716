package systems

import (
	"math"

	"github.com/pixelgrove/scurry/components"
	cfg "github.com/pixelgrove/scurry/config"
	"github.com/pixelgrove/scurry/tags"
	"github.com/solarlune/resolv"
)

// Shared kinematic body motion. Each step resolves penetration against the
// static solid set axis-separated: X fully, then Y fully. Resolving one axis
// at a time is what keeps fast diagonal motion from catching corners.

// clampDT floors the frame delta. Zero or negative dt would silently turn
// integration into a no-op, so the hot path clamps rather than errors.
func clampDT(dt float64) float64 {
	if dt < cfg.Physics.MinDT {
		return cfg.Physics.MinDT
	}
	return dt
}

func clampAxis(axis float64) float64 {
	return math.Max(-1, math.Min(1, axis))
}

func applyGravity(physics *components.PhysicsData, dt float64) {
	physics.Velocity.Y += cfg.Physics.Gravity * dt
}

// overlaps reports strict AABB overlap. Touching edges with zero overlap
// area do not collide.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// solidCandidates returns the solids sharing broadphase cells with the body.
// Cell contact over-approximates overlap, so callers must re-test each
// candidate with overlaps before clamping.
func solidCandidates(obj *resolv.Object) []*resolv.Object {
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tags.ResolvSolid)
}

// moveHorizontal advances the body along X and clamps it against every solid
// it now penetrates, sequentially against the already-adjusted box.
// Velocity.X is deliberately not zeroed on contact: a body pressed into a
// wall keeps its intended horizontal velocity for the next step's input
// re-evaluation. Reports whether any clamp was applied.
//
// Displacement is truncated toward zero so positions stay on integer pixels;
// the same rule applies on both axes.
func moveHorizontal(obj *resolv.Object, physics *components.PhysicsData, dt float64) bool {
	obj.X += math.Trunc(physics.Velocity.X * dt)
	obj.Update()

	hit := false
	for _, solid := range solidCandidates(obj) {
		if !overlaps(obj, solid) {
			continue
		}
		if physics.Velocity.X > 0 {
			obj.X = solid.X - obj.W
		} else if physics.Velocity.X < 0 {
			obj.X = solid.X + solid.W
		} else {
			continue
		}
		hit = true
		obj.Update()
	}
	physics.HitWall = hit
	return hit
}

// moveVertical advances the body along Y and clamps against penetrated
// solids. Falling contact zeroes Velocity.Y and grounds the body; rising
// contact zeroes Velocity.Y only. The grounded flag is cleared before
// resolution every step.
func moveVertical(obj *resolv.Object, physics *components.PhysicsData, dt float64) {
	obj.Y += math.Trunc(physics.Velocity.Y * dt)
	obj.Update()

	physics.OnGround = false
	for _, solid := range solidCandidates(obj) {
		if !overlaps(obj, solid) {
			continue
		}
		if physics.Velocity.Y > 0 {
			obj.Y = solid.Y - obj.H
			physics.Velocity.Y = 0
			physics.OnGround = true
		} else if physics.Velocity.Y < 0 {
			obj.Y = solid.Y + solid.H
			physics.Velocity.Y = 0
		} else {
			continue
		}
		obj.Update()
	}
}
