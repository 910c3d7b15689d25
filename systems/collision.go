package systems

import (
	"math"

	"github.com/automoto/doomerang-practice/actor"
	"github.com/automoto/doomerang-practice/components"
	"github.com/automoto/doomerang-practice/tags"
	"github.com/solarlune/resolv"
)

// resolveActorCollisions moves obj by the actor's velocity, stopping at
// solids. Speeds zeroed by a collision are written back to the actor.
func resolveActorCollisions(view actor.View, physics *components.PhysicsData, obj *resolv.Object) {
	vel := view.Velocity()

	if dx := resolveHorizontal(physics, obj, float64(vel.X)); dx != float64(vel.X) {
		vel.X = 0
		view.SetForwardSpeed(0)
	}
	if dy := resolveVertical(physics, obj, float64(vel.Y)); dy != float64(vel.Y) {
		vel.Y = 0
	}
	view.SetVelocity(vel)
}

// resolveHorizontal applies dx and returns the distance actually moved.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object, dx float64) float64 {
	physics.TouchedWall = nil
	if dx == 0 {
		return 0
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return dx
	}

	// Check reports every solid in the touched cells; only ones level with
	// the object and ahead of it within dx can stop it.
	var hit *resolv.Object
	moved := dx
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsVertically(object, solid) {
			continue
		}
		contact := check.ContactWithObject(solid).X()
		if contact*dx < 0 || math.Abs(contact) > math.Abs(moved) {
			continue
		}
		hit, moved = solid, contact
	}

	physics.TouchedWall = hit
	object.X += moved
	return moved
}

// resolveVertical applies dy and returns the distance actually moved. When
// not rising it looks one pixel further so a resting object stays grounded.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object, dy float64) float64 {
	physics.OnGround = nil

	reach := dy
	if dy >= 0 {
		reach++
	}

	check := object.Check(0, reach, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return dy
	}

	var hit *resolv.Object
	contact := reach
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(object, solid) {
			continue
		}
		d := check.ContactWithObject(solid).Y()
		if d*reach < 0 || math.Abs(d) > math.Abs(contact) {
			continue
		}
		hit, contact = solid, d
	}

	if hit == nil {
		object.Y += dy
		return dy
	}
	if dy >= 0 {
		physics.OnGround = hit
		if contact > dy {
			object.Y += dy
			return dy
		}
	}
	object.Y += contact
	return contact
}

func overlapsVertically(object, solid *resolv.Object) bool {
	return object.Y+object.H > solid.Y && object.Y < solid.Y+solid.H
}

func overlapsHorizontally(object, solid *resolv.Object) bool {
	return object.X+object.W > solid.X && object.X < solid.X+solid.W
}
