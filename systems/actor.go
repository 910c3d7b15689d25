package systems

import (
	"github.com/automoto/doomerang-practice/actor"
	"github.com/automoto/doomerang-practice/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateActorSlot returns the host's player actor pointer.
func GetOrCreateActorSlot(e *ecs.ECS) *actor.Slot {
	entry, ok := components.ActorSlot.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.ActorSlot))
		components.ActorSlot.SetValue(entry, components.ActorSlotData{Slot: &actor.Slot{}})
	}
	data := components.ActorSlot.Get(entry)
	if data.Slot == nil {
		data.Slot = &actor.Slot{}
	}
	return data.Slot
}

// AcquireActor returns this frame's view of the player actor, or false while
// no player is loaded.
func AcquireActor(e *ecs.ECS) (actor.View, bool) {
	return GetOrCreateActorSlot(e).Acquire()
}

// GetGameFlags returns the host's game flag bytes, or nil if the host has
// none.
func GetGameFlags(e *ecs.ECS) []byte {
	entry, ok := components.GameFlags.First(e.World)
	if !ok {
		return nil
	}
	return components.GameFlags.Get(entry).Bytes
}
