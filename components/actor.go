package components

import (
	"github.com/automoto/doomerang-practice/actor"
	"github.com/yohamta/donburi"
)

// ActorSlotData is the host's global player actor pointer.
type ActorSlotData struct {
	Slot *actor.Slot
}

var ActorSlot = donburi.NewComponentType[ActorSlotData]()

// ActorData is the host-owned memory block of one actor.
type ActorData struct {
	Mem []byte
}

var Actor = donburi.NewComponentType[ActorData]()

// GameFlagsData is the host's game flag storage, one bit per flag.
type GameFlagsData struct {
	Bytes []byte
}

var GameFlags = donburi.NewComponentType[GameFlagsData]()
