package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData holds host collision state. Speeds live in the actor block.
type PhysicsData struct {
	OnGround    *resolv.Object
	TouchedWall *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()

var Space = donburi.NewComponentType[resolv.Space]()
