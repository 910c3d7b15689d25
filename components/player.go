package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Grounded  bool
	Running   bool
	LastSafeX float64 // Last position where the player was grounded
	LastSafeY float64
}

var Player = donburi.NewComponentType[PlayerData]()
