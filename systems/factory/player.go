package factory

import (
	"encoding/binary"
	"fmt"

	"github.com/automoto/doomerang-practice/actor"
	"github.com/automoto/doomerang-practice/archetypes"
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/shared/gamemath"
	"github.com/automoto/doomerang-practice/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the host player, allocates its actor block and
// publishes it through slot.
func CreatePlayer(ecs *ecs.ECS, slot *actor.Slot, x, y float64) (*donburi.Entry, error) {
	mem := NewActorBlock(float32(x), float32(y))
	if err := slot.Bind(mem); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Host.CollisionWidth, cfg.Host.CollisionHeight
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{
		LastSafeX: x,
		LastSafeY: y,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Actor.SetValue(player, components.ActorData{Mem: mem})

	return player, nil
}

// NewActorBlock allocates an actor block standing at (x, y) with the host's
// spawn defaults.
func NewActorBlock(x, y float32) []byte {
	mem := make([]byte, actor.Size)
	binary.BigEndian.PutUint32(mem[actor.OffsetVtable:], cfg.Host.ActorVtable)

	var slot actor.Slot
	_ = slot.Bind(mem)
	view, _ := slot.Acquire()
	view.SetPos(gamemath.Vec3f{X: x, Y: y})
	view.SetForwardMaxSpeed(cfg.Host.DefaultMaxSpeed)
	view.SetStamina(cfg.Host.StaminaMax)
	return mem
}
