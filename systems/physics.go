package systems

import (
	"math"

	"github.com/automoto/doomerang-practice/actor"
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActor advances the player actor by one frame: forward speed, gravity,
// collisions and stamina. It runs whether or not the overlay is open.
func UpdateActor(ecs *ecs.ECS) {
	view, ok := AcquireActor(ecs)
	if !ok {
		return
	}
	entry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}

	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry).Object

	// Warps and restores write pos directly; recover from garbage too
	pos := view.Pos()
	if !pos.IsFinite() {
		pos = gamemath.Vec3f{X: float32(player.LastSafeX), Y: float32(player.LastSafeY)}
		view.SetVelocity(gamemath.Vec3f{})
		view.SetForwardSpeed(0)
	}
	obj.X, obj.Y = float64(pos.X), float64(pos.Y)

	updateForwardSpeed(view, player)

	vel := view.Velocity()
	facing := gamemath.AngleToRadians(view.Angle().Y)
	vel.X = view.ForwardSpeed() * float32(math.Cos(facing))
	vel.Y = gamemath.ClampSpeed(vel.Y+cfg.Host.Gravity, cfg.Host.MaxFallSpeed)
	view.SetVelocity(vel)

	resolveActorCollisions(view, physics, obj)
	obj.Update()

	pos = view.Pos()
	pos.X, pos.Y = float32(obj.X), float32(obj.Y)
	view.SetPos(pos)

	player.Grounded = physics.OnGround != nil
	if player.Grounded {
		player.LastSafeX = obj.X
		player.LastSafeY = obj.Y
	}

	updateStamina(view, player)
}

func updateForwardSpeed(view actor.View, player *components.PlayerData) {
	maxSpeed := view.ForwardMaxSpeed()
	if player.Running {
		maxSpeed *= 1.5
	}

	speed := view.ForwardSpeed()
	if accel := view.ForwardAccel(); accel != 0 {
		speed += accel
	} else {
		speed = gamemath.ApplyFriction(speed, cfg.Host.Friction)
	}
	speed = gamemath.ClampSpeed(speed, maxSpeed)
	if speed < 0 {
		speed = 0
	}
	view.SetForwardSpeed(speed)
}

func updateStamina(view actor.View, player *components.PlayerData) {
	stamina := view.Stamina()
	if player.Running && view.ForwardSpeed() > 0 {
		if stamina > cfg.Host.StaminaDrain {
			stamina -= cfg.Host.StaminaDrain
		} else {
			stamina = 0
		}
	} else if stamina < cfg.Host.StaminaMax {
		stamina += cfg.Host.StaminaRegen
		if stamina > cfg.Host.StaminaMax {
			stamina = cfg.Host.StaminaMax
		}
	}
	view.SetStamina(stamina)
}
