package systems

import (
	"github.com/automoto/doomerang-practice/actor"
	"github.com/automoto/doomerang-practice/components"
	cfg "github.com/automoto/doomerang-practice/config"
	"github.com/automoto/doomerang-practice/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Facing angles along the level's X axis
const (
	facingRight int16 = 0
	facingLeft  int16 = -32768
)

// UpdateHostControl turns the host's input into forward acceleration,
// facing and jumps. The scene wraps it with WithOverlayFocus.
func UpdateHostControl(ecs *ecs.ECS) {
	view, ok := AcquireActor(ecs)
	if !ok {
		return
	}
	entry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	handleMovementInput(input, components.Player.Get(entry), view)
	handleJumpInput(input, entry, view)
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, view actor.View) {
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed

	player.Running = GetAction(input, cfg.ActionRun).Pressed && view.Stamina() > 0

	if left == right {
		view.SetForwardAccel(0)
		return
	}

	target := facingRight
	if left {
		target = facingLeft
	}
	angle := view.Angle()
	angle.Y = int16(gamemath.Approach(float32(angle.Y), float32(target), float32(cfg.Host.TurnSpeed)))
	view.SetAngle(angle)

	accel := cfg.Host.RunAccel
	if player.Running {
		accel *= 1.5
	}
	view.SetForwardAccel(accel)
}

func handleJumpInput(input *components.InputData, entry *donburi.Entry, view actor.View) {
	if !GetAction(input, cfg.ActionJump).JustPressed {
		return
	}
	if physics := components.Physics.Get(entry); physics.OnGround == nil {
		return
	}
	vel := view.Velocity()
	vel.Y = -cfg.Host.JumpSpeed
	view.SetVelocity(vel)
}
