package actor

import (
	"hash/crc32"

	"github.com/automoto/doomerang-practice/shared/gamemath"
)

// Snapshot holds the writable modeled fields of an actor. Opaque bytes are
// never captured, so restoring a snapshot leaves them as the host has them.
type Snapshot struct {
	Angle           gamemath.Vec3s `json:"angle"`
	Pos             gamemath.Vec3f `json:"pos"`
	ForwardSpeed    float32        `json:"forwardSpeed"`
	ForwardAccel    float32        `json:"forwardAccel"`
	ForwardMaxSpeed float32        `json:"forwardMaxSpeed"`
	Velocity        gamemath.Vec3f `json:"velocity"`
	Stamina         uint32         `json:"stamina"`
}

// Snapshot captures the modeled fields.
func (v View) Snapshot() Snapshot {
	return Snapshot{
		Angle:           v.Angle(),
		Pos:             v.Pos(),
		ForwardSpeed:    v.ForwardSpeed(),
		ForwardAccel:    v.ForwardAccel(),
		ForwardMaxSpeed: v.ForwardMaxSpeed(),
		Velocity:        v.Velocity(),
		Stamina:         v.Stamina(),
	}
}

// Restore writes every field of s back into the actor.
func (v View) Restore(s Snapshot) {
	v.SetAngle(s.Angle)
	v.SetPos(s.Pos)
	v.SetForwardSpeed(s.ForwardSpeed)
	v.SetForwardAccel(s.ForwardAccel)
	v.SetForwardMaxSpeed(s.ForwardMaxSpeed)
	v.SetVelocity(s.Velocity)
	v.SetStamina(s.Stamina)
}

// OpaqueChecksum hashes every opaque span of the actor. Targeted writes must
// leave it unchanged.
func (v View) OpaqueChecksum() uint32 {
	return Checksum(v.mem)
}

// Checksum hashes the opaque spans of an actor block.
func Checksum(mem []byte) uint32 {
	h := crc32.NewIEEE()
	for _, s := range OpaqueSpans() {
		if s.End > len(mem) {
			break
		}
		_, _ = h.Write(mem[s.Start:s.End])
	}
	return h.Sum32()
}
