package actor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/automoto/doomerang-practice/shared/gamemath"
)

// ErrShortBlock is returned when the host hands over a block that cannot
// hold every modeled field.
var ErrShortBlock = errors.New("actor: block shorter than layout")

var order = binary.BigEndian

// Slot is the host's actor pointer. A nil or unbound slot means no player is
// loaded.
type Slot struct {
	mem []byte
}

// Bind publishes the host's live actor block.
func (s *Slot) Bind(mem []byte) error {
	if len(mem) < Size {
		return fmt.Errorf("bind %d bytes: %w", len(mem), ErrShortBlock)
	}
	s.mem = mem
	return nil
}

// Unbind clears the pointer, e.g. while the player is unloaded.
func (s *Slot) Unbind() {
	s.mem = nil
}

// Bound reports whether a live actor is published.
func (s *Slot) Bound() bool {
	return s != nil && s.mem != nil
}

// Acquire returns a view of the live actor, or false when none is loaded.
// Views are only valid for the current frame.
func (s *Slot) Acquire() (View, bool) {
	if !s.Bound() {
		return View{}, false
	}
	return View{mem: s.mem}, true
}

// View reads and writes named fields of the actor block. It performs no
// range validation on the values written.
type View struct {
	mem []byte
}

// Bytes exposes the underlying block. Intended for diagnostics.
func (v View) Bytes() []byte { return v.mem }

func (v View) u32(off int) uint32 { return order.Uint32(v.mem[off : off+4]) }

func (v View) putU32(off int, x uint32) { order.PutUint32(v.mem[off:off+4], x) }

func (v View) f32(off int) float32 { return math.Float32frombits(v.u32(off)) }

func (v View) putF32(off int, x float32) { v.putU32(off, math.Float32bits(x)) }

func (v View) vec3f(off int) gamemath.Vec3f {
	return gamemath.Vec3f{X: v.f32(off), Y: v.f32(off + 4), Z: v.f32(off + 8)}
}

func (v View) putVec3f(off int, p gamemath.Vec3f) {
	v.putF32(off, p.X)
	v.putF32(off+4, p.Y)
	v.putF32(off+8, p.Z)
}

// Vtable returns the host's type tag for the actor. It is never written.
func (v View) Vtable() uint32 { return v.u32(OffsetVtable) }

// Angle returns the actor orientation in binary angle units.
func (v View) Angle() gamemath.Vec3s {
	return gamemath.Vec3s{
		X: int16(order.Uint16(v.mem[OffsetAngle:])),
		Y: int16(order.Uint16(v.mem[OffsetAngle+2:])),
		Z: int16(order.Uint16(v.mem[OffsetAngle+4:])),
	}
}

// SetAngle overwrites the actor orientation.
func (v View) SetAngle(a gamemath.Vec3s) {
	order.PutUint16(v.mem[OffsetAngle:], uint16(a.X))
	order.PutUint16(v.mem[OffsetAngle+2:], uint16(a.Y))
	order.PutUint16(v.mem[OffsetAngle+4:], uint16(a.Z))
}

func (v View) Pos() gamemath.Vec3f          { return v.vec3f(OffsetPos) }
func (v View) SetPos(p gamemath.Vec3f)      { v.putVec3f(OffsetPos, p) }
func (v View) Velocity() gamemath.Vec3f     { return v.vec3f(OffsetVelocity) }
func (v View) SetVelocity(p gamemath.Vec3f) { v.putVec3f(OffsetVelocity, p) }

func (v View) ForwardSpeed() float32        { return v.f32(OffsetForwardSpeed) }
func (v View) SetForwardSpeed(x float32)    { v.putF32(OffsetForwardSpeed, x) }
func (v View) ForwardAccel() float32        { return v.f32(OffsetForwardAccel) }
func (v View) SetForwardAccel(x float32)    { v.putF32(OffsetForwardAccel, x) }
func (v View) ForwardMaxSpeed() float32     { return v.f32(OffsetForwardMaxSpeed) }
func (v View) SetForwardMaxSpeed(x float32) { v.putF32(OffsetForwardMaxSpeed, x) }

func (v View) Stamina() uint32     { return v.u32(OffsetStamina) }
func (v View) SetStamina(x uint32) { v.putU32(OffsetStamina, x) }

// WithinXZDistance is the host's distance query: whether p lies within dist
// of the actor on the horizontal plane.
func (v View) WithinXZDistance(p gamemath.Vec3f, dist float32) bool {
	return gamemath.XZDistance(v.Pos(), p) <= dist
}
