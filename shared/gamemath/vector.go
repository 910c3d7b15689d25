package gamemath

import "math"

// Vec3f is a float vector as the host stores it (x, y, z).
type Vec3f struct {
	X, Y, Z float32
}

// IsFinite reports whether no component is NaN or Inf.
func (v Vec3f) IsFinite() bool {
	for _, c := range [3]float32{v.X, v.Y, v.Z} {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// XZDistance is the horizontal-plane distance between a and b, ignoring height.
func XZDistance(a, b Vec3f) float32 {
	dx := float64(a.X - b.X)
	dz := float64(a.Z - b.Z)
	return float32(math.Sqrt(dx*dx + dz*dz))
}

// Vec3s is a binary-angle vector: a full turn is 0x10000 units.
type Vec3s struct {
	X, Y, Z int16
}

// AngleToRadians converts a binary angle to radians.
func AngleToRadians(a int16) float64 {
	return float64(a) * math.Pi / 0x8000
}
