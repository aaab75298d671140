package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// epsilon is the tolerance used for parallel and degenerate checks.
const epsilon = 1e-6

// Sqrt2Over2 is cos(45°), the steepest slope still treated as ground.
const Sqrt2Over2 = float32(math.Sqrt2 / 2)

// Up is the world up axis.
var Up = rl.Vector3{X: 0, Y: 1, Z: 0}

// cross computes the cross product of two vectors
func cross(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// absVector returns the component-wise absolute value of v.
func absVector(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: abs(v.X), Y: abs(v.Y), Z: abs(v.Z)}
}

// AxisValue returns the component of v on the given axis (0=X, 1=Y, 2=Z).
func AxisValue(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// setAxisValue returns v with the component on the given axis replaced.
func setAxisValue(v rl.Vector3, axis int, value float32) rl.Vector3 {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

// AxisNormal returns the unit vector of an axis (0=X, 1=Y, 2=Z).
func AxisNormal(axis int) rl.Vector3 {
	return setAxisValue(rl.Vector3Zero(), axis, 1)
}

// IsZero reports whether every component of v is exactly zero.
func IsZero(v rl.Vector3) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
