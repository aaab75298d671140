package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Plane represents a plane in 3D space (Normal·p + D = 0).
type Plane struct {
	Normal rl.Vector3
	D      float32
}

// NewPlane creates a plane through point with the given normal. The normal is
// normalized; a zero normal yields the zero plane.
func NewPlane(normal, point rl.Vector3) Plane {
	n := rl.Vector3Normalize(normal)
	return Plane{Normal: n, D: -rl.Vector3DotProduct(n, point)}
}

// AxisPlane creates the plane perpendicular to an axis (0=X, 1=Y, 2=Z) at the
// given coordinate, with its normal pointing along the positive axis.
func AxisPlane(axis int, at float32) Plane {
	return Plane{Normal: AxisNormal(axis), D: -at}
}

// Distance returns the signed distance from p to the plane.
func (p Plane) Distance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.Normal, point) + p.D
}

// Flip returns the same plane with the opposite orientation.
func (p Plane) Flip() Plane {
	return Plane{Normal: rl.Vector3Negate(p.Normal), D: -p.D}
}

// normalizePlane normalizes a plane equation
func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.Normal)
	if length == 0 {
		return p
	}
	return Plane{
		Normal: rl.Vector3Scale(p.Normal, 1.0/length),
		D:      p.D / length,
	}
}

// PlaneSide is the result of classifying a shape against a plane.
type PlaneSide uint8

const (
	// Intersecting means the shape touches or crosses the plane.
	Intersecting PlaneSide = iota
	// Front means the shape lies strictly on the side the normal points to.
	Front
	// Back means the shape lies strictly behind the plane.
	Back
)

func (s PlaneSide) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return "intersecting"
	}
}

// classifyDistance classifies a shape whose centre is at signed distance s
// from a plane and whose projected radius onto the plane normal is r.
func classifyDistance(s, r float32) PlaneSide {
	switch {
	case s > r:
		return Front
	case s < -r:
		return Back
	default:
		return Intersecting
	}
}
