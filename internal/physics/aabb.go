package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is an axis-aligned box. A valid box has Min <= Max on every axis.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) HalfExtents() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Subtract(a.Max, a.Min), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// Valid reports whether Min <= Max on every axis.
func (a AABB) Valid() bool {
	return a.Min.X <= a.Max.X && a.Min.Y <= a.Max.Y && a.Min.Z <= a.Max.Z
}

// Translate returns the box moved by offset.
func (a AABB) Translate(offset rl.Vector3) AABB {
	return AABB{Min: rl.Vector3Add(a.Min, offset), Max: rl.Vector3Add(a.Max, offset)}
}

// Union returns the smallest box enclosing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: rl.Vector3Min(a.Min, b.Min),
		Max: rl.Vector3Max(a.Max, b.Max),
	}
}

// Corner returns one of the 8 corners. Bit 0 selects Max on X, bit 1 on Y and
// bit 2 on Z.
func (a AABB) Corner(i int) rl.Vector3 {
	c := a.Min
	if i&1 != 0 {
		c.X = a.Max.X
	}
	if i&2 != 0 {
		c.Y = a.Max.Y
	}
	if i&4 != 0 {
		c.Z = a.Max.Z
	}
	return c
}

// Corners returns all 8 corners.
func (a AABB) Corners() [8]rl.Vector3 {
	var corners [8]rl.Vector3
	for i := range corners {
		corners[i] = a.Corner(i)
	}
	return corners
}

// Split cuts the box with the axis plane at the given coordinate. front is
// the half on the positive side of the axis.
func (a AABB) Split(axis int, at float32) (front, back AABB) {
	front, back = a, a
	front.Min = setAxisValue(front.Min, axis, at)
	back.Max = setAxisValue(back.Max, axis, at)
	return front, back
}

// Intersects reports whether two boxes overlap or touch.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Contains reports whether p lies strictly inside the box. Points on a face
// are outside.
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X > a.Min.X && p.X < a.Max.X &&
		p.Y > a.Min.Y && p.Y < a.Max.Y &&
		p.Z > a.Min.Z && p.Z < a.Max.Z
}

// IntersectsRay runs the slab test. The reported plane is the outward face
// the ray enters through, or the face it leaves through when the origin is
// inside the box.
func (a AABB) IntersectsRay(ray Ray) (RayHit, bool) {
	tmin, tmax := float32(-1e30), float32(1e30)
	nearAxis, farAxis := -1, -1
	var nearSign, farSign float32

	for axis := 0; axis < 3; axis++ {
		o := AxisValue(ray.Origin, axis)
		d := AxisValue(ray.Direction, axis)
		lo := AxisValue(a.Min, axis)
		hi := AxisValue(a.Max, axis)

		if abs(d) < epsilon {
			// Parallel: the interval along this axis is infinite or empty.
			if o < lo || o > hi {
				return RayHit{}, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		// Entering through the min face means an outward normal of -axis.
		enterSign, exitSign := float32(-1), float32(1)
		if t1 > t2 {
			t1, t2 = t2, t1
			enterSign, exitSign = 1, -1
		}
		if t1 > tmin {
			tmin = t1
			nearAxis, nearSign = axis, enterSign
		}
		if t2 < tmax {
			tmax = t2
			farAxis, farSign = axis, exitSign
		}
		if tmin > tmax {
			return RayHit{}, false
		}
	}

	// Parallel to every axis: a zero direction never hits.
	if nearAxis < 0 || farAxis < 0 || tmax < 0 {
		return RayHit{}, false
	}

	t, axis, sign := tmin, nearAxis, nearSign
	if t < 0 {
		t, axis, sign = tmax, farAxis, farSign
	}

	return RayHit{Distance: t, Plane: a.facePlane(axis, sign)}, true
}

// facePlane returns the outward plane of the face on the given axis and side.
func (a AABB) facePlane(axis int, sign float32) Plane {
	n := setAxisValue(rl.Vector3Zero(), axis, sign)
	at := AxisValue(a.Min, axis)
	if sign > 0 {
		at = AxisValue(a.Max, axis)
	}
	return Plane{Normal: n, D: -sign * at}
}

// ClosestPoint returns the point of the box nearest to p.
func (a AABB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: clamp(p.X, a.Min.X, a.Max.X),
		Y: clamp(p.Y, a.Min.Y, a.Max.Y),
		Z: clamp(p.Z, a.Min.Z, a.Max.Z),
	}
}

func (a AABB) OverlapsSphere(s Sphere) bool {
	diff := rl.Vector3Subtract(s.Center, a.ClosestPoint(s.Center))
	return rl.Vector3DotProduct(diff, diff) <= s.Radius*s.Radius
}

// OverlapsFrustum uses the positive vertex test: the box is outside when the
// corner furthest along a plane normal is still behind that plane.
func (a AABB) OverlapsFrustum(f Frustum) bool {
	for _, p := range f.Planes {
		v := a.Min
		if p.Normal.X >= 0 {
			v.X = a.Max.X
		}
		if p.Normal.Y >= 0 {
			v.Y = a.Max.Y
		}
		if p.Normal.Z >= 0 {
			v.Z = a.Max.Z
		}
		if p.Distance(v) < 0 {
			return false
		}
	}
	return true
}

func (a AABB) ClassifyPlane(p Plane) PlaneSide {
	r := rl.Vector3DotProduct(a.HalfExtents(), absVector(p.Normal))
	return classifyDistance(p.Distance(a.Center()), r)
}
