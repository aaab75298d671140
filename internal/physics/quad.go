package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Quad is a planar rectangle given by a basis transform. In local space the
// quad spans [-1, 1] on X and Z at Y = 0; the basis maps that square into the
// world. The basis X and Z columns are the half-edge vectors and should be
// orthogonal.
//
// A Quad is built once by NewQuad and never changes. Moving a quad means
// building a new one.
type Quad struct {
	basis   rl.Matrix
	inverse rl.Matrix
	corners [4]rl.Vector3
	plane   Plane
	center  rl.Vector3
	axisX   rl.Vector3
	axisZ   rl.Vector3
	extentX float32
	extentZ float32
	valid   bool
}

// NewQuad derives corners, plane and inverse transform from basis. The normal
// is normalize(Z × X), which is the basis Y axis for a proper rotation.
func NewQuad(basis rl.Matrix) Quad {
	x := rl.Vector3{X: basis.M0, Y: basis.M1, Z: basis.M2}
	z := rl.Vector3{X: basis.M8, Y: basis.M9, Z: basis.M10}
	center := rl.Vector3{X: basis.M12, Y: basis.M13, Z: basis.M14}

	q := Quad{basis: basis, center: center}
	for i, local := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		q.corners[i] = rl.Vector3Add(center,
			rl.Vector3Add(rl.Vector3Scale(x, local[0]), rl.Vector3Scale(z, local[1])))
	}

	n := cross(z, x)
	if rl.Vector3Length(n) < epsilon {
		// Zero area: every predicate reports no contact.
		return q
	}
	n = rl.Vector3Normalize(n)

	q.plane = NewPlane(n, center)
	q.extentX = rl.Vector3Length(x)
	q.extentZ = rl.Vector3Length(z)
	q.axisX = rl.Vector3Scale(x, 1/q.extentX)
	q.axisZ = rl.Vector3Scale(z, 1/q.extentZ)

	// Replace the Y column with the unit normal so the matrix stays invertible
	// whatever the caller stored there.
	m := basis
	m.M4, m.M5, m.M6 = n.X, n.Y, n.Z
	m.M3, m.M7, m.M11, m.M15 = 0, 0, 0, 1
	q.inverse = rl.MatrixInvert(m)
	q.valid = true
	return q
}

// NewQuadAt builds a quad centred at center with the given half-edge vectors.
func NewQuadAt(center, halfX, halfZ rl.Vector3) Quad {
	return NewQuad(rl.Matrix{
		M0: halfX.X, M1: halfX.Y, M2: halfX.Z,
		M8: halfZ.X, M9: halfZ.Y, M10: halfZ.Z,
		M12: center.X, M13: center.Y, M14: center.Z,
		M15: 1,
	})
}

// WithBasis returns a new quad for a different basis.
func (q Quad) WithBasis(basis rl.Matrix) Quad {
	return NewQuad(basis)
}

func (q Quad) Basis() rl.Matrix { return q.basis }
func (q Quad) Plane() Plane { return q.plane }
func (q Quad) Center() rl.Vector3 { return q.center }
func (q Quad) Corners() [4]rl.Vector3 { return q.corners }
func (q Quad) Extents() (x, z float32) { return q.extentX, q.extentZ }
func (q Quad) Valid() bool { return q.valid }
func (q Quad) Axes() (x, z rl.Vector3) { return q.axisX, q.axisZ }
func (q Quad) Normal() rl.Vector3 { return q.plane.Normal }

// Bounds returns the box enclosing the four corners.
func (q Quad) Bounds() AABB {
	b := AABB{Min: q.corners[0], Max: q.corners[0]}
	for _, c := range q.corners[1:] {
		b.Min = rl.Vector3Min(b.Min, c)
		b.Max = rl.Vector3Max(b.Max, c)
	}
	return b
}

// local maps a world point into quad space.
func (q Quad) local(p rl.Vector3) rl.Vector3 {
	return rl.Vector3Transform(p, q.inverse)
}

// Contains reports whether p lies on the quad's surface.
func (q Quad) Contains(p rl.Vector3) bool {
	if !q.valid || abs(q.plane.Distance(p)) > 1e-4 {
		return false
	}
	l := q.local(p)
	return abs(l.X) <= 1 && abs(l.Z) <= 1
}

// IntersectsRay hits the infinite plane first and then checks the hit point
// against the unit square in quad space. Rays parallel to the plane miss.
func (q Quad) IntersectsRay(ray Ray) (RayHit, bool) {
	if !q.valid {
		return RayHit{}, false
	}
	denom := rl.Vector3DotProduct(q.plane.Normal, ray.Direction)
	if abs(denom) < epsilon {
		return RayHit{}, false
	}
	t := -q.plane.Distance(ray.Origin) / denom
	if t < 0 {
		return RayHit{}, false
	}
	l := q.local(ray.At(t))
	if abs(l.X) > 1 || abs(l.Z) > 1 {
		return RayHit{}, false
	}
	return RayHit{Distance: t, Plane: q.plane}, true
}

// OverlapsSphere cuts the sphere with the quad's plane and tests the
// resulting circle against the rectangle.
func (q Quad) OverlapsSphere(s Sphere) bool {
	if !q.valid {
		return false
	}
	d := q.plane.Distance(s.Center)
	r2 := s.Radius * s.Radius
	if d*d > r2 {
		return false
	}

	projected := rl.Vector3Subtract(s.Center, rl.Vector3Scale(q.plane.Normal, d))
	rel := rl.Vector3Subtract(projected, q.center)
	u := rl.Vector3DotProduct(rel, q.axisX)
	v := rl.Vector3DotProduct(rel, q.axisZ)
	du := u - clamp(u, -q.extentX, q.extentX)
	dv := v - clamp(v, -q.extentZ, q.extentZ)
	return du*du+dv*dv <= r2-d*d
}

// OverlapsFrustum reports false only when all four corners are behind one
// frustum plane.
func (q Quad) OverlapsFrustum(f Frustum) bool {
	if !q.valid {
		return false
	}
	return !f.outsidePoints(q.corners[:])
}

// ClassifyPlane is Front or Back only when every corner is strictly on that
// side.
func (q Quad) ClassifyPlane(p Plane) PlaneSide {
	if !q.valid {
		return Intersecting
	}
	front, back := 0, 0
	for _, c := range q.corners {
		switch s := p.Distance(c); {
		case s > 0:
			front++
		case s < 0:
			back++
		default:
			return Intersecting
		}
	}
	switch {
	case front == len(q.corners):
		return Front
	case back == len(q.corners):
		return Back
	default:
		return Intersecting
	}
}
