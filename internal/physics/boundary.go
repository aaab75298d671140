package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind identifies the shape held by a Boundary.
type Kind uint8

const (
	KindBox Kind = iota + 1
	KindSphere
	KindQuad
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindQuad:
		return "quad"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Boundary is a closed union over the collision shapes. Every operation
// dispatches on the shape kind; the zero Boundary is invalid.
type Boundary struct {
	kind   Kind
	box    AABB
	sphere Sphere
	quad   Quad
}

func BoxBoundary(b AABB) Boundary      { return Boundary{kind: KindBox, box: b} }
func SphereBoundary(s Sphere) Boundary { return Boundary{kind: KindSphere, sphere: s} }
func QuadBoundary(q Quad) Boundary     { return Boundary{kind: KindQuad, quad: q} }

func (b Boundary) Kind() Kind { return b.kind }

// Box returns the box shape; ok is false for other kinds.
func (b Boundary) Box() (box AABB, ok bool) { return b.box, b.kind == KindBox }

// Sphere returns the sphere shape; ok is false for other kinds.
func (b Boundary) Sphere() (s Sphere, ok bool) { return b.sphere, b.kind == KindSphere }

// Quad returns the quad shape; ok is false for other kinds.
func (b Boundary) Quad() (q Quad, ok bool) { return b.quad, b.kind == KindQuad }

func (b Boundary) Contains(p rl.Vector3) bool {
	switch b.kind {
	case KindBox:
		return b.box.Contains(p)
	case KindSphere:
		return b.sphere.Contains(p)
	case KindQuad:
		return b.quad.Contains(p)
	}
	panic(invalidKind(b.kind))
}

func (b Boundary) IntersectsRay(ray Ray) (RayHit, bool) {
	switch b.kind {
	case KindBox:
		return b.box.IntersectsRay(ray)
	case KindSphere:
		return b.sphere.IntersectsRay(ray)
	case KindQuad:
		return b.quad.IntersectsRay(ray)
	}
	panic(invalidKind(b.kind))
}

func (b Boundary) OverlapsSphere(s Sphere) bool {
	switch b.kind {
	case KindBox:
		return b.box.OverlapsSphere(s)
	case KindSphere:
		return b.sphere.OverlapsSphere(s)
	case KindQuad:
		return b.quad.OverlapsSphere(s)
	}
	panic(invalidKind(b.kind))
}

func (b Boundary) OverlapsFrustum(f Frustum) bool {
	switch b.kind {
	case KindBox:
		return b.box.OverlapsFrustum(f)
	case KindSphere:
		return b.sphere.OverlapsFrustum(f)
	case KindQuad:
		return b.quad.OverlapsFrustum(f)
	}
	panic(invalidKind(b.kind))
}

func (b Boundary) ClassifyPlane(p Plane) PlaneSide {
	switch b.kind {
	case KindBox:
		return b.box.ClassifyPlane(p)
	case KindSphere:
		return b.sphere.ClassifyPlane(p)
	case KindQuad:
		return b.quad.ClassifyPlane(p)
	}
	panic(invalidKind(b.kind))
}

// Bounds returns the axis-aligned box enclosing the shape.
func (b Boundary) Bounds() AABB {
	switch b.kind {
	case KindBox:
		return b.box
	case KindSphere:
		return b.sphere.Bounds()
	case KindQuad:
		return b.quad.Bounds()
	}
	panic(invalidKind(b.kind))
}

func invalidKind(k Kind) string {
	return "physics: boundary has invalid " + k.String()
}
