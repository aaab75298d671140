// Package controller moves a box-shaped entity through level geometry,
// sliding along surfaces instead of passing through them.
package controller

import (
	"maze/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxDeflections caps how many surfaces one step may slide along. Past the
// cap the remaining displacement is returned as is, so a mover wedged into a
// tight corner may be let through slightly. This keeps the per-frame cost
// bounded.
const MaxDeflections = 3

// Index finds the collidables near a sphere. *bsp.Tree implements it.
type Index interface {
	AppendOverlapsSphere(dst []*physics.Collidable, s physics.Sphere) []*physics.Collidable
}

// Contact is a surface the mover slid along.
type Contact struct {
	Collidable *physics.Collidable
	Corner     rl.Vector3
	Distance   float32
	Normal     rl.Vector3
}

// Resolver corrects displacements against an index. It keeps its buffers
// between calls and must not be shared between goroutines.
type Resolver struct {
	Index Index

	candidates []*physics.Collidable
	skip       []bool
	contacts   []Contact
}

// NewResolver creates a resolver over index.
func NewResolver(index Index) *Resolver {
	return &Resolver{Index: index}
}

// ResolveMovement corrects displacement d of box against the collidables in
// index. It returns the corrected displacement and whether the mover ended
// up supported by a surface no steeper than 45°.
func ResolveMovement(box physics.AABB, d rl.Vector3, index Index) (rl.Vector3, bool) {
	return NewResolver(index).Resolve(box, d)
}

// Candidates returns the collidables gathered by the last Resolve call.
func (r *Resolver) Candidates() []*physics.Collidable {
	return r.candidates
}

// Contacts returns the surfaces the last Resolve call slid along.
func (r *Resolver) Contacts() []Contact {
	return r.contacts
}

// Resolve corrects displacement d of box.
//
// Each of the 8 box corners casts a ray along d. The nearest hit with
// parametric distance in [0, 1) removes the displacement component along the
// surface normal, the surface is excluded for the rest of the step and the
// scan starts again. A hit at distance 0 only counts when the move does not
// take the box centre away from the surface, so a mover resting on a surface
// can always leave it.
func (r *Resolver) Resolve(box physics.AABB, d rl.Vector3) (rl.Vector3, bool) {
	r.contacts = r.contacts[:0]
	r.candidates = r.candidates[:0]
	if physics.IsZero(d) {
		return d, false
	}

	center := box.Center()
	sweep := physics.Sphere{
		Center: center,
		Radius: rl.Vector3Length(box.HalfExtents()) + rl.Vector3Length(d),
	}
	if r.Index != nil {
		r.candidates = r.Index.AppendOverlapsSphere(r.candidates, sweep)
	}
	if len(r.candidates) == 0 {
		instrumentResolve(0, false)
		return d, false
	}

	r.skip = append(r.skip[:0], make([]bool, len(r.candidates))...)
	corners := box.Corners()
	grounded := false
	deflections := 0

	for deflections < MaxDeflections {
		c, ok := r.nearestContact(box, center, corners, d)
		if !ok {
			break
		}

		n := c.Normal
		facing := n
		if rl.Vector3DotProduct(n, d) > 0 {
			facing = rl.Vector3Negate(n)
		}
		if rl.Vector3DotProduct(facing, physics.Up) >= physics.Sqrt2Over2 {
			grounded = true
		}

		d = rl.Vector3Subtract(d, rl.Vector3Scale(n, rl.Vector3DotProduct(d, n)))
		r.contacts = append(r.contacts, c)
		deflections++

		if physics.IsZero(d) {
			break
		}
	}

	capped := deflections == MaxDeflections
	if capped {
		if _, ok := r.nearestContact(box, center, corners, d); !ok {
			capped = false
		}
	}
	instrumentResolve(deflections, capped)

	return d, grounded && d.Y <= 0
}

// nearestContact finds the closest qualifying hit among the candidates not
// yet slid along and marks its collidable as used.
func (r *Resolver) nearestContact(box physics.AABB, center rl.Vector3, corners [8]rl.Vector3, d rl.Vector3) (Contact, bool) {
	best := Contact{Distance: 1}
	bestIdx := -1

	for _, corner := range corners {
		if box.Contains(rl.Vector3Add(corner, d)) {
			// The corner stays inside the box, another corner leads.
			continue
		}

		ray := physics.Ray{Origin: corner, Direction: d}
		for i, obj := range r.candidates {
			if r.skip[i] {
				continue
			}
			hit, ok := obj.Boundary.IntersectsRay(ray)
			if !ok || hit.Distance < 0 || hit.Distance >= best.Distance {
				continue
			}
			if hit.Distance == 0 && movingAway(hit.Plane, center, d) {
				continue
			}
			best = Contact{Collidable: obj, Corner: corner, Distance: hit.Distance, Normal: hit.Plane.Normal}
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return Contact{}, false
	}
	r.skip[bestIdx] = true
	return best, true
}

// movingAway reports whether d takes center further out on the side of plane
// it already occupies.
func movingAway(plane physics.Plane, center, d rl.Vector3) bool {
	return plane.Distance(center)*rl.Vector3DotProduct(d, plane.Normal) > 0
}
