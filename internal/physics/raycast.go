package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Ray is a half-line. Direction is not normalized: distances reported by the
// intersection tests are in units of Direction, so t in [0, 1) lies within
// one Direction of the origin.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// At returns the point at parametric distance t along the ray.
func (r Ray) At(t float32) rl.Vector3 {
	return rl.Vector3Add(r.Origin, rl.Vector3Scale(r.Direction, t))
}

// RayHit describes where a ray met a boundary.
type RayHit struct {
	// Distance is the parametric distance along the ray.
	Distance float32
	// Plane is the surface plane at the hit point.
	Plane Plane
}

// RaycastHit is the nearest hit of a ray against a set of collidables.
type RaycastHit struct {
	Collidable *Collidable
	RayHit
}

// Point returns the world position of the hit on ray.
func (h RaycastHit) Point(ray Ray) rl.Vector3 {
	return ray.At(h.Distance)
}

// Raycast checks every enabled collidable and returns the closest hit with a
// distance in [0, maxDistance].
func Raycast(objects []*Collidable, ray Ray, maxDistance float32) (RaycastHit, bool) {
	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range objects {
		if !obj.CollisionEnabled {
			continue
		}
		if hitInfo, ok := obj.Boundary.IntersectsRay(ray); ok && hitInfo.Distance <= closestHit.Distance {
			if hit && hitInfo.Distance == closestHit.Distance {
				continue
			}
			closestHit = RaycastHit{Collidable: obj, RayHit: hitInfo}
			hit = true
		}
	}

	return closestHit, hit
}
