package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type Sphere struct {
	Center rl.Vector3
	Radius float32
}

// Bounds returns the box enclosing the sphere.
func (s Sphere) Bounds() AABB {
	r := abs(s.Radius)
	return AABB{
		Min: rl.Vector3SubtractValue(s.Center, r),
		Max: rl.Vector3AddValue(s.Center, r),
	}
}

func (s Sphere) Contains(p rl.Vector3) bool {
	d := rl.Vector3Subtract(p, s.Center)
	return rl.Vector3DotProduct(d, d) < s.Radius*s.Radius
}

// IntersectsRay returns the nearest non-negative root. When the origin is
// inside the sphere that is the exit point.
func (s Sphere) IntersectsRay(ray Ray) (RayHit, bool) {
	oc := rl.Vector3Subtract(ray.Origin, s.Center)
	a := rl.Vector3DotProduct(ray.Direction, ray.Direction)
	if a < epsilon {
		return RayHit{}, false
	}
	b := 2.0 * rl.Vector3DotProduct(oc, ray.Direction)
	c := rl.Vector3DotProduct(oc, oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RayHit{}, false
	}

	root := sqrt(discriminant)
	t := (-b - root) / (2 * a)
	if t < 0 {
		t = (-b + root) / (2 * a)
	}
	if t < 0 {
		return RayHit{}, false
	}

	point := ray.At(t)
	return RayHit{Distance: t, Plane: NewPlane(rl.Vector3Subtract(point, s.Center), point)}, true
}

func (s Sphere) OverlapsSphere(o Sphere) bool {
	d := rl.Vector3Subtract(o.Center, s.Center)
	r := s.Radius + o.Radius
	return rl.Vector3DotProduct(d, d) <= r*r
}

func (s Sphere) OverlapsFrustum(f Frustum) bool {
	return f.ContainsSphere(s.Center, s.Radius)
}

func (s Sphere) ClassifyPlane(p Plane) PlaneSide {
	return classifyDistance(p.Distance(s.Center), s.Radius)
}
