package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func unitBox() AABB {
	return AABB{Min: rl.Vector3{}, Max: rl.Vector3{X: 1, Y: 1, Z: 1}}
}

func TestNewAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1, Y: 2, Z: 3}, rl.Vector3{X: 2, Y: 4, Z: 6})

	if box.Min != (rl.Vector3{X: 0, Y: 0, Z: 0}) {
		t.Errorf("Expected min (0,0,0), got %v", box.Min)
	}
	if box.Max != (rl.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Expected max (2,4,6), got %v", box.Max)
	}
	if box.HalfExtents() != (rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Expected half extents (1,2,3), got %v", box.HalfExtents())
	}
}

func TestAABBContainsIsStrict(t *testing.T) {
	box := unitBox()

	if !box.Contains(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}) {
		t.Error("Center should be inside the box")
	}
	if box.Contains(rl.Vector3{X: 0, Y: 0.5, Z: 0.5}) {
		t.Error("Point on a face should not be inside the box")
	}
	if box.Contains(rl.Vector3{X: 2, Y: 0.5, Z: 0.5}) {
		t.Error("Point outside should not be inside the box")
	}
}

func TestAABBCorners(t *testing.T) {
	box := unitBox()

	if box.Corner(0) != box.Min {
		t.Errorf("Expected corner 0 to be min, got %v", box.Corner(0))
	}
	if box.Corner(7) != box.Max {
		t.Errorf("Expected corner 7 to be max, got %v", box.Corner(7))
	}

	seen := map[rl.Vector3]bool{}
	for _, c := range box.Corners() {
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected 8 distinct corners, got %d", len(seen))
	}
}

func TestAABBSplit(t *testing.T) {
	front, back := unitBox().Split(0, 0.25)

	if front.Min.X != 0.25 || front.Max.X != 1 {
		t.Errorf("Expected front X range [0.25, 1], got [%v, %v]", front.Min.X, front.Max.X)
	}
	if back.Min.X != 0 || back.Max.X != 0.25 {
		t.Errorf("Expected back X range [0, 0.25], got [%v, %v]", back.Min.X, back.Max.X)
	}
	if front.Max.Y != 1 || back.Max.Z != 1 {
		t.Error("Split should only change the split axis")
	}
}

func TestAABBRayEntersNearFace(t *testing.T) {
	ray := Ray{Origin: rl.Vector3{X: -1, Y: 0.5, Z: 0.5}, Direction: rl.Vector3{X: 2}}

	hit, ok := unitBox().IntersectsRay(ray)
	if !ok {
		t.Fatal("Expected ray to hit the box")
	}
	if hit.Distance != 0.5 {
		t.Errorf("Expected distance 0.5, got %v", hit.Distance)
	}
	if hit.Plane.Normal != (rl.Vector3{X: -1}) {
		t.Errorf("Expected normal (-1,0,0), got %v", hit.Plane.Normal)
	}
	if d := hit.Plane.Distance(ray.At(hit.Distance)); abs(d) > 1e-6 {
		t.Errorf("Hit point should lie on the reported plane, distance %v", d)
	}
}

func TestAABBRayFromInsideReportsExit(t *testing.T) {
	ray := Ray{Origin: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, Direction: rl.Vector3{Y: 1}}

	hit, ok := unitBox().IntersectsRay(ray)
	if !ok {
		t.Fatal("Expected ray from inside to hit the box")
	}
	if hit.Distance != 0.5 {
		t.Errorf("Expected exit distance 0.5, got %v", hit.Distance)
	}
	if hit.Plane.Normal != (rl.Vector3{Y: 1}) || hit.Plane.D != -1 {
		t.Errorf("Expected top face plane, got %+v", hit.Plane)
	}
}

func TestAABBRayMisses(t *testing.T) {
	box := unitBox()
	tests := []struct {
		name string
		ray  Ray
	}{
		{"parallel outside slab", Ray{Origin: rl.Vector3{X: 2, Y: 0.5, Z: 0.5}, Direction: rl.Vector3{Y: 1}}},
		{"pointing away", Ray{Origin: rl.Vector3{X: 2, Y: 0.5, Z: 0.5}, Direction: rl.Vector3{X: 1}}},
		{"passing beside", Ray{Origin: rl.Vector3{X: -1, Y: 2, Z: 0.5}, Direction: rl.Vector3{X: 1}}},
		{"zero direction", Ray{Origin: rl.Vector3{X: -1, Y: 0.5, Z: 0.5}}},
	}

	for _, tt := range tests {
		if _, ok := box.IntersectsRay(tt.ray); ok {
			t.Errorf("%s: expected no hit", tt.name)
		}
	}
}

func TestAABBOverlapsSphere(t *testing.T) {
	box := unitBox()

	if !box.OverlapsSphere(Sphere{Center: rl.Vector3{X: 2, Y: 0.5, Z: 0.5}, Radius: 1}) {
		t.Error("Touching sphere should overlap")
	}
	if box.OverlapsSphere(Sphere{Center: rl.Vector3{X: 2, Y: 0.5, Z: 0.5}, Radius: 0.99}) {
		t.Error("Separated sphere should not overlap")
	}
	if !box.OverlapsSphere(Sphere{Center: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, Radius: 0.01}) {
		t.Error("Sphere inside the box should overlap")
	}
}

func TestAABBClassifyPlane(t *testing.T) {
	box := unitBox()
	tests := []struct {
		plane Plane
		want  PlaneSide
	}{
		{AxisPlane(0, 2), Back},
		{AxisPlane(0, -1), Front},
		{AxisPlane(0, 1), Intersecting},
		{AxisPlane(1, 0.5), Intersecting},
		{NewPlane(rl.Vector3{X: 1, Y: 1}, rl.Vector3{X: 3}), Back},
	}

	for _, tt := range tests {
		if got := box.ClassifyPlane(tt.plane); got != tt.want {
			t.Errorf("Expected %v for plane %+v, got %v", tt.want, tt.plane, got)
		}
	}
}
