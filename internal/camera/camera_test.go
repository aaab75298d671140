package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b rl.Vector3) bool {
	return rl.Vector3Length(rl.Vector3Subtract(a, b)) < 1e-5
}

func TestLookClampsPitch(t *testing.T) {
	c := New()
	c.Look(rl.Vector2{X: 100, Y: -5000})

	if c.Pitch != 89 {
		t.Errorf("Expected pitch 89, got %f", c.Pitch)
	}
	if c.Yaw != -80 {
		t.Errorf("Expected yaw -80, got %f", c.Yaw)
	}

	c.Look(rl.Vector2{Y: 5000})
	if c.Pitch != -89 {
		t.Errorf("Expected pitch -89, got %f", c.Pitch)
	}
}

func TestWish(t *testing.T) {
	c := New()

	tests := []struct {
		name                       string
		forward, back, left, right bool
		want                       rl.Vector3
	}{
		{"none", false, false, false, false, rl.Vector3{}},
		{"forward", true, false, false, false, rl.Vector3{Z: -1}},
		{"back", false, true, false, false, rl.Vector3{Z: 1}},
		{"right", false, false, false, true, rl.Vector3{X: 1}},
		{"left", false, false, true, false, rl.Vector3{X: -1}},
		{"opposite keys cancel", true, true, false, false, rl.Vector3{}},
		{"diagonal", true, false, false, true, rl.Vector3{X: 0.70710677, Z: -0.70710677}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Wish(tt.forward, tt.back, tt.left, tt.right)
			if !near(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCameraLooksAlongYawAndPitch(t *testing.T) {
	c := New()
	eye := rl.Vector3{X: 1, Y: 2, Z: 3}

	cam := c.Camera(eye)
	if cam.Position != eye {
		t.Errorf("Expected position %v, got %v", eye, cam.Position)
	}
	if dir := rl.Vector3Subtract(cam.Target, eye); !near(dir, rl.Vector3{Z: -1}) {
		t.Errorf("Expected to look down -Z, got %v", dir)
	}

	c.Pitch = 89
	if dir := rl.Vector3Subtract(c.Camera(eye).Target, eye); dir.Y < 0.99 {
		t.Errorf("Expected to look up, got %v", dir)
	}
}
