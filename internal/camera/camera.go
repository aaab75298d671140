package camera

import (
	"math"
	"maze/internal/controller"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSCamera turns mouse and keyboard input into a view direction and a
// movement wish. It does not move anything itself.
type FPSCamera struct {
	Yaw       float32
	Pitch     float32
	LookSpeed float32
	Fovy      float32
}

func New() *FPSCamera {
	return &FPSCamera{
		Yaw:       -90.0, // Looking down -Z, into the maze
		Pitch:     0,
		LookSpeed: 0.1,
		Fovy:      70,
	}
}

// Update reads this frame's input.
func (c *FPSCamera) Update() controller.Input {
	c.Look(rl.GetMouseDelta())

	return controller.Input{
		Direction: c.Wish(
			rl.IsKeyDown(rl.KeyW), rl.IsKeyDown(rl.KeyS),
			rl.IsKeyDown(rl.KeyA), rl.IsKeyDown(rl.KeyD)),
		Forward: c.Forward(),
		Jump:    rl.IsKeyPressed(rl.KeySpace),
		Dash:    rl.IsKeyPressed(rl.KeyLeftShift),
	}
}

// Look turns the camera by a mouse delta in pixels.
func (c *FPSCamera) Look(delta rl.Vector2) {
	c.Yaw += delta.X * c.LookSpeed
	c.Pitch -= delta.Y * c.LookSpeed

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Wish returns the unit horizontal direction for the pressed movement keys,
// or zero.
func (c *FPSCamera) Wish(forward, back, left, right bool) rl.Vector3 {
	f, r := c.Forward(), c.Right()

	var dir rl.Vector3
	if forward {
		dir = rl.Vector3Add(dir, f)
	}
	if back {
		dir = rl.Vector3Subtract(dir, f)
	}
	if right {
		dir = rl.Vector3Add(dir, r)
	}
	if left {
		dir = rl.Vector3Subtract(dir, r)
	}

	// Normalize diagonal movement so you don't go faster diagonally
	if rl.Vector3Length(dir) < 1e-6 {
		return rl.Vector3{}
	}
	return rl.Vector3Normalize(dir)
}

// Forward is the horizontal look direction.
func (c *FPSCamera) Forward() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	return rl.Vector3{X: float32(math.Cos(yawRad)), Z: float32(math.Sin(yawRad))}
}

// Right is the horizontal direction to the right of Forward.
func (c *FPSCamera) Right() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	return rl.Vector3{X: float32(-math.Sin(yawRad)), Z: float32(math.Cos(yawRad))}
}

// Camera builds the raylib camera for an eye at position.
func (c *FPSCamera) Camera(position rl.Vector3) rl.Camera3D {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	target := rl.Vector3{
		X: position.X + float32(math.Cos(yawRad)*math.Cos(pitchRad)),
		Y: position.Y + float32(math.Sin(pitchRad)),
		Z: position.Z + float32(math.Sin(yawRad)*math.Cos(pitchRad)),
	}

	return rl.Camera3D{
		Position:   position,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
