package controller

import (
	"math"
	"maze/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is one frame of movement intent.
type Input struct {
	// Direction is the wished horizontal direction. It does not need to be
	// normalized; zero means no movement.
	Direction rl.Vector3
	// Forward is the horizontal look direction, used when a dash starts
	// without a movement direction.
	Forward rl.Vector3
	Jump    bool
	Dash    bool
}

// CharacterController moves a box through level geometry with walking,
// jumping, dashing and gravity. Position is the eye point; Hitbox is relative
// to it.
type CharacterController struct {
	Position rl.Vector3
	Velocity rl.Vector3
	Hitbox   physics.AABB

	// Configuration
	WalkSpeed    float32 // Units per second
	JumpHeight   float32 // Apex height of a jump from rest
	Gravity      float32 // Gravity strength (positive = down)
	DashDuration float32 // Seconds
	DashBoost    float32 // Extra speed multiplier at the start of a dash

	onGround  bool
	dashing   bool
	dashTime  float32
	dashDir   rl.Vector3
	resolver  *Resolver
	lastMoved rl.Vector3
}

// NewCharacterController creates a character controller with defaults
func NewCharacterController(index Index, position rl.Vector3) *CharacterController {
	return &CharacterController{
		Position: position,
		Hitbox: physics.AABB{
			Min: rl.Vector3{X: -0.05, Y: -1.7, Z: -0.05},
			Max: rl.Vector3{X: 0.05, Y: 0.1, Z: 0.05},
		},
		WalkSpeed:    8,
		JumpHeight:   3,
		Gravity:      9.8,
		DashDuration: 0.25,
		DashBoost:    2,
		resolver:     NewResolver(index),
	}
}

// Bounds returns the hitbox in world space.
func (c *CharacterController) Bounds() physics.AABB {
	return c.Hitbox.Translate(c.Position)
}

func (c *CharacterController) IsGrounded() bool {
	return c.onGround
}

func (c *CharacterController) IsDashing() bool {
	return c.dashing
}

// LastMove returns the displacement applied by the last Update.
func (c *CharacterController) LastMove() rl.Vector3 {
	return c.lastMoved
}

// Resolver returns the resolver used for collision, for debug views.
func (c *CharacterController) Resolver() *Resolver {
	return c.resolver
}

// SetIndex swaps the geometry the controller collides with.
func (c *CharacterController) SetIndex(index Index) {
	c.resolver.Index = index
}

// Update advances the character by deltaTime seconds.
func (c *CharacterController) Update(in Input, deltaTime float32) {
	c.updateVelocity(in, deltaTime)

	accel := rl.Vector3{Y: -c.Gravity * deltaTime}
	// Integrate with constant acceleration over the frame.
	motion := rl.Vector3Add(
		rl.Vector3Scale(c.Velocity, deltaTime),
		rl.Vector3Scale(accel, deltaTime/2))

	moved, grounded := c.resolver.Resolve(c.Bounds(), motion)
	if !physics.IsZero(motion) {
		c.onGround = grounded
	}

	c.Velocity = rl.Vector3Add(c.Velocity, accel)
	if deltaTime != 0 {
		// Velocity lost against surfaces is removed too.
		c.Velocity = rl.Vector3Add(c.Velocity,
			rl.Vector3Scale(rl.Vector3Subtract(moved, motion), 1/deltaTime))
	}

	c.Position = rl.Vector3Add(c.Position, moved)
	c.lastMoved = moved
}

func (c *CharacterController) updateVelocity(in Input, deltaTime float32) {
	speed := c.WalkSpeed
	wish := horizontal(in.Direction)

	if c.onGround {
		c.Velocity = rl.Vector3{Y: c.Velocity.Y}
	}

	if in.Jump && c.onGround {
		c.Velocity.Y += float32(math.Sqrt(float64(2 * c.JumpHeight * c.Gravity)))
	}

	if in.Dash && !c.dashing && c.DashDuration > 0 {
		c.dashing = true
		c.dashTime = 0
		c.dashDir = wish
		if physics.IsZero(c.dashDir) {
			c.dashDir = horizontal(in.Forward)
		}
	}

	if c.dashing {
		wish = c.dashDir
		t := c.dashTime / c.DashDuration
		speed *= 1 + c.DashBoost*(1-t)
		c.dashTime += deltaTime
		if c.dashTime >= c.DashDuration {
			c.dashing = false
		}
	}

	if !physics.IsZero(wish) {
		wish = rl.Vector3Scale(rl.Vector3Normalize(wish), speed)
	}
	c.Velocity = rl.Vector3Add(c.Velocity, wish)

	// Clamp horizontal speed, keep vertical velocity untouched.
	length := float32(math.Sqrt(float64(c.Velocity.X*c.Velocity.X + c.Velocity.Z*c.Velocity.Z)))
	if length > speed {
		c.Velocity.X *= speed / length
		c.Velocity.Z *= speed / length
	}
}

func horizontal(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Z: v.Z}
}
