package world

import (
	"maze/internal/controller"
	"maze/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Player is the first-person mover. Its hitbox and speeds scale with the
// level's tiles so it fits the corridors.
type Player struct {
	*controller.CharacterController

	// EyeHeight is the distance from the hitbox bottom to the eye.
	EyeHeight float32
}

// NewPlayer creates a player standing in the first cell of level.
func NewPlayer(level *Level) *Player {
	p := &Player{CharacterController: controller.NewCharacterController(level, rl.Vector3{})}
	p.Spawn(level)
	return p
}

// Spawn resizes the player for level and places it in the first cell with
// its feet just above the floor.
func (p *Player) Spawn(level *Level) {
	dims := level.Config.Dimensions
	width := dims.TileSize * 0.15
	p.EyeHeight = dims.WallHeight * 0.6

	p.Hitbox = physics.AABB{
		Min: rl.Vector3{X: -width, Y: -p.EyeHeight, Z: -width},
		Max: rl.Vector3{X: width, Y: dims.WallHeight * 0.15, Z: width},
	}
	p.WalkSpeed = dims.TileSize * 3
	p.JumpHeight = dims.WallHeight * 0.15

	spawn := level.Spawn()
	spawn.Y += -dims.WallHeight/2 + p.EyeHeight + dims.WallHeight*0.01
	p.Position = spawn
	p.Velocity = rl.Vector3{}
	p.SetIndex(level)
}

// Feet returns the point under the player's eye at hitbox bottom.
func (p *Player) Feet() rl.Vector3 {
	return rl.Vector3{X: p.Position.X, Y: p.Position.Y - p.EyeHeight, Z: p.Position.Z}
}
