package world

import (
	"fmt"
	"maze/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Dimensions sets the size of a maze cell.
type Dimensions struct {
	TileSize   float32 // Width of a cell on X and Z
	WallHeight float32 // Distance between floor and ceiling
}

// Tile is the geometry of one maze cell. Panel normals face into the cell.
type Tile struct {
	X, Y    int
	Center  rl.Vector3
	Floor   *physics.Collidable
	Ceiling *physics.Collidable
	// Walls is indexed like sides: Up, Right, Down, Left. Missing walls are
	// nil.
	Walls [4]*physics.Collidable
}

// TileCenter returns the world position of cell (x, y). Grid Y grows towards
// -Z.
func TileCenter(x, y int, dims Dimensions) rl.Vector3 {
	return rl.Vector3{X: float32(x) * dims.TileSize, Z: -float32(y) * dims.TileSize}
}

// NewTile builds the floor, the ceiling and the given walls of cell (x, y).
func NewTile(x, y int, dims Dimensions, walls Direction) *Tile {
	c := TileCenter(x, y, dims)
	s := dims.TileSize / 2
	h := dims.WallHeight / 2

	t := &Tile{X: x, Y: y, Center: c}
	t.Floor = t.panel("floor", rl.Vector3{X: c.X, Y: c.Y - h, Z: c.Z}, rl.Vector3{X: s}, rl.Vector3{Z: s})
	t.Ceiling = t.panel("ceiling", rl.Vector3{X: c.X, Y: c.Y + h, Z: c.Z}, rl.Vector3{Z: s}, rl.Vector3{X: s})

	for i, side := range sides {
		if !walls.Has(side) {
			continue
		}
		name := "wall_" + side.String()
		switch side {
		case Up:
			t.Walls[i] = t.panel(name, rl.Vector3{X: c.X, Y: c.Y, Z: c.Z - s}, rl.Vector3{Y: h}, rl.Vector3{X: s})
		case Right:
			t.Walls[i] = t.panel(name, rl.Vector3{X: c.X + s, Y: c.Y, Z: c.Z}, rl.Vector3{Y: h}, rl.Vector3{Z: s})
		case Down:
			t.Walls[i] = t.panel(name, rl.Vector3{X: c.X, Y: c.Y, Z: c.Z + s}, rl.Vector3{X: s}, rl.Vector3{Y: h})
		case Left:
			t.Walls[i] = t.panel(name, rl.Vector3{X: c.X - s, Y: c.Y, Z: c.Z}, rl.Vector3{Z: s}, rl.Vector3{Y: h})
		}
	}
	return t
}

func (t *Tile) panel(name string, center, halfX, halfZ rl.Vector3) *physics.Collidable {
	q := physics.NewQuadAt(center, halfX, halfZ)
	return physics.NewCollidable(fmt.Sprintf("tile_%d_%d_%s", t.X, t.Y, name), physics.QuadBoundary(q))
}

// WallList returns the existing walls.
func (t *Tile) WallList() []*physics.Collidable {
	var walls []*physics.Collidable
	for _, w := range t.Walls {
		if w != nil {
			walls = append(walls, w)
		}
	}
	return walls
}

// Collidables returns every panel of the tile, walls first.
func (t *Tile) Collidables() []*physics.Collidable {
	return append(t.WallList(), t.Floor, t.Ceiling)
}
