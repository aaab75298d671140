package world

import (
	"io"
	"maze/internal/bsp"
	"maze/internal/physics"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

const ErrTypeInvalidLevel = "world_invalid_level"

// Config describes a level to generate.
type Config struct {
	Dimensions

	// Size is the number of cells along each side of the maze.
	Size int
	Seed int64
	// MaxDepth is the depth budget of the level's BSP tree.
	MaxDepth int
	// Shell wraps the level in a static box that keeps movers inside.
	Shell bool
}

// DefaultConfig returns the settings used by the game.
func DefaultConfig() Config {
	return Config{
		Dimensions: Dimensions{TileSize: 1, WallHeight: 1},
		Size:       10,
		Seed:       1,
		MaxDepth:   8,
		Shell:      true,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Size < 1:
		return errors.New("maze must have at least one cell").
			WithType(ErrTypeInvalidLevel).
			WithTag("size", c.Size)
	case c.TileSize <= 0 || c.WallHeight <= 0:
		return errors.New("tile dimensions must be positive").
			WithType(ErrTypeInvalidLevel).
			WithTag("tile_size", c.TileSize).
			WithTag("wall_height", c.WallHeight)
	case c.MaxDepth < 0:
		return errors.New("negative tree depth").
			WithType(ErrTypeInvalidLevel).
			WithTag("max_depth", c.MaxDepth)
	}
	return nil
}

// Level is a generated maze with its collision geometry.
type Level struct {
	ID     uuid.UUID
	Config Config
	Maze   *Maze
	Tiles  []*Tile
	Bound  physics.AABB
	// Shell is nil when the config disables it.
	Shell *physics.Collidable

	panels  []*physics.Collidable
	objects []*physics.Collidable
	tree    *bsp.Tree
}

// NewLevel generates a maze from conf and indexes its geometry.
func NewLevel(conf Config) (*Level, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return NewLevelFromMaze(GenerateMaze(conf.Size, conf.Seed), conf)
}

// NewLevelFromMaze builds the geometry of an existing maze. conf.Size is
// taken from m.
func NewLevelFromMaze(m *Maze, conf Config) (*Level, error) {
	conf.Size = m.Size
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	l := &Level{
		ID:     uuid.New(),
		Config: conf,
		Maze:   m,
		Bound:  levelBound(m.Size, conf.Dimensions),
	}

	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			t := NewTile(x, y, conf.Dimensions, m.Walls(x, y))
			l.Tiles = append(l.Tiles, t)
			l.panels = append(l.panels, t.Collidables()...)
		}
	}

	l.objects = append(l.objects, l.panels...)
	if conf.Shell {
		l.Shell = &physics.Collidable{
			Name:             "shell",
			Boundary:         physics.BoxBoundary(l.Bound),
			CollisionEnabled: true,
			IsStatic:         true,
		}
		l.objects = append(l.objects, l.Shell)
	}

	if err := l.Rebuild(conf.MaxDepth); err != nil {
		return nil, err
	}

	stats := l.tree.Stats()
	logs.WithTag("level_id", l.ID).
		WithTag("size", m.Size).
		WithTag("seed", conf.Seed).
		WithTag("panels", len(l.panels)).
		WithTag("nodes", stats.Nodes).
		WithTag("depth", stats.Depth).
		WithTag("duration", time.Since(start)).
		Info("level generated")

	return l, nil
}

// levelBound is the box around every cell, padded by half a tile.
func levelBound(size int, dims Dimensions) physics.AABB {
	pad := dims.TileSize / 2
	half := dims.TileSize/2 + pad
	far := TileCenter(size-1, size-1, dims)

	return physics.AABB{
		Min: rl.Vector3{X: -half, Y: -dims.WallHeight/2 - pad, Z: far.Z - half},
		Max: rl.Vector3{X: far.X + half, Y: dims.WallHeight/2 + pad, Z: half},
	}
}

// Rebuild replaces the level's tree with one built with a new depth budget.
func (l *Level) Rebuild(maxDepth int) error {
	tree, err := bsp.Build(l.objects, l.Bound, maxDepth)
	if err != nil {
		return errors.New("building level tree failed").
			WithType(ErrTypeInvalidLevel).
			WithTag("level_id", l.ID).
			Wrap(err)
	}
	l.tree = tree
	l.Config.MaxDepth = maxDepth
	return nil
}

func (l *Level) Tree() *bsp.Tree {
	return l.tree
}

// Objects returns every collidable in the level, the shell last.
func (l *Level) Objects() []*physics.Collidable {
	return l.objects
}

// Panels returns the tile quads.
func (l *Level) Panels() []*physics.Collidable {
	return l.panels
}

// Near returns the enabled collidables overlapping s.
func (l *Level) Near(s physics.Sphere) []*physics.Collidable {
	return l.tree.OverlapsSphere(s)
}

// AppendOverlapsSphere lets a level serve as a movement index. Rebuilding the
// level takes effect on the next call.
func (l *Level) AppendOverlapsSphere(dst []*physics.Collidable, s physics.Sphere) []*physics.Collidable {
	return l.tree.AppendOverlapsSphere(dst, s)
}

// Raycast returns the nearest enabled collidable hit by ray.
func (l *Level) Raycast(ray physics.Ray, maxDistance float32) (physics.RaycastHit, bool) {
	return l.tree.Raycast(ray, maxDistance)
}

// Visible appends to dst the panels inside f, whether or not they collide.
func (l *Level) Visible(dst []*physics.Collidable, f physics.Frustum) []*physics.Collidable {
	for _, p := range l.panels {
		if p.Boundary.OverlapsFrustum(f) {
			dst = append(dst, p)
		}
	}
	return dst
}

// SetWallsEnabled switches collision of every wall panel.
func (l *Level) SetWallsEnabled(enabled bool) {
	for _, t := range l.Tiles {
		for _, w := range t.WallList() {
			w.CollisionEnabled = enabled
		}
	}
}

// Spawn returns the centre of the first cell.
func (l *Level) Spawn() rl.Vector3 {
	return TileCenter(0, 0, l.Config.Dimensions)
}

// WriteSnapshot dumps the level's tree as JSON.
func (l *Level) WriteSnapshot(w io.Writer) error {
	return l.tree.WriteSnapshot(w, l.ID.String())
}
