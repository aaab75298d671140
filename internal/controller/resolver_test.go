package controller

import (
	"math"
	"math/rand"
	"maze/internal/bsp"
	"maze/internal/physics"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

var testBound = physics.AABB{
	Min: rl.Vector3{X: -60, Y: -60, Z: -60},
	Max: rl.Vector3{X: 60, Y: 60, Z: 60},
}

// plane returns a large quad perpendicular to axis at the given coordinate.
func plane(name string, axis int, at float32) *physics.Collidable {
	var center, halfX, halfZ rl.Vector3
	switch axis {
	case 0:
		center, halfX, halfZ = rl.Vector3{X: at}, rl.Vector3{Z: 50}, rl.Vector3{Y: 50}
	case 1:
		center, halfX, halfZ = rl.Vector3{Y: at}, rl.Vector3{X: 50}, rl.Vector3{Z: 50}
	default:
		center, halfX, halfZ = rl.Vector3{Z: at}, rl.Vector3{Y: 50}, rl.Vector3{X: 50}
	}
	return physics.NewCollidable(name, physics.QuadBoundary(physics.NewQuadAt(center, halfX, halfZ)))
}

// slope returns a large quad through the origin tilted by degrees around Z.
func slope(degrees float64) *physics.Collidable {
	rad := degrees * math.Pi / 180
	halfX := rl.Vector3{X: float32(math.Cos(rad)) * 50, Y: float32(math.Sin(rad)) * 50}
	return physics.NewCollidable("slope", physics.QuadBoundary(
		physics.NewQuadAt(rl.Vector3{}, halfX, rl.Vector3{Z: 50})))
}

func cube(center rl.Vector3, half float32) physics.AABB {
	return physics.NewAABBFromCenter(center, rl.Vector3{X: 2 * half, Y: 2 * half, Z: 2 * half})
}

func tree(t *testing.T, objects ...*physics.Collidable) *bsp.Tree {
	tr, err := bsp.Build(objects, testBound, 8)
	require.NoError(t, err)
	return tr
}

func TestResolveZeroDisplacement(t *testing.T) {
	d, onGround := ResolveMovement(cube(rl.Vector3{}, 0.25), rl.Vector3{}, tree(t, plane("floor", 1, -0.25)))
	require.Equal(t, rl.Vector3{}, d)
	require.False(t, onGround)
}

func TestResolveWithoutCandidates(t *testing.T) {
	want := rl.Vector3{X: 1, Y: -1, Z: 0.5}

	d, onGround := ResolveMovement(cube(rl.Vector3{}, 0.25), want, tree(t, plane("far", 0, 40)))
	require.Equal(t, want, d)
	require.False(t, onGround)

	d, onGround = ResolveMovement(cube(rl.Vector3{}, 0.25), want, nil)
	require.Equal(t, want, d)
	require.False(t, onGround)
}

func TestResolvePureSliding(t *testing.T) {
	idx := tree(t, plane("wall", 0, 1))

	d, onGround := ResolveMovement(cube(rl.Vector3{}, 0.25), rl.Vector3{X: 1}, idx)
	require.Equal(t, rl.Vector3{}, d)
	require.False(t, onGround)

	d, onGround = ResolveMovement(cube(rl.Vector3{}, 0.25), rl.Vector3{X: 1, Z: 0.5}, idx)
	require.Equal(t, rl.Vector3{Z: 0.5}, d)
	require.False(t, onGround)
}

func TestResolveLandsOnFloor(t *testing.T) {
	idx := tree(t, plane("floor", 1, 0))

	d, onGround := ResolveMovement(cube(rl.Vector3{Y: 0.5}, 0.25), rl.Vector3{X: 0.3, Y: -1}, idx)
	require.Equal(t, rl.Vector3{X: 0.3}, d)
	require.True(t, onGround)
}

func TestResolveLeavesTouchedSurface(t *testing.T) {
	idx := tree(t, plane("floor", 1, 0))
	resting := cube(rl.Vector3{Y: 0.25}, 0.25)

	d, onGround := ResolveMovement(resting, rl.Vector3{Y: 1}, idx)
	require.Equal(t, rl.Vector3{Y: 1}, d)
	require.False(t, onGround)

	d, onGround = ResolveMovement(resting, rl.Vector3{X: 0.1, Y: -0.01}, idx)
	require.Equal(t, rl.Vector3{X: 0.1}, d)
	require.True(t, onGround)
}

func TestResolveGroundDetection(t *testing.T) {
	tests := []struct {
		name     string
		surface  *physics.Collidable
		box      physics.AABB
		d        rl.Vector3
		onGround bool
	}{
		{"wall", plane("wall", 0, 1), cube(rl.Vector3{}, 0.25), rl.Vector3{X: 1, Y: -0.1}, false},
		{"ceiling", plane("ceiling", 1, 1), cube(rl.Vector3{}, 0.25), rl.Vector3{Y: 1}, false},
		{"gentle slope", slope(30), cube(rl.Vector3{Y: 0.5}, 0.25), rl.Vector3{Y: -1}, true},
		{"steep slope", slope(60), cube(rl.Vector3{Y: 1}, 0.25), rl.Vector3{Y: -1.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tree(t, tt.surface))
			_, onGround := r.Resolve(tt.box, tt.d)
			require.Len(t, r.Contacts(), 1)
			require.Equal(t, tt.onGround, onGround)
		})
	}
}

func TestResolveSlidesAlongTwoWalls(t *testing.T) {
	r := NewResolver(tree(t, plane("east", 0, 1), plane("north", 2, 1)))

	d, _ := r.Resolve(cube(rl.Vector3{}, 0.25), rl.Vector3{X: 1, Y: 0.5, Z: 1})
	require.Equal(t, rl.Vector3{Y: 0.5}, d)
	require.Len(t, r.Contacts(), 2)
	require.Len(t, r.Candidates(), 2)
}

func TestResolveSkipsDisabledGeometry(t *testing.T) {
	wall := plane("wall", 0, 1)
	idx := tree(t, wall)
	wall.CollisionEnabled = false

	d, _ := ResolveMovement(cube(rl.Vector3{}, 0.25), rl.Vector3{X: 1}, idx)
	require.Equal(t, rl.Vector3{X: 1}, d)
}

func TestResolveNeverPenetratesWall(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const wallX = 5
	idx := tree(t, plane("wall", 0, wallX))

	for i := 0; i < 500; i++ {
		half := 0.1 + r.Float32()*0.9
		center := rl.Vector3{
			X: wallX - half - r.Float32()*4,
			Y: r.Float32()*4 - 2,
			Z: r.Float32()*4 - 2,
		}
		velocity := rl.Vector3{X: 0.01 + r.Float32()*5}

		for step := 0; step < 20; step++ {
			box := cube(center, half)
			d, _ := ResolveMovement(box, velocity, idx)
			center = rl.Vector3Add(center, d)
			require.LessOrEqual(t, center.X+half, float32(wallX+1e-4), "run %d step %d", i, step)
		}
	}
}

// crossesWall reports whether moving box by d pushes a corner through an
// axis-aligned wall that spans the whole test region.
func crossesWall(box physics.AABB, d rl.Vector3, axis int, at float32) bool {
	const eps = 1e-4
	for _, c := range box.Corners() {
		before := physics.AxisValue(c, axis) - at
		after := physics.AxisValue(rl.Vector3Add(c, d), axis) - at
		if (before > eps && after < -eps) || (before < -eps && after > eps) {
			return true
		}
	}
	return false
}

func TestResolveNeverCrossesRandomWalls(t *testing.T) {
	r := rand.New(rand.NewSource(8))

	for i := 0; i < 500; i++ {
		const half = 0.25
		start := rl.Vector3{X: r.Float32()*6 - 3, Y: r.Float32()*6 - 3, Z: r.Float32()*6 - 3}
		box := cube(start, half)

		type wall struct {
			axis int
			at   float32
		}
		var walls []wall
		var objects []*physics.Collidable
		for len(walls) < 1+r.Intn(6) {
			w := wall{axis: r.Intn(3), at: r.Float32()*8 - 4}
			lo := physics.AxisValue(box.Min, w.axis) - 0.01
			hi := physics.AxisValue(box.Max, w.axis) + 0.01
			if w.at > lo && w.at < hi {
				continue
			}
			walls = append(walls, w)
			objects = append(objects, plane("wall", w.axis, w.at))
		}

		d := rl.Vector3{X: r.Float32()*6 - 3, Y: r.Float32()*6 - 3, Z: r.Float32()*6 - 3}
		res := NewResolver(tree(t, objects...))
		got, _ := res.Resolve(box, d)

		require.LessOrEqual(t, len(res.Contacts()), MaxDeflections)
		for _, w := range walls {
			require.False(t, crossesWall(box, got, w.axis, w.at),
				"run %d: moving %v by %v crosses wall %+v", i, start, got, w)
		}
	}
}
