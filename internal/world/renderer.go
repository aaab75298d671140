package world

import (
	"maze/internal/bsp"
	"maze/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	NearPlane float32 = 0.01
	FarPlane  float32 = 1000.0
)

// Renderer draws a level with flat shaded panels and optional debug overlays.
type Renderer struct {
	ShowTree       bool
	ShowCandidates bool
	// TreeDepth limits the tree overlay to nodes at most this deep.
	TreeDepth int

	visible []*physics.Collidable
	marked  map[*physics.Collidable]bool
}

func NewRenderer() *Renderer {
	return &Renderer{
		TreeDepth: 4,
		marked:    make(map[*physics.Collidable]bool),
	}
}

// Draw renders the panels of level seen by camera. candidates are
// highlighted when ShowCandidates is set. It returns the number of panels
// drawn. Must be called between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(level *Level, camera rl.Camera3D, aspect float32, candidates []*physics.Collidable) int {
	frustum := physics.FrustumFromCamera(camera, aspect, NearPlane, FarPlane)
	r.visible = level.Visible(r.visible[:0], frustum)

	clear(r.marked)
	if r.ShowCandidates {
		for _, c := range candidates {
			r.marked[c] = true
		}
	}

	rl.BeginMode3D(camera)
	rl.DisableBackfaceCulling()

	for _, p := range r.visible {
		q, ok := p.Boundary.Quad()
		if !ok {
			continue
		}
		col := panelColor(q)
		switch {
		case r.marked[p]:
			col = rl.Red
		case !p.CollisionEnabled:
			col = rl.Fade(col, 0.35)
		}
		drawQuad(q, col)
	}

	if r.ShowTree {
		r.drawTree(level.Tree())
	}

	rl.EnableBackfaceCulling()
	rl.EndMode3D()

	return len(r.visible)
}

func (r *Renderer) drawTree(tree *bsp.Tree) {
	tree.Walk(func(n *bsp.Node, depth int) bool {
		if depth > r.TreeDepth {
			return true
		}
		col := depthColor(depth)
		rl.DrawCubeWiresV(n.Box.Center(), n.Box.Size(), rl.Fade(col, 0.4))
		if !n.IsLeaf() {
			drawSplit(n, col)
		}
		return true
	})
}

// drawSplit outlines the part of a node's splitting plane inside its box.
func drawSplit(n *bsp.Node, col rl.Color) {
	at := -n.Plane.D
	min, max := n.Box.Min, n.Box.Max
	var c [4]rl.Vector3

	switch n.Axis {
	case 0:
		c = [4]rl.Vector3{{X: at, Y: min.Y, Z: min.Z}, {X: at, Y: max.Y, Z: min.Z}, {X: at, Y: max.Y, Z: max.Z}, {X: at, Y: min.Y, Z: max.Z}}
	case 1:
		c = [4]rl.Vector3{{X: min.X, Y: at, Z: min.Z}, {X: max.X, Y: at, Z: min.Z}, {X: max.X, Y: at, Z: max.Z}, {X: min.X, Y: at, Z: max.Z}}
	default:
		c = [4]rl.Vector3{{X: min.X, Y: min.Y, Z: at}, {X: max.X, Y: min.Y, Z: at}, {X: max.X, Y: max.Y, Z: at}, {X: min.X, Y: max.Y, Z: at}}
	}

	for i := range c {
		rl.DrawLine3D(c[i], c[(i+1)%4], col)
	}
	rl.DrawTriangle3D(c[0], c[1], c[2], rl.Fade(col, 0.15))
	rl.DrawTriangle3D(c[0], c[2], c[3], rl.Fade(col, 0.15))
}

func drawQuad(q physics.Quad, col rl.Color) {
	c := q.Corners()
	rl.DrawTriangle3D(c[0], c[1], c[2], col)
	rl.DrawTriangle3D(c[0], c[2], c[3], col)

	edge := rl.ColorBrightness(col, -0.4)
	for i := range c {
		rl.DrawLine3D(c[i], c[(i+1)%4], edge)
	}
}

// panelColor shades a panel by its facing so corridors read without lights.
func panelColor(q physics.Quad) rl.Color {
	n := q.Normal()
	switch {
	case n.Y > 0.5:
		return rl.DarkGray
	case n.Y < -0.5:
		return rl.Gray
	case n.X > 0.5 || n.X < -0.5:
		return rl.Beige
	default:
		return rl.Brown
	}
}

var depthColors = []rl.Color{rl.Yellow, rl.Orange, rl.Lime, rl.SkyBlue, rl.Purple, rl.Pink}

func depthColor(depth int) rl.Color {
	return depthColors[depth%len(depthColors)]
}
