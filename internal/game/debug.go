package game

import (
	"fmt"

	"github.com/aukilabs/go-tooling/pkg/logs"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxTreeDepth = 16

// DebugPanel is the raygui overlay for inspecting and tuning the level's
// tree while playing.
type DebugPanel struct {
	Visible bool
	// NoClip disables collision with every wall.
	NoClip bool

	game  *Game
	depth float32
}

func NewDebugPanel(g *Game) *DebugPanel {
	return &DebugPanel{game: g, depth: float32(g.Level.Config.MaxDepth)}
}

// SetNoClip switches wall collision of the current level.
func (p *DebugPanel) SetNoClip(on bool) {
	p.NoClip = on
	p.game.Level.SetWallsEnabled(!on)
}

// Depth is the depth budget selected on the slider.
func (p *DebugPanel) Depth() int {
	return int(p.depth + 0.5)
}

func (p *DebugPanel) SetDepth(depth int) {
	p.depth = float32(min(max(depth, 0), maxTreeDepth))
}

// Rebuild applies the selected depth budget.
func (p *DebugPanel) Rebuild() error {
	return p.game.SetMaxDepth(p.Depth())
}

func (p *DebugPanel) Draw() {
	const width, rowHeight = 240, 26
	x := float32(rl.GetScreenWidth()) - width - 10
	y := float32(10)
	r := p.game.Renderer

	rl.DrawRectangle(int32(x)-8, int32(y)-4, width+16, rowHeight*11, colorBgPanel)

	row := func() rl.Rectangle {
		b := rl.Rectangle{X: x, Y: y, Width: width, Height: rowHeight - 6}
		y += rowHeight
		return b
	}
	check := func(text string, val bool) bool {
		b := row()
		return gui.CheckBox(rl.Rectangle{X: b.X, Y: b.Y, Width: b.Height, Height: b.Height}, text, val)
	}

	r.ShowTree = check("Show tree", r.ShowTree)
	r.ShowCandidates = check("Show candidates", r.ShowCandidates)
	if noClip := check("Walls off", p.NoClip); noClip != p.NoClip {
		p.SetNoClip(noClip)
	}

	gui.Label(row(), "Overlay depth")
	r.TreeDepth = int(gui.Slider(row(), "", fmt.Sprintf("%d", r.TreeDepth), float32(r.TreeDepth), 0, maxTreeDepth) + 0.5)

	gui.Label(row(), "Tree depth budget")
	p.depth = gui.Slider(row(), "", fmt.Sprintf("%d", p.Depth()), p.depth, 0, maxTreeDepth)

	if gui.Button(row(), "Rebuild tree") {
		if err := p.Rebuild(); err != nil {
			logs.Error(err)
		}
	}
	if gui.Button(row(), "New maze") {
		if err := p.game.Regenerate(p.game.Config.Level.Seed + 1); err != nil {
			logs.Error(err)
		}
	}

	stats := p.game.Level.Tree().Stats()
	gui.Label(row(), fmt.Sprintf("Nodes %d  Leaves %d  Depth %d", stats.Nodes, stats.Leaves, stats.Depth))
}
