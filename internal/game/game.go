package game

import (
	"context"
	"fmt"
	"maze/internal/camera"
	"maze/internal/controller"
	"maze/internal/world"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config is the window and level setup of a game.
type Config struct {
	Width     int32
	Height    int32
	TargetFPS int32
	Level     world.Config
}

type Game struct {
	Config   Config
	Level    *world.Level
	Player   *world.Player
	Camera   *camera.FPSCamera
	Renderer *world.Renderer
	Debug    *DebugPanel

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
	drawn    int
}

// New generates the level and places the player. It does not open a window.
func New(conf Config) (*Game, error) {
	level, err := world.NewLevel(conf.Level)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Config:   conf,
		Level:    level,
		Player:   world.NewPlayer(level),
		Camera:   camera.New(),
		Renderer: world.NewRenderer(),
	}
	g.Debug = NewDebugPanel(g)
	return g, nil
}

// Run opens the window and loops until it is closed or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(g.Config.Width, g.Config.Height, "Maze")
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.TargetFPS)
	rl.DisableCursor()
	initRayguiStyle()

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		g.handleKeys()

		start := time.Now()
		var in controller.Input
		if !g.Debug.Visible {
			in = g.Camera.Update()
		}
		g.Update(in, rl.GetFrameTime())
		g.updateMs = float64(time.Since(start).Microseconds()) / 1000.0

		g.Draw()
	}
	return nil
}

func (g *Game) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF1) {
		g.Debug.Visible = !g.Debug.Visible
		if g.Debug.Visible {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		if err := g.Regenerate(g.Config.Level.Seed + 1); err != nil {
			logs.Error(err)
		}
	}
}

// Update advances the player by one frame.
func (g *Game) Update(in controller.Input, deltaTime float32) {
	// Long frames would push the mover through several cells at once.
	const maxStep = 1.0 / 20
	if deltaTime > maxStep {
		deltaTime = maxStep
	}
	g.Player.Update(in, deltaTime)
}

// Regenerate replaces the level with a new maze and respawns the player.
func (g *Game) Regenerate(seed int64) error {
	conf := g.Config.Level
	conf.Seed = seed
	conf.MaxDepth = g.Level.Config.MaxDepth

	level, err := world.NewLevel(conf)
	if err != nil {
		return err
	}

	g.Config.Level = conf
	g.Level = level
	g.Player.Spawn(level)
	g.Level.SetWallsEnabled(!g.Debug.NoClip)
	return nil
}

// SetMaxDepth rebuilds the level's tree with a new depth budget.
func (g *Game) SetMaxDepth(maxDepth int) error {
	if err := g.Level.Rebuild(maxDepth); err != nil {
		return err
	}
	stats := g.Level.Tree().Stats()
	logs.WithTag("level_id", g.Level.ID).
		WithTag("max_depth", maxDepth).
		WithTag("nodes", stats.Nodes).
		WithTag("depth", stats.Depth).
		Info("level tree rebuilt")
	return nil
}

func (g *Game) Draw() {
	cam := g.Camera.Camera(g.Player.Position)
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	g.drawn = g.Renderer.Draw(g.Level, cam, aspect, g.Player.Resolver().Candidates())
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Space to jump, Shift to dash, Mouse to look", 10, 10, 20, rl.LightGray)
	rl.DrawText("F1 debug panel, F5 new maze", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	if !g.Debug.Visible {
		return
	}

	pos := g.Player.Position
	rl.DrawText(fmt.Sprintf("Position: (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z), 10, 85, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Grounded: %v  Dashing: %v", g.Player.IsGrounded(), g.Player.IsDashing()), 10, 105, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Candidates: %d  Contacts: %d", len(g.Player.Resolver().Candidates()), len(g.Player.Resolver().Contacts())), 10, 125, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Panels drawn: %d / %d", g.drawn, len(g.Level.Panels())), 10, 145, 16, rl.Yellow)

	rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), 10, 170, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), 10, 190, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Total:   %.2f ms", g.updateMs+g.drawMs), 10, 210, 16, rl.Lime)

	g.Debug.Draw()
}
