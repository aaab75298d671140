package game

import (
	"maze/internal/controller"
	"maze/internal/world"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T) *Game {
	level := world.DefaultConfig()
	level.Size = 4
	g, err := New(Config{Width: 640, Height: 480, TargetFPS: 60, Level: level})
	require.NoError(t, err)
	return g
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	level := world.DefaultConfig()
	level.Size = 0
	_, err := New(Config{Level: level})
	require.Error(t, err)
}

func TestUpdateSettlesPlayer(t *testing.T) {
	g := newGame(t)

	for i := 0; i < 120; i++ {
		g.Update(controller.Input{}, 1.0/60)
	}
	require.True(t, g.Player.IsGrounded())

	// A stalled frame is clamped.
	before := g.Player.Position
	g.Update(controller.Input{Direction: rl.Vector3{X: 1}}, 5)
	moved := rl.Vector3Subtract(g.Player.Position, before)
	require.LessOrEqual(t, moved.X, g.Player.WalkSpeed/20+1e-4)
}

func TestRegenerate(t *testing.T) {
	g := newGame(t)
	oldID := g.Level.ID
	g.Player.Position = rl.Vector3{X: 2, Y: 5, Z: -2}

	require.NoError(t, g.Regenerate(99))
	require.NotEqual(t, oldID, g.Level.ID)
	require.Equal(t, int64(99), g.Config.Level.Seed)
	require.InDelta(t, 0, g.Player.Position.X, 1e-6)
	require.InDelta(t, 0, g.Player.Position.Z, 1e-6)

	g.Update(controller.Input{}, 1.0/60)
	require.NotEmpty(t, g.Player.Resolver().Candidates())
}

func TestDebugPanelRebuild(t *testing.T) {
	g := newGame(t)

	g.Debug.SetDepth(3)
	require.NoError(t, g.Debug.Rebuild())
	require.Equal(t, 3, g.Level.Tree().MaxDepth())

	g.Debug.SetDepth(100)
	require.Equal(t, maxTreeDepth, g.Debug.Depth())
	g.Debug.SetDepth(-4)
	require.Equal(t, 0, g.Debug.Depth())
}

func TestDebugPanelNoClipSurvivesRegenerate(t *testing.T) {
	g := newGame(t)

	g.Debug.SetNoClip(true)
	require.NoError(t, g.Regenerate(2))
	for _, tile := range g.Level.Tiles {
		for _, w := range tile.WallList() {
			require.False(t, w.CollisionEnabled, w.Name)
		}
		require.True(t, tile.Floor.CollisionEnabled)
	}

	g.Debug.SetNoClip(false)
	for _, w := range g.Level.Tiles[0].WallList() {
		require.True(t, w.CollisionEnabled)
	}
}
