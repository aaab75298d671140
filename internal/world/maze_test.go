package world

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirection(t *testing.T) {
	require.Equal(t, Down, Up.Opposite())
	require.Equal(t, Left|Up, (Right | Down).Opposite())
	require.Equal(t, AllSides, AllSides.Opposite())
	require.True(t, AllSides.Has(Up|Left))
	require.False(t, (Up | Right).Has(Up|Left))
	require.Equal(t, "up|left", (Up | Left).String())
	require.Equal(t, "none", None.String())
}

func TestGenerateMazeIsPerfect(t *testing.T) {
	for _, size := range []int{1, 2, 5, 10, 23} {
		m := GenerateMaze(size, int64(size))

		openings := 0
		for _, c := range m.Cells {
			openings += bits.OnesCount(uint(c))
		}
		require.Equal(t, size*size, m.Reachable(), "size %d", size)
		require.Equal(t, 2*(size*size-1), openings, "size %d", size)
	}
}

func TestGenerateMazeOpeningsAreSymmetric(t *testing.T) {
	m := GenerateMaze(12, 42)

	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			for _, d := range sides {
				if !m.Open(x, y).Has(d) {
					continue
				}
				dx, dy := step(d)
				require.True(t, m.inside(x+dx, y+dy), "cell %d,%d opens %s out of the grid", x, y, d)
				require.True(t, m.Open(x+dx, y+dy).Has(d.Opposite()), "cell %d,%d opens %s one way", x, y, d)
			}
		}
	}
}

func TestGenerateMazeIsDeterministic(t *testing.T) {
	require.Equal(t, GenerateMaze(10, 7).Cells, GenerateMaze(10, 7).Cells)
	require.NotEqual(t, GenerateMaze(10, 7).Cells, GenerateMaze(10, 8).Cells)
}

func TestMazeWallsAreEmittedOnce(t *testing.T) {
	const size = 8
	m := GenerateMaze(size, 3)

	walls := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			walls += bits.OnesCount(uint(m.Walls(x, y)))
		}
	}

	// Every grid edge minus the carved passages.
	edges := 2 * size * (size + 1)
	require.Equal(t, edges-(size*size-1), walls)
}

func TestSingleCellMazeIsClosed(t *testing.T) {
	m := GenerateMaze(1, 0)
	require.Equal(t, None, m.Open(0, 0))
	require.Equal(t, AllSides, m.Walls(0, 0))
	require.Equal(t, None, m.Open(5, 5))
}
