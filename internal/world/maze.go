package world

import (
	"math/rand"
	"strings"
)

// Direction is a set of cell sides. Up is +Y on the grid, which is -Z in the
// world.
type Direction int

// None marks a cell without any side.
const None Direction = 0

const (
	Up Direction = 1 << iota
	Right
	Down
	Left
)

// AllSides is a cell closed on every side.
const AllSides = Up | Right | Down | Left

var sides = [4]Direction{Up, Right, Down, Left}

// Has reports whether every side in o is set in d.
func (d Direction) Has(o Direction) bool {
	return d&o == o
}

// Opposite returns the facing side for each side in d.
func (d Direction) Opposite() Direction {
	var o Direction
	for i, s := range sides {
		if d.Has(s) {
			o |= sides[(i+2)%4]
		}
	}
	return o
}

func (d Direction) String() string {
	if d == None {
		return "none"
	}
	var parts []string
	for i, s := range sides {
		if d.Has(s) {
			parts = append(parts, [4]string{"up", "right", "down", "left"}[i])
		}
	}
	return strings.Join(parts, "|")
}

// step returns the grid offset of a single side.
func step(d Direction) (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Right:
		return 1, 0
	case Down:
		return 0, -1
	default:
		return -1, 0
	}
}

// Maze is a square grid of cells. Each cell records the sides that were
// opened towards a neighbour.
type Maze struct {
	Size  int
	Cells []Direction
}

// GenerateMaze carves a perfect maze with an iterative depth-first backtracker
// starting at cell (0, 0). The same seed yields the same maze.
func GenerateMaze(size int, seed int64) *Maze {
	m := &Maze{Size: size, Cells: make([]Direction, size*size)}
	if size <= 0 {
		return m
	}

	r := rand.New(rand.NewSource(seed))
	visited := make([]bool, size*size)
	visited[0] = true

	type cell struct{ x, y int }
	stack := []cell{{0, 0}}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		order := sides
		r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, d := range order {
			dx, dy := step(d)
			nx, ny := c.x+dx, c.y+dy
			if !m.inside(nx, ny) || visited[m.index(nx, ny)] {
				continue
			}

			visited[m.index(nx, ny)] = true
			m.Cells[m.index(c.x, c.y)] |= d
			m.Cells[m.index(nx, ny)] |= d.Opposite()

			stack = append(stack, c, cell{nx, ny})
			break
		}
	}
	return m
}

func (m *Maze) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Size && y < m.Size
}

func (m *Maze) index(x, y int) int {
	return y*m.Size + x
}

// Open returns the sides of cell (x, y) that lead to a neighbour.
func (m *Maze) Open(x, y int) Direction {
	if !m.inside(x, y) {
		return None
	}
	return m.Cells[m.index(x, y)]
}

// Walls returns the closed sides cell (x, y) is responsible for. A wall
// shared with the left or lower neighbour belongs to that neighbour, so every
// wall is emitted once.
func (m *Maze) Walls(x, y int) Direction {
	walls := AllSides &^ m.Open(x, y)
	if x > 0 {
		walls &^= Left
	}
	if y > 0 {
		walls &^= Down
	}
	return walls
}

// Reachable counts the cells reachable from (0, 0) through open sides.
func (m *Maze) Reachable() int {
	if m.Size <= 0 {
		return 0
	}
	seen := make([]bool, len(m.Cells))
	seen[0] = true
	queue := []int{0}
	count := 0

	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		count++

		x, y := i%m.Size, i/m.Size
		for _, d := range sides {
			if !m.Cells[i].Has(d) {
				continue
			}
			dx, dy := step(d)
			if !m.inside(x+dx, y+dy) {
				continue
			}
			if j := m.index(x+dx, y+dy); !seen[j] {
				seen[j] = true
				queue = append(queue, j)
			}
		}
	}
	return count
}
