package maze

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/lvsearch/problem"
)

// Maze is a rectangular grid of walls and weighted open cells with one start
// and one goal. It is immutable once built.
type Maze struct {
	width, height int
	walls         []bool    // row-major; true for '%'
	costs         []float64 // row-major entry cost; 0 for walls
	start, goal   Cell
	conn          Connectivity
	moves         []move
}

// MaxRowLen is the longest row Parse accepts, in bytes.
const MaxRowLen = 16 << 20

// Load opens path and parses it with Parse.
func Load(path string, opts Options) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %q: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Parse reads a maze in the package text format from r.
// Returns ErrEmptyMaze, ErrInvalidCell, ErrMissingStart, ErrMissingGoal,
// ErrDuplicateStart or ErrDuplicateGoal for malformed input.
// Complexity: O(W×H) time and memory.
func Parse(r io.Reader, opts Options) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxRowLen)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}

	return FromLines(lines, opts)
}

// FromLines builds a maze from its rows. See Parse.
func FromLines(lines []string, opts Options) (*Maze, error) {
	// drop trailing empty rows; rows of spaces are open terrain
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMaze
	}
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	h := len(lines)

	m := &Maze{
		width:  w,
		height: h,
		walls:  make([]bool, w*h),
		costs:  make([]float64, w*h),
		conn:   opts.Conn,
		moves:  orthogonalMoves,
	}
	if opts.Conn == Conn8 {
		m.moves = append(append([]move(nil), orthogonalMoves...), diagonalMoves...)
	}

	var haveStart, haveGoal bool
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			ch := byte(OpenChar)
			if col < len(lines[row]) {
				ch = lines[row][col]
			}
			i := m.index(row, col)
			m.costs[i] = 1
			switch {
			case ch == WallChar:
				m.walls[i] = true
				m.costs[i] = 0
			case ch == StartChar:
				if haveStart {
					return nil, fmt.Errorf("%w: at %v and %v", ErrDuplicateStart, m.start, Cell{row, col})
				}
				m.start, haveStart = Cell{row, col}, true
			case ch == GoalChar:
				if haveGoal {
					return nil, fmt.Errorf("%w: at %v and %v", ErrDuplicateGoal, m.goal, Cell{row, col})
				}
				m.goal, haveGoal = Cell{row, col}, true
			case ch == OpenChar || ch == DotChar:
			case ch >= '1' && ch <= '9':
				m.costs[i] = float64(ch - '0')
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidCell, ch, Cell{row, col})
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the start cell.
func (m *Maze) Start() Cell { return m.start }

// Goal returns the goal cell.
func (m *Maze) Goal() Cell { return m.goal }

// Conn returns the maze's connectivity.
func (m *Maze) Conn() Connectivity { return m.conn }

// InBounds reports whether c lies within the grid.
func (m *Maze) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < m.height && c.Col >= 0 && c.Col < m.width
}

// IsWall reports whether c is a wall. Cells outside the grid count as walls.
func (m *Maze) IsWall(c Cell) bool {
	return !m.InBounds(c) || m.walls[m.index(c.Row, c.Col)]
}

// Cost returns the entry cost of c, or 0 for walls and off-grid cells.
func (m *Maze) Cost(c Cell) float64 {
	if m.IsWall(c) {
		return 0
	}

	return m.costs[m.index(c.Row, c.Col)]
}

// StartState implements problem.Problem.
func (m *Maze) StartState() Cell { return m.start }

// IsGoal implements problem.Problem.
func (m *Maze) IsGoal(c Cell) bool { return c == m.goal }

// Successors implements problem.Problem. Moves are generated in the fixed
// order of the move table, so results are deterministic.
func (m *Maze) Successors(c Cell) []problem.Successor[Cell] {
	out := make([]problem.Successor[Cell], 0, len(m.moves))
	for _, mv := range m.moves {
		next := Cell{c.Row + mv.dr, c.Col + mv.dc}
		if m.IsWall(next) {
			continue
		}
		cost := m.costs[m.index(next.Row, next.Col)]
		if mv.diagonal {
			// no corner cutting
			if m.IsWall(Cell{c.Row + mv.dr, c.Col}) || m.IsWall(Cell{c.Row, c.Col + mv.dc}) {
				continue
			}
			cost *= math.Sqrt2
		}
		out = append(out, problem.Successor[Cell]{State: next, Action: mv.action, Cost: cost})
	}

	return out
}

// Trace converts actions into the cells they visit, starting with the start
// cell. Returns ErrOffGrid if an action is unknown or blocked.
func (m *Maze) Trace(actions []problem.Action) ([]Cell, error) {
	cells := make([]Cell, 0, len(actions)+1)
	cur := m.start
	cells = append(cells, cur)
	for i, a := range actions {
		next, ok := m.apply(cur, a)
		if !ok {
			return cells, fmt.Errorf("%w: step %d %s from %v", ErrOffGrid, i, a, cur)
		}
		cur = next
		cells = append(cells, cur)
	}

	return cells, nil
}

// apply returns the successor of c reached by a.
func (m *Maze) apply(c Cell, a problem.Action) (Cell, bool) {
	for _, s := range m.Successors(c) {
		if s.Action == a {
			return s.State, true
		}
	}

	return Cell{}, false
}

// String renders the maze back into its text form. Terrain costs of 1 render
// as spaces.
func (m *Maze) String() string {
	var b strings.Builder
	for _, row := range m.rows() {
		b.Write(row)
		b.WriteByte('\n')
	}

	return b.String()
}

// rows returns a fresh byte grid of the maze.
func (m *Maze) rows() [][]byte {
	out := make([][]byte, m.height)
	for row := 0; row < m.height; row++ {
		line := make([]byte, m.width)
		for col := 0; col < m.width; col++ {
			i := m.index(row, col)
			switch {
			case m.walls[i]:
				line[col] = WallChar
			case m.costs[i] > 1:
				line[col] = byte('0' + int(m.costs[i]))
			default:
				line[col] = OpenChar
			}
		}
		out[row] = line
	}
	out[m.start.Row][m.start.Col] = StartChar
	out[m.goal.Row][m.goal.Col] = GoalChar

	return out
}

// index maps (row,col) to a row-major index: row*width + col.
func (m *Maze) index(row, col int) int {
	return row*m.width + col
}

var _ problem.Problem[Cell] = (*Maze)(nil)
