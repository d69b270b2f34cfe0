package maze

// Overlay characters used by Render.
const (
	PathChar     = '*'
	ExploredChar = '+'
)

// Render returns the maze rows with explored cells marked ExploredChar and
// path cells marked PathChar. Start, goal and walls keep their characters.
// Cells outside the grid are ignored.
func (m *Maze) Render(path, explored []Cell) []string {
	grid := m.rows()
	mark := func(cells []Cell, ch byte) {
		for _, c := range cells {
			if !m.InBounds(c) || c == m.start || c == m.goal || m.IsWall(c) {
				continue
			}
			grid[c.Row][c.Col] = ch
		}
	}
	mark(explored, ExploredChar)
	mark(path, PathChar)

	out := make([]string, len(grid))
	for i, row := range grid {
		out[i] = string(row)
	}

	return out
}
