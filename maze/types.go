package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/problem"
)

// Sentinel errors for maze parsing.
var (
	// ErrEmptyMaze indicates input with no rows or only empty rows.
	ErrEmptyMaze = errors.New("maze: input must have at least one non-empty row")
	// ErrMissingStart indicates no 'S' cell.
	ErrMissingStart = errors.New("maze: missing start cell 'S'")
	// ErrMissingGoal indicates no 'G' cell.
	ErrMissingGoal = errors.New("maze: missing goal cell 'G'")
	// ErrDuplicateStart indicates more than one 'S' cell.
	ErrDuplicateStart = errors.New("maze: more than one start cell 'S'")
	// ErrDuplicateGoal indicates more than one 'G' cell.
	ErrDuplicateGoal = errors.New("maze: more than one goal cell 'G'")
	// ErrInvalidCell indicates a character outside the maze alphabet.
	ErrInvalidCell = errors.New("maze: invalid cell character")
	// ErrOffGrid indicates a traced path leaving the maze or entering a wall.
	ErrOffGrid = errors.New("maze: path leaves the open cells of the maze")
)

// Cell characters.
const (
	WallChar  = '%'
	StartChar = 'S'
	GoalChar  = 'G'
	OpenChar  = ' '
	DotChar   = '.'
)

// Actions produced by Successors.
const (
	North     problem.Action = "North"
	South     problem.Action = "South"
	West      problem.Action = "West"
	East      problem.Action = "East"
	NorthEast problem.Action = "NorthEast"
	NorthWest problem.Action = "NorthWest"
	SouthEast problem.Action = "SouthEast"
	SouthWest problem.Action = "SouthWest"
)

// Connectivity selects the move set: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 moves North, South, West, East.
	Conn4 Connectivity = iota
	// Conn8 adds NorthEast, NorthWest, SouthEast, SouthWest.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// Cell is a maze state: a row/column position. Row 0 is the first line.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Options contains tunable parameters for a maze.
type Options struct {
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn4 movement.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// move is one entry of the precomputed move table.
type move struct {
	action   problem.Action
	dr, dc   int
	diagonal bool
}

var (
	orthogonalMoves = []move{
		{North, -1, 0, false},
		{South, 1, 0, false},
		{West, 0, -1, false},
		{East, 0, 1, false},
	}
	diagonalMoves = []move{
		{NorthEast, -1, 1, true},
		{NorthWest, -1, -1, true},
		{SouthEast, 1, 1, true},
		{SouthWest, 1, -1, true},
	}
)
