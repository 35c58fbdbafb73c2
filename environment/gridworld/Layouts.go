package gridworld

import "fmt"

// Cell characters accepted in a layout description
const (
	startCell  = 'S'
	frozenCell = 'F'
	holeCell   = 'H'
	goalCell   = 'G'
)

// Layout describes the static structure of a GridWorld: its dimensions,
// start and goal cells, and which cells are holes. Cells are numbered
// row-major from the top-left corner.
type Layout struct {
	rows, cols int
	start      int
	goal       int
	holes      []bool
}

// NewLayout parses a layout from one string per grid row. Each string
// holds one character per column: 'S' start, 'F' frozen surface,
// 'H' hole, 'G' goal. A layout must be rectangular with exactly one
// start and one goal.
func NewLayout(cells []string) (Layout, error) {
	if len(cells) == 0 {
		return Layout{}, fmt.Errorf("newLayout: empty layout")
	}

	rows := len(cells)
	cols := len(cells[0])
	start, goal := -1, -1
	holes := make([]bool, rows*cols)

	for y, row := range cells {
		if len(row) != cols {
			return Layout{}, fmt.Errorf("newLayout: row %d has %d cells, "+
				"want %d", y, len(row), cols)
		}
		for x, cell := range row {
			state := y*cols + x
			switch cell {
			case startCell:
				if start >= 0 {
					return Layout{}, fmt.Errorf("newLayout: multiple " +
						"start cells")
				}
				start = state

			case goalCell:
				if goal >= 0 {
					return Layout{}, fmt.Errorf("newLayout: multiple " +
						"goal cells")
				}
				goal = state

			case holeCell:
				holes[state] = true

			case frozenCell:

			default:
				return Layout{}, fmt.Errorf("newLayout: unknown cell %q "+
					"at (%d, %d)", cell, x, y)
			}
		}
	}

	if start < 0 {
		return Layout{}, fmt.Errorf("newLayout: no start cell")
	}
	if goal < 0 {
		return Layout{}, fmt.Errorf("newLayout: no goal cell")
	}

	return Layout{rows, cols, start, goal, holes}, nil
}

// FourByFour returns the default 4x4 layout
func FourByFour() Layout {
	layout, err := NewLayout([]string{
		"SFFF",
		"FHFH",
		"FFFH",
		"HFFG",
	})
	if err != nil {
		panic(err)
	}
	return layout
}

// EightByEight returns the default 8x8 layout
func EightByEight() Layout {
	layout, err := NewLayout([]string{
		"SFFFFFFF",
		"FFFFFFFF",
		"FFFHFFFF",
		"FFFFFHFF",
		"FFFHFFFF",
		"FHHFFFHF",
		"FHFFHFHF",
		"FFFHFFFG",
	})
	if err != nil {
		panic(err)
	}
	return layout
}

// Rows returns the number of grid rows in the layout
func (l Layout) Rows() int {
	return l.rows
}

// Cols returns the number of grid columns in the layout
func (l Layout) Cols() int {
	return l.cols
}

// Start returns the state index of the layout's start cell
func (l Layout) Start() int {
	return l.start
}

// Goal returns the state index of the layout's goal cell
func (l Layout) Goal() int {
	return l.goal
}

// IsHole returns whether the argument state is a hole
func (l Layout) IsHole(state int) bool {
	return l.holes[state]
}
