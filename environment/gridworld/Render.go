package gridworld

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/gridlearn/gridlearn/table"
)

const cellPixels = 64

// Render draws the GridWorld with the learned action values of the
// argument table and saves the image as a PNG at filename. Frozen cells
// are shaded by their state value (the largest action value of the
// cell), holes are drawn dark, the goal is drawn green, and each frozen
// cell is marked with the greedy action's direction.
func (g *GridWorld) Render(t *table.Table, filename string) error {
	rows, cols := g.Dims()
	if t.NumStates() != rows*cols {
		return fmt.Errorf("render: table has %d states, grid has %d",
			t.NumStates(), rows*cols)
	}

	// State values scaled against the largest value in the grid
	maxValue := 0.0
	for state := 0; state < t.NumStates(); state++ {
		if v := t.MaxRow(state); v > maxValue {
			maxValue = v
		}
	}

	dc := gg.NewContext(cols*cellPixels, rows*cellPixels)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			state := y*cols + x
			px := float64(x * cellPixels)
			py := float64(y * cellPixels)

			switch {
			case g.AtGoal(state):
				dc.SetRGB(0.2, 0.7, 0.3)
			case g.layout.IsHole(state):
				dc.SetRGB(0.15, 0.15, 0.2)
			default:
				shade := 0.0
				if maxValue > 0 {
					shade = t.MaxRow(state) / maxValue
				}
				dc.SetRGB(1.0-0.6*shade, 1.0-0.3*shade, 1.0)
			}
			dc.DrawRectangle(px, py, cellPixels, cellPixels)
			dc.Fill()

			dc.SetRGB(0.5, 0.5, 0.5)
			dc.SetLineWidth(1.0)
			dc.DrawRectangle(px, py, cellPixels, cellPixels)
			dc.Stroke()

			if g.AtGoal(state) || g.layout.IsHole(state) {
				continue
			}

			drawArrow(dc, px, py, t.ArgmaxRow(state))
		}
	}

	return dc.SavePNG(filename)
}

// drawArrow marks the greedy action of a cell with a line from the cell
// centre toward the action's direction
func drawArrow(dc *gg.Context, px, py float64, action int) {
	cx := px + cellPixels/2
	cy := py + cellPixels/2
	length := float64(cellPixels) / 3

	var dx, dy float64
	switch action {
	case ActionLeft:
		dx = -length
	case ActionDown:
		dy = length
	case ActionRight:
		dx = length
	case ActionUp:
		dy = -length
	}

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.SetLineWidth(2.0)
	dc.DrawLine(cx, cy, cx+dx, cy+dy)
	dc.Stroke()
	dc.DrawCircle(cx+dx, cy+dy, 3.0)
	dc.Fill()
}
