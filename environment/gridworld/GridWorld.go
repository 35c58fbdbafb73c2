// Package gridworld implements a discrete 2D grid-world environment
// with holes in a frozen surface.
//
// The agent starts at the layout's start cell and moves left, down,
// right, or up until it falls into a hole (termination with no reward),
// reaches the goal (termination with the goal reward), or exceeds the
// episode step limit (truncation). On a slippery surface the agent
// moves in the intended direction with probability 1/3, and in each of
// the two perpendicular directions with probability 1/3.
package gridworld

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/gridlearn/gridlearn/environment"
	"github.com/gridlearn/gridlearn/timestep"
)

// Actions available in a GridWorld
const (
	ActionLeft = iota
	ActionDown
	ActionRight
	ActionUp
	numActions
)

// GridWorld represents a grid-world environment
//
// A grid is represented as a flattened matrix, but only the grid
// dimensions and the current agent position are tracked.
type GridWorld struct {
	environment.Task
	environment.Starter
	layout      Layout
	position    int
	slippery    bool
	ender       environment.StepLimit
	rng         *rand.Rand
	currentStep timestep.TimeStep
}

// New creates a new GridWorld with layout l, task t, and start-state
// distribution s. The cutoff parameter caps the number of steps per
// episode (0 for no cap), after which episodes are truncated. When
// slippery is true, transitions are stochastic.
func New(l Layout, t environment.Task, s environment.Starter,
	slippery bool, cutoff int, seed uint64) (*GridWorld,
	timestep.TimeStep, error) {

	if t == nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: no task")
	}
	if s == nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: no starter")
	}

	g := &GridWorld{
		Task:     t,
		Starter:  s,
		layout:   l,
		position: l.Start(),
		slippery: slippery,
		ender:    environment.NewStepLimit(cutoff),
		rng:      rand.New(rand.NewSource(seed)),
	}

	return g, g.Reset(), nil
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.layout.Rows(), g.layout.Cols()
}

// NumStates returns the size of the GridWorld's state space
func (g *GridWorld) NumStates() int {
	return g.layout.Rows() * g.layout.Cols()
}

// NumActions returns the size of the GridWorld's action space
func (g *GridWorld) NumActions() int {
	return numActions
}

// SampleAction returns an action drawn uniformly at random from the
// GridWorld's action space
func (g *GridWorld) SampleAction() int {
	return g.rng.Intn(numActions)
}

// Reset resets the GridWorld to its starting position and returns the
// first timestep of the new episode
func (g *GridWorld) Reset() timestep.TimeStep {
	g.position = g.Start()

	startStep := timestep.New(timestep.First, 0, g.position, 0)
	g.currentStep = startStep
	return startStep
}

// Step takes one environmental transition, returning the resulting
// timestep and whether the episode is done (terminated or truncated)
func (g *GridWorld) Step(action int) (timestep.TimeStep, bool, error) {
	if action < 0 || action >= numActions {
		return timestep.TimeStep{}, false, fmt.Errorf("step: action %d "+
			"out of range [0, %d)", action, numActions)
	}

	// On a slippery surface the agent may move perpendicular to the
	// intended direction
	direction := action
	if g.slippery {
		switch g.rng.Intn(3) {
		case 0:
			direction = (action + numActions - 1) % numActions
		case 2:
			direction = (action + 1) % numActions
		}
	}

	g.position = g.move(g.position, direction)

	// Get information to pass back
	reward := g.GetReward(g.position)
	number := g.currentStep.Number + 1
	stepType := timestep.Mid

	// Falling into a hole or reaching the goal ends the episode
	if g.AtGoal(g.position) || g.layout.IsHole(g.position) {
		stepType = timestep.Last
	}

	// Set up the next timestep and update the GridWorld's current step
	step := timestep.New(stepType, reward, g.position, number)
	g.ender.End(&step)
	g.currentStep = step

	return step, step.Last(), nil
}

// move applies one movement direction to a position, staying in place
// at the grid borders
func (g *GridWorld) move(position, direction int) int {
	rows, cols := g.Dims()
	x, y := position%cols, position/cols

	switch direction {
	case ActionLeft:
		if x > 0 {
			x--
		}
	case ActionDown:
		if y < rows-1 {
			y++
		}
	case ActionRight:
		if x < cols-1 {
			x++
		}
	case ActionUp:
		if y > 0 {
			y--
		}
	}
	return y*cols + x
}

func (g *GridWorld) String() string {
	rows, cols := g.Dims()
	var str strings.Builder

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			state := y*cols + x
			switch {
			case state == g.position:
				str.WriteByte('A')
			case g.AtGoal(state):
				str.WriteByte(goalCell)
			case g.layout.IsHole(state):
				str.WriteByte(holeCell)
			default:
				str.WriteByte(frozenCell)
			}
		}
		str.WriteByte('\n')
	}
	return str.String()
}
