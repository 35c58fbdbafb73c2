// Package environment outlines the interfaces and structs needed to implement
// concrete discrete environments
package environment

import (
	"github.com/gridlearn/gridlearn/timestep"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() int
}

// Task implements the reward scheme for taking actions in some environment
type Task interface {
	// GetReward returns the reward for transitioning into state
	GetReward(state int) float64

	// AtGoal returns whether the argument state is a goal state
	AtGoal(state int) bool

	// MaxReturn returns the largest return obtainable in a single
	// episode of the task
	MaxReturn() float64
}

// Environment implements a simulated environment, which includes a Task to
// complete.
//
// Environments expose only discrete state and action identifiers. States
// are integers in [0, NumStates()) and actions are integers in
// [0, NumActions()). Step returns the timestep resulting from the action,
// whether the episode is done (terminated or truncated), and an error if
// the action lies outside the environment's action space.
type Environment interface {
	Task

	// Reset resets the environment between episodes
	Reset() timestep.TimeStep

	// Step takes one environmental transition
	Step(action int) (timestep.TimeStep, bool, error)

	// NumStates returns the size of the environment's state space
	NumStates() int

	// NumActions returns the size of the environment's action space
	NumActions() int

	// SampleAction returns an action drawn uniformly at random from
	// the environment's action space
	SampleAction() int
}
