package qlearning

import (
	"fmt"
	"os"

	"github.com/gridlearn/gridlearn/table"
	"github.com/gridlearn/gridlearn/timestep"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm.
type QLearner struct {
	table        *table.Table
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	learningRate float64
	discount     float64
}

// NewQLearner creates a new QLearner struct
//
// The argument table holds the action values to learn, and is shared
// with the policies selecting actions from those values
func NewQLearner(t *table.Table, learningRate,
	discount float64) *QLearner {
	step := timestep.TimeStep{}
	nextStep := timestep.TimeStep{}

	return &QLearner{t, step, 0, nextStep, learningRate, discount}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)", t.Number)
	}
	if err := q.table.CheckState(t.State); err != nil {
		return fmt.Errorf("observeFirst: %v", err)
	}

	q.step = timestep.TimeStep{}
	q.nextStep = t
	return nil
}

// Observe observes and records any timestep other than the first timestep
func (q *QLearner) Observe(action int, nextStep timestep.TimeStep) error {
	if err := q.table.CheckAction(action); err != nil {
		return fmt.Errorf("observe: %v", err)
	}
	if err := q.table.CheckState(nextStep.State); err != nil {
		return fmt.Errorf("observe: %v", err)
	}

	q.step = q.nextStep
	q.action = action
	q.nextStep = nextStep
	return nil
}

// Step updates the action values for the last observed transition
func (q *QLearner) Step() error {
	transition := timestep.Transition{
		State:     q.step.State,
		Action:    q.action,
		Reward:    q.nextStep.Reward,
		NextState: q.nextStep.State,
	}

	current := q.table.At(transition.State, transition.Action)
	update := current + q.learningRate*q.TdError(transition)
	q.table.Set(transition.State, transition.Action, update)
	return nil
}

// TdError returns the TD error on a transition:
//
//	r + γ max_a' Q(s', a') - Q(s, a)
//
// The next state's action values are looked up even when s' is terminal.
// Episodes stop before any action is taken from a terminal state, so a
// terminal row is never updated as the source of a transition and its
// all-zero values contribute no further reward.
func (q *QLearner) TdError(t timestep.Transition) float64 {
	target := t.Reward + q.discount*q.table.MaxRow(t.NextState)
	return target - q.table.At(t.State, t.Action)
}

// EndEpisode performs cleanup at the end of an episode
func (q *QLearner) EndEpisode() {}
