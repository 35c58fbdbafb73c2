// Package table implements dense action-value tables for discrete state
// and action spaces
package table

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gridlearn/gridlearn/utils/matutils"
)

// Table stores an action-value estimate for every (state, action) pair of
// a discrete environment. Values are stored in a dense (states x actions)
// matrix and are only ever modified through Set, never replaced wholesale.
type Table struct {
	values  *mat.Dense
	states  int
	actions int
}

// New creates a new Table with one row per state and one column per
// action, with every estimate initialized to 0.0
func New(states, actions int) (*Table, error) {
	if states <= 0 {
		return nil, fmt.Errorf("new: non-positive state space size %d",
			states)
	}
	if actions <= 0 {
		return nil, fmt.Errorf("new: non-positive action space size %d",
			actions)
	}

	return &Table{mat.NewDense(states, actions, nil), states, actions}, nil
}

// NumStates returns the number of states the Table holds estimates for
func (t *Table) NumStates() int {
	return t.states
}

// NumActions returns the number of actions the Table holds estimates for
func (t *Table) NumActions() int {
	return t.actions
}

// CheckState returns an error if state lies outside the Table's state
// space
func (t *Table) CheckState(state int) error {
	if state < 0 || state >= t.states {
		return fmt.Errorf("checkState: state %d out of range [0, %d)",
			state, t.states)
	}
	return nil
}

// CheckAction returns an error if action lies outside the Table's action
// space
func (t *Table) CheckAction(action int) error {
	if action < 0 || action >= t.actions {
		return fmt.Errorf("checkAction: action %d out of range [0, %d)",
			action, t.actions)
	}
	return nil
}

// At returns the action-value estimate of taking action in state
func (t *Table) At(state, action int) float64 {
	return t.values.At(state, action)
}

// Set sets the action-value estimate of taking action in state
func (t *Table) Set(state, action int, value float64) {
	t.values.Set(state, action, value)
}

// RowView returns the vector of action-value estimates for state
func (t *Table) RowView(state int) mat.Vector {
	return t.values.RowView(state)
}

// ArgmaxRow returns the index of the maximally valued action in state.
// Ties are broken by the lowest action index.
func (t *Table) ArgmaxRow(state int) int {
	return matutils.MaxVec(t.values.RowView(state))
}

// MaxRow returns the largest action-value estimate in state
func (t *Table) MaxRow(state int) float64 {
	return t.values.At(state, t.ArgmaxRow(state))
}

// RowAllEqual returns whether every action-value estimate in state is
// equal
func (t *Table) RowAllEqual(state int) bool {
	return matutils.VecAllEqual(t.values.RowView(state))
}

func (t *Table) String() string {
	return matutils.Format(t.values)
}
