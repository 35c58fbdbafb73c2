// Package qlearning implements the tabular Q-Learning algorithm.
//
// Q-Learning is an off-policy temporal-difference control algorithm. The
// behaviour policy is ε-greedy with respect to a table of action-value
// estimates, while the learning target is the greedy policy over the same
// table.
package qlearning

import (
	"fmt"

	"github.com/gridlearn/gridlearn/agent"
	"github.com/gridlearn/gridlearn/agent/tabular/policy"
	"github.com/gridlearn/gridlearn/environment"
	"github.com/gridlearn/gridlearn/table"
)

// QLearning implements the tabular Q-Learning algorithm
type QLearning struct {
	agent.Learner
	agent.Policy
	target agent.Policy
	table  *table.Table
	seed   uint64
}

// New creates a new QLearning struct, allocating a zero-valued
// action-value table sized from the argument environment's state and
// action spaces
func New(env environment.Environment, c Config,
	seed uint64) (*QLearning, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("qlearning: %v", err)
	}

	t, err := table.New(env.NumStates(), env.NumActions())
	if err != nil {
		return nil, fmt.Errorf("qlearning: %v", err)
	}

	// The behaviour policy, target policy, and learner share the same
	// action-value table
	behaviour := policy.NewEGreedy(c.Epsilon, seed, t)
	target := policy.NewGreedy(seed, t)
	learner := NewQLearner(t, c.LearningRate, c.Discount)

	return &QLearning{learner, behaviour, target, t, seed}, nil
}

// Table returns the agent's learned action-value table
func (q *QLearning) Table() *table.Table {
	return q.table
}

// TargetPolicy returns the agent's target policy, which acts greedily
// with respect to the learned action values
func (q *QLearning) TargetPolicy() agent.Policy {
	return q.target
}
