// Package policy implements policies over tabular action values
package policy

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gridlearn/gridlearn/table"
	"github.com/gridlearn/gridlearn/timestep"
)

// EGreedy implements an ε-greedy policy over a tabular action-value
// estimate.
//
// In training mode, a state whose action values are all equal is treated
// as carrying no learning signal, and an action is chosen uniformly at
// random rather than deterministically taking the first action index.
// Without this, an untrained agent would always move in the direction of
// action 0 before any values have been learned. In evaluation mode the
// policy is purely greedy and deterministic, breaking ties by the lowest
// action index.
type EGreedy struct {
	table   *table.Table
	epsilon float64
	seed    rand.Source // Seed for random number generation
	eval    bool
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected. The argument table
// holds the action-value estimates the policy acts greedily with respect
// to, and should be shared with the Learner updating those estimates.
func NewEGreedy(e float64, seed uint64, t *table.Table) *EGreedy {
	source := rand.NewSource(seed)

	return &EGreedy{t, e, source, false}
}

// NewGreedy creates a new greedy policy, which always selects the
// maximally valued action in a state
func NewGreedy(seed uint64, t *table.Table) *EGreedy {
	p := NewEGreedy(0.0, seed, t)
	p.Eval()
	return p
}

// Table returns the action-value table the policy acts with respect to
func (p *EGreedy) Table() *table.Table {
	return p.table
}

// Eval sets the policy to evaluation mode
func (p *EGreedy) Eval() {
	p.eval = true
}

// Train sets the policy to training mode
func (p *EGreedy) Train() {
	p.eval = false
}

// IsEval returns whether the policy is in evaluation mode
func (p *EGreedy) IsEval() bool {
	return p.eval
}

// SelectAction selects an action from an ε-greedy policy
func (p *EGreedy) SelectAction(t timestep.TimeStep) (int, error) {
	if err := p.table.CheckState(t.State); err != nil {
		return 0, err
	}

	numActions := p.table.NumActions()

	// Find the greedy action, ties broken by the lowest action index
	greedyAction := p.table.ArgmaxRow(t.State)

	// Evaluation mode is purely greedy and fully deterministic
	if p.eval {
		return greedyAction, nil
	}

	actionProbabilities := make([]float64, numActions)

	if p.table.RowAllEqual(t.State) {
		// No action value stands out, select uniformly at random
		for i := 0; i < numActions; i++ {
			actionProbabilities[i] = 1.0 / float64(numActions)
		}
	} else {
		// Calculate the ε probability of choosing any action at random
		prob := p.epsilon / float64(numActions)
		for i := 0; i < numActions; i++ {
			actionProbabilities[i] = prob
		}

		// Adjust the probability of choosing the greedy action
		actionProbabilities[greedyAction] += (1.0 - p.epsilon)
	}

	// Construct a categorical distribution over actions using action
	// probabilities
	dist := distuv.NewCategorical(actionProbabilities, p.seed)

	// Sample an action given the action probabilities and return
	return int(dist.Rand()), nil
}
