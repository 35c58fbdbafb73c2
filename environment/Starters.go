package environment

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// SingleStart implements a start-state distribution with all probability
// mass on one state
type SingleStart struct {
	state int
}

// NewSingleStart creates and returns a new SingleStart
func NewSingleStart(state int) (Starter, error) {
	if state < 0 {
		return nil, fmt.Errorf("newSingleStart: state %d < 0", state)
	}
	return SingleStart{state}, nil
}

// Start returns the starting state
func (s SingleStart) Start() int {
	return s.state
}

// UniformStarter implements a uniform distribution over a fixed set of
// starting states
type UniformStarter struct {
	states []int
	rng    *rand.Rand
}

// NewUniformStarter creates a new UniformStarter which samples starting
// states uniformly from states
func NewUniformStarter(states []int, seed uint64) (Starter, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("newUniformStarter: no starting states")
	}
	for _, state := range states {
		if state < 0 {
			return nil, fmt.Errorf("newUniformStarter: state %d < 0", state)
		}
	}

	source := rand.NewSource(seed)
	return UniformStarter{states, rand.New(source)}, nil
}

// Start samples and returns a starting state
func (u UniformStarter) Start() int {
	return u.states[u.rng.Intn(len(u.states))]
}
