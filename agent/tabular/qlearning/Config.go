package qlearning

import (
	"fmt"

	"github.com/gridlearn/gridlearn/agent"
	"github.com/gridlearn/gridlearn/environment"
)

// Config represents a configuration for the QLearning agent. The
// configuration is immutable for the duration of a run: no decay
// schedules are applied to any of its fields.
type Config struct {
	Epsilon      float64 // epsilon for the behaviour policy
	LearningRate float64
	Discount     float64
}

// CreateAgent creates the agent from the Config. Action values are
// always initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {

	return New(env, c, seed)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*QLearning)
	return ok
}

// Validate ensures that the Config is valid. Hyperparameters outside
// their declared intervals are rejected here, before any training
// begins.
func (c Config) Validate() error {
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("validate: epsilon %v not in [0, 1]", c.Epsilon)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("validate: learning rate %v not in (0, 1]",
			c.LearningRate)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount %v not in [0, 1]", c.Discount)
	}
	return nil
}
