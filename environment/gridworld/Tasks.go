package gridworld

// Goal represents the task of reaching the goal state in a GridWorld.
// The reward signal is sparse: every transition yields timeStepReward
// (0 by default) except transitions into the goal state, which yield
// goalReward.
type Goal struct {
	goal           int
	timeStepReward float64
	goalReward     float64
}

// NewGoal creates and returns a new Goal task for the goal cell of the
// argument layout
func NewGoal(l Layout, timeStepReward, goalReward float64) *Goal {
	return &Goal{l.Goal(), timeStepReward, goalReward}
}

// GetReward returns the reward for transitioning into state
func (g *Goal) GetReward(state int) float64 {
	if state == g.goal {
		return g.goalReward
	}
	return g.timeStepReward
}

// AtGoal returns whether the argument state is the goal state
func (g *Goal) AtGoal(state int) bool {
	return state == g.goal
}

// MaxReturn returns the largest return obtainable in a single episode.
// With the default sparse reward, an episode that reaches the goal
// accumulates exactly the goal reward.
func (g *Goal) MaxReturn() float64 {
	return g.goalReward
}
