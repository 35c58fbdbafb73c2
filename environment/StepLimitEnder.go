package environment

import "github.com/gridlearn/gridlearn/timestep"

// StepLimit ends episodes at specific timestep limits
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be truncated,
// returning a boolean to indicate episode truncation. If the episode
// should be ended, End() will modify the timestep so that its StepType
// field is timestep.Last
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if s.episodeSteps > 0 && t.Number >= s.episodeSteps {
		t.StepType = timestep.Last
		return true
	}
	return false
}
