package tracker

import (
	ts "github.com/gridlearn/gridlearn/timestep"
)

// Return tracks the episodic return in an experiment. When an
// environment returns a TimeStep, this Tracker will extract the reward
// and accumulate the return for each episode in the experiment.
//
// Note: an episode must finish for this Tracker to record its data. If
// the last episode in an experiment does not finish, that episode's
// return is not recorded.
type Return struct {
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker which will save
// its data at the specified location filename
func NewReturn(filename string) Tracker {
	var saver Return
	saver.filename = filename
	return &saver
}

// Track tracks the reward seen on a timestep. When a new episode
// starts, this method will automatically detect this and start
// accumulating the rewards for the new episode separately from the
// rewards seen on previous episodes.
func (r *Return) Track(step ts.TimeStep) {
	if step.First() {
		// A new episode has begun, restart the accumulator
		r.currentReturn = 0.0
		return
	}

	r.currentReturn += step.Reward
	if step.Last() {
		// Episode has ended, record the return
		r.episodeReturns = append(r.episodeReturns, r.currentReturn)
		r.currentReturn = 0.0
	}
}

// Data returns the return of each completed episode, in order
func (r *Return) Data() []float64 {
	return r.episodeReturns
}

// Save saves the data tracked by the Return Tracker to disk
func (r *Return) Save() {
	save(r.filename, r.episodeReturns)
}
