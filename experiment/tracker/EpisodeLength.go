package tracker

import (
	ts "github.com/gridlearn/gridlearn/timestep"
)

// EpisodeLength tracks the lengths of episodes in an experiment.
//
// Note: an episode must finish for this Tracker to record its data. If
// the last episode in an experiment does not finish, that episode's
// length is not recorded.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength Tracker which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) Tracker {
	var saver EpisodeLength
	saver.filename = filename
	return &saver
}

// Track tracks the episode lengths in an experiment, recording the
// step number of each timestep that ends an episode
func (e *EpisodeLength) Track(t ts.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(t.Number))
	}
}

// Data returns the length of each completed episode, in order
func (e *EpisodeLength) Data() []float64 {
	return e.episodeLengths
}

// Save saves the data tracked by the EpisodeLength Tracker to disk
func (e *EpisodeLength) Save() {
	save(e.filename, e.episodeLengths)
}
