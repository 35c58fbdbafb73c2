// Package experiment implements functionality for running an experiment
package experiment

import (
	"github.com/gridlearn/gridlearn/experiment/tracker"
	ts "github.com/gridlearn/gridlearn/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments track environment TimeSteps, sending each TimeStep to
// their registered Trackers, which cache data to be later saved to disk
// with Save(). The Run() method runs all episodes until the episode
// limit is reached. The RunEpisode() method runs a single episode.
//
// Experiments have no internal retry logic. Any error from the
// environment or agent aborts the experiment and propagates to the
// caller.
type Experiment interface {
	Run() error
	RunEpisode() error

	// Save all tracked data to disk
	Save()

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)
}

// track sends the current timestep to each tracker
func track(trackers []tracker.Tracker, t ts.TimeStep) {
	for _, tr := range trackers {
		tr.Track(t)
	}
}
