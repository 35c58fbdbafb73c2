package experiment

import (
	"fmt"

	"github.com/gridlearn/gridlearn/agent"
	env "github.com/gridlearn/gridlearn/environment"
	"github.com/gridlearn/gridlearn/experiment/tracker"
)

// Online is an Experiment that trains an agent online for a fixed
// number of episodes. The agent's action-value table is mutated in
// place over the full duration of the experiment; no offline evaluation
// is performed.
type Online struct {
	env.Environment
	agent.Agent
	numEpisodes     uint
	currentEpisodes uint
	trackers        []tracker.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The episodes parameter determines how
// many episodes the experiment is run for, and the t parameter is a
// slice of tracker.Tracker which determine what data is tracked.
func NewOnline(e env.Environment, a agent.Agent, episodes uint,
	t []tracker.Tracker) *Online {
	return &Online{e, a, episodes, 0, t}
}

// Register registers a tracker.Tracker with the Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// EpisodesCompleted returns the number of episodes the experiment has
// completed so far
func (o *Online) EpisodesCompleted() uint {
	return o.currentEpisodes
}

// RunEpisode runs a single training episode
func (o *Online) RunEpisode() error {
	o.Agent.Train()

	step := o.Environment.Reset()
	if err := o.Agent.ObserveFirst(step); err != nil {
		return fmt.Errorf("runEpisode: %v", err)
	}
	track(o.trackers, step)

	done := false
	for !done {
		// Select action, step in environment
		action, err := o.Agent.SelectAction(step)
		if err != nil {
			return fmt.Errorf("runEpisode: %v", err)
		}

		step, done, err = o.Environment.Step(action)
		if err != nil {
			return fmt.Errorf("runEpisode: %v", err)
		}

		// Cache the environment step in each Tracker
		track(o.trackers, step)

		// Observe the timestep and step the agent
		if err := o.Agent.Observe(action, step); err != nil {
			return fmt.Errorf("runEpisode: %v", err)
		}
		if err := o.Agent.Step(); err != nil {
			return fmt.Errorf("runEpisode: %v", err)
		}
	}

	o.Agent.EndEpisode()
	o.currentEpisodes++
	return nil
}

// Run runs the entire experiment for all episodes
func (o *Online) Run() error {
	for o.currentEpisodes < o.numEpisodes {
		if err := o.RunEpisode(); err != nil {
			return err
		}
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}
