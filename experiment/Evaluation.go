package experiment

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/gridlearn/gridlearn/agent"
	env "github.com/gridlearn/gridlearn/environment"
	"github.com/gridlearn/gridlearn/experiment/tracker"
)

// Summary aggregates the performance of a policy over the trial
// episodes of an Evaluation
type Summary struct {
	Trials      uint
	Successes   uint
	MeanReturn  float64
	MaxSteps    int
	SuccessRate float64
}

func (s Summary) String() string {
	str := "Evaluation | Trials: %d  |  Mean Return: %.4f  |  " +
		"Max Steps: %d  |  Success Rate: %.4f"

	return fmt.Sprintf(str, s.Trials, s.MeanReturn, s.MaxSteps,
		s.SuccessRate)
}

// Evaluation measures the performance of a learned policy. The policy
// is run in evaluation mode (purely greedy, no exploration) for a fixed
// number of trial episodes, and no learning updates are made: the
// action-value table is read, never written. Unlike an Experiment,
// Run() returns the aggregated Summary alongside any error.
//
// A trial counts as a success when its accumulated reward equals the
// environment task's maximal per-episode return.
type Evaluation struct {
	env.Environment
	policy   agent.Policy
	trials   uint
	returns  *tracker.Return
	lengths  *tracker.EpisodeLength
	trackers []tracker.Tracker
}

// NewEvaluation creates and returns a new Evaluation of the argument
// policy on the argument environment over trials episodes
func NewEvaluation(e env.Environment, p agent.Policy,
	trials uint) *Evaluation {

	returns := tracker.NewReturn("").(*tracker.Return)
	lengths := tracker.NewEpisodeLength("").(*tracker.EpisodeLength)

	return &Evaluation{
		Environment: e,
		policy:      p,
		trials:      trials,
		returns:     returns,
		lengths:     lengths,
		trackers:    []tracker.Tracker{returns, lengths},
	}
}

// Register registers a tracker.Tracker with the Evaluation
func (e *Evaluation) Register(t tracker.Tracker) {
	e.trackers = append(e.trackers, t)
}

// RunEpisode runs a single greedy trial episode
func (e *Evaluation) RunEpisode() error {
	e.policy.Eval()

	step := e.Environment.Reset()
	track(e.trackers, step)

	done := false
	for !done {
		action, err := e.policy.SelectAction(step)
		if err != nil {
			return fmt.Errorf("runEpisode: %v", err)
		}

		step, done, err = e.Environment.Step(action)
		if err != nil {
			return fmt.Errorf("runEpisode: %v", err)
		}

		track(e.trackers, step)
	}

	return nil
}

// Run runs all trial episodes and returns the aggregated Summary
func (e *Evaluation) Run() (Summary, error) {
	for i := uint(0); i < e.trials; i++ {
		if err := e.RunEpisode(); err != nil {
			return Summary{}, err
		}
	}
	return e.summarize(), nil
}

// Returns returns the per-trial episodic returns, in order
func (e *Evaluation) Returns() []float64 {
	return e.returns.Data()
}

// EpisodeLengths returns the per-trial episode lengths, in order
func (e *Evaluation) EpisodeLengths() []float64 {
	return e.lengths.Data()
}

// Save is a no-op: an Evaluation reports through its Summary, and its
// raw sequences are available in memory
func (e *Evaluation) Save() {}

// summarize aggregates the tracked trial data into a Summary
func (e *Evaluation) summarize() Summary {
	returns := e.returns.Data()
	lengths := e.lengths.Data()

	summary := Summary{Trials: e.trials}
	if len(returns) == 0 {
		return summary
	}

	maxReturn := e.Environment.MaxReturn()
	for _, ret := range returns {
		if ret == maxReturn {
			summary.Successes++
		}
	}

	summary.MeanReturn = stat.Mean(returns, nil)
	summary.MaxSteps = int(floats.Max(lengths))
	summary.SuccessRate = float64(summary.Successes) / float64(e.trials)
	return summary
}
