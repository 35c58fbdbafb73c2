package cmd

import (
	"fmt"
	"time"

	"github.com/gosuri/uilive"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/gridlearn/gridlearn/agent/tabular/qlearning"
	"github.com/gridlearn/gridlearn/environment"
	"github.com/gridlearn/gridlearn/environment/gridworld"
	"github.com/gridlearn/gridlearn/experiment"
	"github.com/gridlearn/gridlearn/experiment/tracker"
)

type trainFlags struct {
	episodes uint
	trials   uint
	alpha    float64
	gamma    float64
	epsilon  float64
	cutoff   int
	seed     uint64
	grid     string
	slippery bool
	dataFile string
	renderTo string
}

// TrainCommand returns the train command, which trains a Q-learning
// agent on a grid world and evaluates the learned greedy policy
func TrainCommand() *cobra.Command {
	var flags trainFlags

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a Q-learning agent and evaluate its greedy policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(flags)
		},
	}

	cmd.Flags().UintVar(&flags.episodes, "episodes", 10000,
		"number of training episodes")
	cmd.Flags().UintVar(&flags.trials, "trials", 100,
		"number of greedy evaluation episodes")
	cmd.Flags().Float64Var(&flags.alpha, "alpha", 0.1, "learning rate")
	cmd.Flags().Float64Var(&flags.gamma, "gamma", 0.99, "discount factor")
	cmd.Flags().Float64Var(&flags.epsilon, "epsilon", 0.1,
		"exploration rate of the behaviour policy")
	cmd.Flags().IntVar(&flags.cutoff, "cutoff", 100,
		"episode step limit (0 for no limit)")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 1923,
		"random number generator seed")
	cmd.Flags().StringVar(&flags.grid, "grid", "4x4",
		"grid layout (4x4 or 8x8)")
	cmd.Flags().BoolVar(&flags.slippery, "slippery", false,
		"use stochastic (slippery) transitions")
	cmd.Flags().StringVar(&flags.dataFile, "data", "",
		"file to save per-episode returns to")
	cmd.Flags().StringVar(&flags.renderTo, "render", "",
		"PNG file to render the learned value map to")

	return cmd
}

func runTrain(flags trainFlags) error {
	var layout gridworld.Layout
	switch flags.grid {
	case "4x4":
		layout = gridworld.FourByFour()
	case "8x8":
		layout = gridworld.EightByEight()
	default:
		return fmt.Errorf("train: unknown grid layout %q", flags.grid)
	}

	// Sparse binary reward: 1 at the goal, 0 everywhere else
	task := gridworld.NewGoal(layout, 0.0, 1.0)
	starter, err := environment.NewSingleStart(layout.Start())
	if err != nil {
		return fmt.Errorf("train: %v", err)
	}
	env, _, err := gridworld.New(layout, task, starter, flags.slippery,
		flags.cutoff, flags.seed)
	if err != nil {
		return fmt.Errorf("train: %v", err)
	}

	config := qlearning.Config{
		Epsilon:      flags.epsilon,
		LearningRate: flags.alpha,
		Discount:     flags.gamma,
	}
	created, err := config.CreateAgent(env, flags.seed)
	if err != nil {
		return fmt.Errorf("train: %v", err)
	}
	q := created.(*qlearning.QLearning)

	returns := tracker.NewReturn(flags.dataFile)
	exp := experiment.NewOnline(env, q, flags.episodes,
		[]tracker.Tracker{returns})

	if err := runEpisodes(exp, returns, flags.episodes); err != nil {
		return fmt.Errorf("train: %v", err)
	}

	if flags.dataFile != "" {
		exp.Save()
	}
	if flags.renderTo != "" {
		if err := env.Render(q.Table(), flags.renderTo); err != nil {
			return fmt.Errorf("train: %v", err)
		}
	}

	// Evaluate the learned greedy policy
	eval := experiment.NewEvaluation(env, q.TargetPolicy(), flags.trials)
	summary, err := eval.Run()
	if err != nil {
		return fmt.Errorf("train: %v", err)
	}

	fmt.Println(summary)
	return nil
}

// runEpisodes drives the training experiment episode by episode,
// keeping a live readout of recent training performance on the
// terminal
func runEpisodes(exp *experiment.Online, returns tracker.Tracker,
	episodes uint) error {

	const window = 100

	writer := uilive.New()
	writer.RefreshInterval = 100 * time.Millisecond
	writer.Start()
	defer writer.Stop()

	for i := uint(0); i < episodes; i++ {
		if err := exp.RunEpisode(); err != nil {
			return err
		}

		if (i+1)%window == 0 || i+1 == episodes {
			data := returns.Data()
			recent := data
			if len(data) > window {
				recent = data[len(data)-window:]
			}
			fmt.Fprintf(writer, "episode %d/%d  |  mean return "+
				"(last %d): %.4f\n", i+1, episodes, len(recent),
				stat.Mean(recent, nil))
		}
	}
	return nil
}
