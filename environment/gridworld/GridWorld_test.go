package gridworld

import (
	"testing"

	"github.com/gridlearn/gridlearn/environment"
	"github.com/gridlearn/gridlearn/timestep"
)

const testSeed uint64 = 192382

func newTestWorld(t *testing.T, layout Layout, slippery bool,
	cutoff int) *GridWorld {

	task := NewGoal(layout, 0.0, 1.0)
	starter, err := environment.NewSingleStart(layout.Start())
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}
	g, first, err := New(layout, task, starter, slippery, cutoff, testSeed)
	if err != nil {
		t.Fatalf("could not create gridworld: %v", err)
	}
	if !first.First() {
		t.Fatalf("first timestep has type %v", first.StepType)
	}
	return g
}

func TestLayoutParsing(t *testing.T) {
	layout, err := NewLayout([]string{
		"SFF",
		"FHF",
		"FFG",
	})
	if err != nil {
		t.Fatalf("could not parse layout: %v", err)
	}

	if layout.Rows() != 3 || layout.Cols() != 3 {
		t.Errorf("dims = (%d, %d), want (3, 3)", layout.Rows(),
			layout.Cols())
	}
	if layout.Start() != 0 {
		t.Errorf("start = %d, want 0", layout.Start())
	}
	if layout.Goal() != 8 {
		t.Errorf("goal = %d, want 8", layout.Goal())
	}
	if !layout.IsHole(4) {
		t.Error("state 4 should be a hole")
	}
	if layout.IsHole(1) {
		t.Error("state 1 should not be a hole")
	}
}

func TestLayoutParsingErrors(t *testing.T) {
	bad := [][]string{
		{},              // empty
		{"SF", "FFG"},   // ragged
		{"SFS", "FFG"},  // two starts
		{"SFF", "FGG"},  // two goals
		{"FFF", "FFG"},  // no start
		{"SFF", "FFF"},  // no goal
		{"SXF", "FFG"},  // unknown cell
	}
	for i, cells := range bad {
		if _, err := NewLayout(cells); err == nil {
			t.Errorf("layout %d should have been rejected: %v", i, cells)
		}
	}
}

func TestDefaultLayouts(t *testing.T) {
	four := FourByFour()
	if four.Rows() != 4 || four.Cols() != 4 {
		t.Errorf("4x4 dims = (%d, %d)", four.Rows(), four.Cols())
	}
	if four.Start() != 0 || four.Goal() != 15 {
		t.Errorf("4x4 start = %d, goal = %d", four.Start(), four.Goal())
	}
	for _, hole := range []int{5, 7, 11, 12} {
		if !four.IsHole(hole) {
			t.Errorf("4x4 state %d should be a hole", hole)
		}
	}

	eight := EightByEight()
	if eight.Rows() != 8 || eight.Cols() != 8 {
		t.Errorf("8x8 dims = (%d, %d)", eight.Rows(), eight.Cols())
	}
}

func TestDeterministicMovement(t *testing.T) {
	g := newTestWorld(t, FourByFour(), false, 0)

	// Moving right from the start lands in state 1
	step, done, err := g.Step(ActionRight)
	if err != nil {
		t.Fatalf("could not step: %v", err)
	}
	if done {
		t.Error("episode should not be done")
	}
	if step.State != 1 {
		t.Errorf("state = %d, want 1", step.State)
	}
	if step.Reward != 0.0 {
		t.Errorf("reward = %v, want 0", step.Reward)
	}
	if step.Number != 1 {
		t.Errorf("step number = %d, want 1", step.Number)
	}

	// Moving up at the top border stays in place
	step, _, err = g.Step(ActionUp)
	if err != nil {
		t.Fatalf("could not step: %v", err)
	}
	if step.State != 1 {
		t.Errorf("state = %d, want 1 (border clamp)", step.State)
	}
}

func TestHoleTerminates(t *testing.T) {
	g := newTestWorld(t, FourByFour(), false, 0)

	// Down then right lands in the hole at state 5
	if _, _, err := g.Step(ActionDown); err != nil {
		t.Fatalf("could not step: %v", err)
	}
	step, done, err := g.Step(ActionRight)
	if err != nil {
		t.Fatalf("could not step: %v", err)
	}

	if !done || !step.Last() {
		t.Error("falling into a hole should end the episode")
	}
	if step.State != 5 {
		t.Errorf("state = %d, want 5", step.State)
	}
	if step.Reward != 0.0 {
		t.Errorf("hole reward = %v, want 0", step.Reward)
	}
}

func TestGoalTerminatesWithReward(t *testing.T) {
	g := newTestWorld(t, FourByFour(), false, 0)

	// A safe path on the 4x4 layout: down, down, right, right, down,
	// right reaches the goal
	path := []int{ActionDown, ActionDown, ActionRight, ActionRight,
		ActionDown, ActionRight}

	var step timestep.TimeStep
	var done bool
	var err error
	for _, action := range path {
		if done {
			t.Fatal("episode ended before reaching the goal")
		}
		step, done, err = g.Step(action)
		if err != nil {
			t.Fatalf("could not step: %v", err)
		}
	}

	if !done || !step.Last() {
		t.Error("reaching the goal should end the episode")
	}
	if step.State != 15 {
		t.Errorf("state = %d, want 15", step.State)
	}
	if step.Reward != 1.0 {
		t.Errorf("goal reward = %v, want 1", step.Reward)
	}
}

func TestStepLimitTruncates(t *testing.T) {
	g := newTestWorld(t, FourByFour(), false, 3)

	// Bouncing off the left border never terminates, so the step
	// limit must truncate the episode
	var done bool
	var step timestep.TimeStep
	var err error
	for i := 0; i < 3; i++ {
		if done {
			t.Fatal("episode done before the step limit")
		}
		step, done, err = g.Step(ActionLeft)
		if err != nil {
			t.Fatalf("could not step: %v", err)
		}
	}

	if !done || !step.Last() {
		t.Error("episode should be truncated at the step limit")
	}
	if step.Reward != 0.0 {
		t.Errorf("truncation reward = %v, want 0", step.Reward)
	}
}

func TestResetRestartsEpisode(t *testing.T) {
	g := newTestWorld(t, FourByFour(), false, 0)

	if _, _, err := g.Step(ActionRight); err != nil {
		t.Fatalf("could not step: %v", err)
	}

	step := g.Reset()
	if !step.First() {
		t.Errorf("reset step type = %v, want First", step.StepType)
	}
	if step.State != 0 {
		t.Errorf("reset state = %d, want 0", step.State)
	}
	if step.Number != 0 {
		t.Errorf("reset step number = %d, want 0", step.Number)
	}
}

func TestInvalidActionRejected(t *testing.T) {
	g := newTestWorld(t, FourByFour(), false, 0)

	for _, action := range []int{-1, 4, 100} {
		if _, _, err := g.Step(action); err == nil {
			t.Errorf("expected error for action %d", action)
		}
	}
}

func TestSampleActionInRange(t *testing.T) {
	g := newTestWorld(t, FourByFour(), false, 0)

	for i := 0; i < 1000; i++ {
		if a := g.SampleAction(); a < 0 || a >= g.NumActions() {
			t.Fatalf("sampled action %d out of range", a)
		}
	}
}

func TestUniformStarterRandomStarts(t *testing.T) {
	layout := FourByFour()
	task := NewGoal(layout, 0.0, 1.0)

	// Start episodes from either of two frozen cells
	starter, err := environment.NewUniformStarter([]int{0, 8}, testSeed)
	if err != nil {
		t.Fatalf("could not create starter: %v", err)
	}
	g, _, err := New(layout, task, starter, false, 0, testSeed)
	if err != nil {
		t.Fatalf("could not create gridworld: %v", err)
	}

	seen := make(map[int]int)
	for i := 0; i < 200; i++ {
		step := g.Reset()
		if step.State != 0 && step.State != 8 {
			t.Fatalf("reset state = %d, want 0 or 8", step.State)
		}
		seen[step.State]++
	}
	if seen[0] == 0 || seen[8] == 0 {
		t.Errorf("start states not sampled from both cells: %v", seen)
	}
}

func TestSlipperyStaysOnGrid(t *testing.T) {
	g := newTestWorld(t, FourByFour(), true, 50)

	for episode := 0; episode < 20; episode++ {
		g.Reset()
		done := false
		for !done {
			var step timestep.TimeStep
			var err error
			step, done, err = g.Step(g.SampleAction())
			if err != nil {
				t.Fatalf("could not step: %v", err)
			}
			if step.State < 0 || step.State >= g.NumStates() {
				t.Fatalf("state %d out of range", step.State)
			}
		}
	}
}
