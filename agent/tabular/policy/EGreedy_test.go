package policy

import (
	"math"
	"testing"

	"github.com/gridlearn/gridlearn/table"
	"github.com/gridlearn/gridlearn/timestep"
)

const testSeed uint64 = 192382

func newTestTable(t *testing.T, states, actions int) *table.Table {
	tab, err := table.New(states, actions)
	if err != nil {
		t.Fatalf("could not create table: %v", err)
	}
	return tab
}

func sampleActions(t *testing.T, p *EGreedy, state, draws int) []int {
	counts := make([]int, p.Table().NumActions())
	step := timestep.New(timestep.First, 0, state, 0)

	for i := 0; i < draws; i++ {
		action, err := p.SelectAction(step)
		if err != nil {
			t.Fatalf("could not select action: %v", err)
		}
		counts[action]++
	}
	return counts
}

func TestSelectActionGreedyUniqueMax(t *testing.T) {
	tab := newTestTable(t, 1, 4)
	tab.Set(0, 0, 0.1)
	tab.Set(0, 1, 0.5)
	tab.Set(0, 2, 0.2)
	tab.Set(0, 3, -0.4)

	p := NewEGreedy(0.0, testSeed, tab)
	counts := sampleActions(t, p, 0, 1000)

	if counts[1] != 1000 {
		t.Errorf("greedy policy selected the max action %d/1000 times",
			counts[1])
	}
}

func TestSelectActionFullExplorationUniform(t *testing.T) {
	tab := newTestTable(t, 1, 4)
	tab.Set(0, 2, 1.0) // a strict max that full exploration must ignore

	p := NewEGreedy(1.0, testSeed, tab)

	draws := 40000
	counts := sampleActions(t, p, 0, draws)

	expected := float64(draws) / 4
	for a, count := range counts {
		if math.Abs(float64(count)-expected) > 0.1*expected {
			t.Errorf("action %d selected %d times, want about %v",
				a, count, expected)
		}
	}
}

func TestSelectActionDegenerateRowUniform(t *testing.T) {
	// An all-zero row with epsilon = 0 must not collapse onto action 0
	tab := newTestTable(t, 1, 4)
	p := NewEGreedy(0.0, testSeed, tab)

	draws := 40000
	counts := sampleActions(t, p, 0, draws)

	expected := float64(draws) / 4
	for a, count := range counts {
		if math.Abs(float64(count)-expected) > 0.1*expected {
			t.Errorf("action %d selected %d times, want about %v",
				a, count, expected)
		}
	}
}

func TestSelectActionEvalDeterministic(t *testing.T) {
	// Evaluation mode takes the first-index argmax even on degenerate
	// or tied rows
	tab := newTestTable(t, 2, 4)
	tab.Set(1, 1, 0.5)
	tab.Set(1, 3, 0.5)

	p := NewGreedy(testSeed, tab)
	if !p.IsEval() {
		t.Fatal("greedy policy should be in evaluation mode")
	}

	counts := sampleActions(t, p, 0, 100)
	if counts[0] != 100 {
		t.Errorf("eval mode on a zero row selected action 0 %d/100 times",
			counts[0])
	}

	counts = sampleActions(t, p, 1, 100)
	if counts[1] != 100 {
		t.Errorf("eval mode on a tied row selected action 1 %d/100 times",
			counts[1])
	}
}

func TestSelectActionOutOfRangeState(t *testing.T) {
	tab := newTestTable(t, 2, 2)
	p := NewEGreedy(0.5, testSeed, tab)

	step := timestep.New(timestep.First, 0, 2, 0)
	if _, err := p.SelectAction(step); err == nil {
		t.Error("expected error for out-of-range state")
	}
}

func TestTrainEvalToggle(t *testing.T) {
	tab := newTestTable(t, 1, 2)
	p := NewEGreedy(1.0, testSeed, tab)

	if p.IsEval() {
		t.Error("new EGreedy should start in training mode")
	}
	p.Eval()
	if !p.IsEval() {
		t.Error("Eval() should put the policy in evaluation mode")
	}
	p.Train()
	if p.IsEval() {
		t.Error("Train() should put the policy back in training mode")
	}
}
