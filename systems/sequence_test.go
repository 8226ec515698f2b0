package systems

import (
	"testing"

	"github.com/automoto/matchrun/archetypes"
	"github.com/automoto/matchrun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// step advances fixed-timestep systems n frames.
func step(e *ecs.ECS, n int, systems ...func(*ecs.ECS)) {
	for i := 0; i < n; i++ {
		for _, s := range systems {
			s(e)
		}
	}
}

func TestSequenceRunsStepsInOrder(t *testing.T) {
	e := newTestECS()
	owner := archetypes.Race.Spawn(e)

	var ran []int
	StartSequence(e, owner,
		components.SequenceStep{Delay: 0.5, Run: func() { ran = append(ran, 1) }},
		components.SequenceStep{Delay: 0.5, Run: func() { ran = append(ran, 2) }},
	)

	step(e, 29, UpdateSequences) // just under 0.5s
	if len(ran) != 0 {
		t.Fatalf("steps ran early: %v", ran)
	}
	step(e, 2, UpdateSequences)
	if len(ran) != 1 || ran[0] != 1 {
		t.Fatalf("expected first step only, got %v", ran)
	}
	step(e, 31, UpdateSequences)
	if len(ran) != 2 || ran[1] != 2 {
		t.Fatalf("expected both steps, got %v", ran)
	}
}

func TestSequenceSweepsWhenFinished(t *testing.T) {
	e := newTestECS()
	owner := archetypes.Race.Spawn(e)

	StartSequence(e, owner, components.SequenceStep{Delay: 0.1, Run: func() {}})
	step(e, 10, UpdateSequences)

	count := 0
	components.Sequence.Each(e.World, func(*donburi.Entry) { count++ })
	if count != 0 {
		t.Fatalf("expected finished sequence removed, found %d", count)
	}
}

func TestCancelDropsAllPendingSteps(t *testing.T) {
	e := newTestECS()
	owner := archetypes.Race.Spawn(e)

	ran := 0
	StartSequence(e, owner,
		components.SequenceStep{Delay: 0.1, Run: func() { ran++ }},
		components.SequenceStep{Delay: 0.1, Run: func() { ran++ }},
	)

	CancelSequencesFor(e, owner)
	step(e, 60, UpdateSequences)

	if ran != 0 {
		t.Fatalf("canceled sequence still ran %d steps", ran)
	}
}

func TestCancelMidSequenceStopsRemaining(t *testing.T) {
	e := newTestECS()
	owner := archetypes.Race.Spawn(e)

	ran := 0
	StartSequence(e, owner,
		components.SequenceStep{Delay: 0.1, Run: func() { ran++ }},
		components.SequenceStep{Delay: 0.5, Run: func() { ran++ }},
	)

	step(e, 10, UpdateSequences)
	if ran != 1 {
		t.Fatalf("expected first step to run, got %d", ran)
	}
	CancelSequencesFor(e, owner)
	step(e, 60, UpdateSequences)
	if ran != 1 {
		t.Fatalf("canceled sequence ran remaining steps, got %d", ran)
	}
}

func TestCancelOnlyTargetsOwner(t *testing.T) {
	e := newTestECS()
	a := archetypes.Race.Spawn(e)
	b := archetypes.Signals.Spawn(e)

	ranA, ranB := 0, 0
	StartSequence(e, a, components.SequenceStep{Delay: 0.1, Run: func() { ranA++ }})
	StartSequence(e, b, components.SequenceStep{Delay: 0.1, Run: func() { ranB++ }})

	CancelSequencesFor(e, a)
	step(e, 10, UpdateSequences)

	if ranA != 0 {
		t.Fatalf("canceled owner's step ran")
	}
	if ranB != 1 {
		t.Fatalf("other owner's step did not run")
	}
}
