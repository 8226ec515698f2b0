package systems

import (
	"github.com/automoto/matchrun/archetypes"
	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartSequence schedules a timed step sequence owned by owner. Steps run in
// order, each after its own delay, driven by UpdateSequences.
func StartSequence(e *ecs.ECS, owner *donburi.Entry, steps ...components.SequenceStep) *donburi.Entry {
	entry := archetypes.Sequence.Spawn(e)
	components.Sequence.SetValue(entry, components.SequenceData{
		Owner: owner,
		Steps: steps,
	})
	return entry
}

// CancelSequencesFor drops every pending sequence owned by owner, including
// steps that would have run this frame.
func CancelSequencesFor(e *ecs.ECS, owner *donburi.Entry) {
	components.Sequence.Each(e.World, func(entry *donburi.Entry) {
		seq := components.Sequence.Get(entry)
		if seq.Owner == owner {
			seq.Canceled = true
		}
	})
}

// UpdateSequences advances all pending sequences by one fixed timestep and
// sweeps finished or canceled ones.
func UpdateSequences(e *ecs.ECS) {
	var done []*donburi.Entry

	components.Sequence.Each(e.World, func(entry *donburi.Entry) {
		seq := components.Sequence.Get(entry)
		if seq.Canceled {
			done = append(done, entry)
			return
		}

		seq.Elapsed += cfg.C.Dt
		for seq.Index < len(seq.Steps) && !seq.Canceled {
			step := seq.Steps[seq.Index]
			if seq.Elapsed < step.Delay {
				break
			}
			seq.Elapsed -= step.Delay
			seq.Index++
			if step.Run != nil {
				step.Run()
			}
		}

		if seq.Index >= len(seq.Steps) || seq.Canceled {
			done = append(done, entry)
		}
	})

	for _, entry := range done {
		if entry.Valid() {
			entry.Remove()
		}
	}
}
