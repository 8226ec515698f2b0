package components

import "github.com/yohamta/donburi"

// SequenceStep is one resumable step of a frame-driven sequence: wait Delay
// seconds, then run. Run may be nil for a pure pause.
type SequenceStep struct {
	Delay float64
	Run   func()
}

// SequenceData is a multi-step timed sequence advanced by the sequence
// system each frame. It replaces suspend/resume coroutines: countdowns,
// burn-out delays and fade choreography are all sequences.
//
// Owner ties the sequence to an entity so that cancellation ("stop all
// routines for this entity") can drop every pending step at once.
// Cancellation is a latch checked before each step, so a canceled sequence
// never runs another step even mid-frame.
type SequenceData struct {
	Owner    *donburi.Entry
	Steps    []SequenceStep
	Index    int
	Elapsed  float64
	Canceled bool
}

var Sequence = donburi.NewComponentType[SequenceData]()
