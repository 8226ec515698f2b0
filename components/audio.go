package components

import "github.com/yohamta/donburi"

// SoundID names a one-shot cue for the audio collaborator.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundCountdownTick
	SoundCountdownGo
	SoundIgnite
	SoundDouse
	SoundBurnOut
	SoundWin
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioData is the audio collaborator surface: systems push cue IDs,
// playback consumes and clears them. With two players joined the second
// listener is redundant and stays disabled.
type AudioData struct {
	PendingCues []SoundID

	MusicVolume float64
	SFXVolume   float64
	Muted       bool

	SecondListenerDisabled bool
}

var Audio = donburi.NewComponentType[AudioData]()

// QueueCue appends a one-shot cue, fire-and-forget.
func (a *AudioData) QueueCue(id SoundID) {
	a.PendingCues = append(a.PendingCues, id)
}
