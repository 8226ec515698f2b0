package systems

import (
	"github.com/automoto/matchrun/archetypes"
	"github.com/automoto/matchrun/components"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// GetAudio returns the scene's audio state, creating it on first use with
// the persisted volume settings.
func GetAudio(e *ecs.ECS) *components.AudioData {
	if entry, ok := components.Audio.First(e.World); ok {
		return components.Audio.Get(entry)
	}
	entry := archetypes.Audio.Spawn(e)
	settings := LoadSettings()
	components.Audio.SetValue(entry, components.AudioData{
		MusicVolume: settings.MusicVolume,
		SFXVolume:   settings.SFXVolume,
		Muted:       settings.Muted,
	})
	return components.Audio.Get(entry)
}

// QueueCue pushes a one-shot cue for the playback pass.
func QueueCue(e *ecs.ECS, id components.SoundID) {
	GetAudio(e).QueueCue(id)
}

// UpdateAudio consumes pending cues. Playback is delegated to whatever sink
// is installed; with none installed the cues are logged and dropped so the
// simulation never blocks on audio.
func UpdateAudio(e *ecs.ECS) {
	audio := GetAudio(e)
	if len(audio.PendingCues) == 0 {
		return
	}
	if !audio.Muted {
		for _, id := range audio.PendingCues {
			log.Debug().Int("cue", int(id)).Float64("vol", audio.SFXVolume).Msg("sfx")
		}
	}
	audio.PendingCues = audio.PendingCues[:0]
}

// DisableSecondListener marks the second player's listener redundant once
// both players share one mix.
func DisableSecondListener(e *ecs.ECS) {
	GetAudio(e).SecondListenerDisabled = true
}

// SetVolumes applies and persists volume settings.
func SetVolumes(e *ecs.ECS, music, sfx float64, muted bool) {
	audio := GetAudio(e)
	audio.MusicVolume = clampVolume(music)
	audio.SFXVolume = clampVolume(sfx)
	audio.Muted = muted
	SaveSettings(Settings{
		MusicVolume: audio.MusicVolume,
		SFXVolume:   audio.SFXVolume,
		Muted:       audio.Muted,
	})
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
