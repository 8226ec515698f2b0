package systems

import (
	"encoding/json"

	cfg "github.com/automoto/matchrun/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

// Settings is the on-disk settings payload.
type Settings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	InputScheme int     `json:"inputScheme"`
}

// BestTimes stores the fastest clear per course, in seconds.
type BestTimes struct {
	Solo float64 `json:"solo"`
	Coop float64 `json:"coop"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the gdata store. Failure is non-fatal: the game runs
// with defaults and skips saves.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "matchrun",
	})
	if err != nil {
		log.Warn().Err(err).Msg("persistence unavailable")
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings returns the saved settings, or the defaults when nothing has
// been saved or the store is unavailable.
func LoadSettings() Settings {
	defaults := Settings{
		MusicVolume: cfg.Audio.DefaultMusicVol,
		SFXVolume:   cfg.Audio.DefaultSFXVol,
	}
	if !gdataInitialized || gdataManager == nil {
		return defaults
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil || len(data) == 0 {
		return defaults
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		log.Warn().Err(err).Msg("could not parse saved settings")
		return defaults
	}
	return s
}

// SaveSettings writes settings to the store, best effort.
func SaveSettings(s Settings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
		return err
	}
	return nil
}

// LoadBestTimes returns the saved best clear times; zero means no clear yet.
func LoadBestTimes() BestTimes {
	var best BestTimes
	if !gdataInitialized || gdataManager == nil {
		return best
	}

	data, err := gdataManager.LoadItem("besttimes")
	if err != nil || len(data) == 0 {
		return best
	}
	if err := json.Unmarshal(data, &best); err != nil {
		log.Warn().Err(err).Msg("could not parse best times")
		return BestTimes{}
	}
	return best
}

// RecordBestTime saves a clear time for the mode if it beats the stored one.
// Versus has no best time: it is head to head, not a time trial.
func RecordBestTime(mode cfg.GameModeID, seconds float64) {
	if !gdataInitialized || gdataManager == nil || seconds <= 0 {
		return
	}

	best := LoadBestTimes()
	switch mode {
	case cfg.GameModeSolo:
		if best.Solo != 0 && best.Solo <= seconds {
			return
		}
		best.Solo = seconds
	case cfg.GameModeCoop:
		if best.Coop != 0 && best.Coop <= seconds {
			return
		}
		best.Coop = seconds
	default:
		return
	}

	data, err := json.Marshal(best)
	if err != nil {
		return
	}
	if err := gdataManager.SaveItem("besttimes", data); err != nil {
		log.Warn().Err(err).Msg("could not save best times")
	}
}
