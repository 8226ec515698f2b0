package config

import "github.com/yohamta/donburi/ecs"

// Default is the single ECS layer used for all systems and renderers.
const Default ecs.LayerID = 0

// GameStateID represents the process-wide race state.
type GameStateID int

const (
	GameStateDefault GameStateID = iota
	GameStatePregame
	GameStateRunning
	GameStatePaused
	GameStatePostgame
)

func (s GameStateID) String() string {
	switch s {
	case GameStatePregame:
		return "Pregame"
	case GameStateRunning:
		return "Running"
	case GameStatePaused:
		return "Paused"
	case GameStatePostgame:
		return "Postgame"
	}
	return "Default"
}

// GameModeID represents the selected race mode. Immutable for the duration
// of a race; set when a race scene is requested.
type GameModeID int

const (
	GameModeDefault GameModeID = iota
	GameModeSolo
	GameModeCoop
	GameModeVersus
)

func (m GameModeID) String() string {
	switch m {
	case GameModeSolo:
		return "Solo"
	case GameModeCoop:
		return "Coop"
	case GameModeVersus:
		return "Versus"
	}
	return "Default"
}

// PlayersRequired returns the join quorum for the mode.
func (m GameModeID) PlayersRequired() int {
	if m == GameModeCoop || m == GameModeVersus {
		return 2
	}
	return 1
}

// Scene identifiers accepted by the mode-select entry points.
// SceneCurrent reloads the active race scene with its current mode.
const (
	SceneMenu    = "Menu"
	SceneSolo    = "Solo"
	SceneCoop    = "Coop"
	SceneVersus  = "Versus"
	SceneCurrent = "Current"
)

// ModeForScene maps a scene identifier to its game mode. Any identifier
// that is not a race scene maps to GameModeDefault.
func ModeForScene(name string) GameModeID {
	switch name {
	case SceneSolo:
		return GameModeSolo
	case SceneCoop:
		return GameModeCoop
	case SceneVersus:
		return GameModeVersus
	}
	return GameModeDefault
}

// IsRaceScene reports whether the identifier names a playable course.
func IsRaceScene(name string) bool {
	return ModeForScene(name) != GameModeDefault
}
