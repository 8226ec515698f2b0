package systems

import (
	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePostgame handles the result screen choices: retry the same course
// or go back to the menu.
func UpdatePostgame(e *ecs.ECS) {
	race := GetRace(e)
	if race.State != cfg.GameStatePostgame {
		return
	}

	if MergedAction(e, cfg.ActionMenuSelect).JustPressed {
		QueueCue(e, components.SoundMenuSelect)
		RequestSceneTransition(e, cfg.SceneCurrent)
		return
	}
	if MergedAction(e, cfg.ActionMenuBack).JustPressed {
		QueueCue(e, components.SoundMenuSelect)
		RequestSceneTransition(e, cfg.SceneMenu)
	}
}

// RecordResult persists the clear time for time-trial modes. Called once on
// Postgame entry by the race scene.
func RecordResult(e *ecs.ECS) {
	race := GetRace(e)
	if race.Won {
		RecordBestTime(race.Mode, race.Clock)
	}
}
