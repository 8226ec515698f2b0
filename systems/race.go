package systems

import (
	"fmt"

	"github.com/automoto/matchrun/archetypes"
	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/signals"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetRace returns the singleton race context, creating it on first use.
// The context is scene-owned: a fresh world means a fresh Default state.
func GetRace(e *ecs.ECS) *components.RaceData {
	if entry, ok := components.Race.First(e.World); ok {
		return components.Race.Get(entry)
	}
	entry := archetypes.Race.Spawn(e)
	components.Race.SetValue(entry, components.RaceData{
		CountdownValue: -1,
		Current:        map[int]*donburi.Entry{},
	})
	return components.Race.Get(entry)
}

func raceEntry(e *ecs.ECS) *donburi.Entry {
	GetRace(e)
	entry, _ := components.Race.First(e.World)
	return entry
}

// GetHub returns the scene's signal hub, creating it on first use.
func GetHub(e *ecs.ECS) *signals.Hub {
	if entry, ok := components.Signals.First(e.World); ok {
		return components.Signals.Get(entry).Hub
	}
	entry := archetypes.Signals.Spawn(e)
	hub := signals.NewHub()
	components.Signals.SetValue(entry, components.SignalsData{Hub: hub})
	return hub
}

// SetGameState assigns the process-wide game state. The canonical value is
// stored and then every subscriber is notified synchronously, so a listener
// observing value V reads the current state back as V.
func SetGameState(e *ecs.ECS, state cfg.GameStateID) {
	race := GetRace(e)
	race.State = state
	if state == cfg.GameStatePregame {
		race.Clock = 0
	}
	GetHub(e).StateChanged.Emit(signals.StateChange{State: state})
}

// SetGameMode fixes the mode for the duration of the race and derives the
// join quorum from it.
func SetGameMode(e *ecs.ECS, mode cfg.GameModeID) {
	race := GetRace(e)
	race.Mode = mode
	race.PlayersRequired = mode.PlayersRequired()
}

// TogglePause flips Running and Paused. Requests in any other state are
// silently ignored.
func TogglePause(e *ecs.ECS) {
	race := GetRace(e)
	switch race.State {
	case cfg.GameStateRunning:
		SetGameState(e, cfg.GameStatePaused)
	case cfg.GameStatePaused:
		SetGameState(e, cfg.GameStateRunning)
	}
}

// BeginJoinWait resets the join quorum for the mode and blocks progression
// until enough players register (or the second-player wait times out).
func BeginJoinWait(e *ecs.ECS) {
	race := GetRace(e)
	race.AwaitingPlayers = true
	race.CountdownStarted = false
	race.SecondPlayerWait = 0
	SetGameState(e, cfg.GameStatePregame)
}

// UpdateRace drives the clock while Running and the join/countdown gate
// while Pregame.
func UpdateRace(e *ecs.ECS) {
	race := GetRace(e)
	switch race.State {
	case cfg.GameStateRunning:
		race.Clock += cfg.C.Dt
	case cfg.GameStatePregame:
		updateJoinWait(e, race)
	}
}

func updateJoinWait(e *ecs.ECS, race *components.RaceData) {
	if !race.AwaitingPlayers {
		return
	}
	race.NoteJoinCount()

	if race.PlayersJoined >= race.PlayersRequired {
		race.AwaitingPlayers = false
		startCountdown(e, race)
		return
	}

	// One of two players present: give the second one ten seconds, then
	// give up and fall back to the menu.
	if race.PlayersJoined == 1 {
		race.SecondPlayerWait += cfg.C.Dt
		if race.SecondPlayerWait >= cfg.Race.SecondPlayerTimeout {
			race.AwaitingPlayers = false
			RequestSceneTransition(e, cfg.SceneMenu)
		}
	}
}

func startCountdown(e *ecs.ECS, race *components.RaceData) {
	if race.CountdownStarted {
		return
	}
	race.CountdownStarted = true
	race.CountdownValue = cfg.Race.CountdownSteps
	QueueCue(e, components.SoundCountdownTick)

	var steps []components.SequenceStep
	for v := cfg.Race.CountdownSteps - 1; v >= 1; v-- {
		value := v
		steps = append(steps, components.SequenceStep{
			Delay: cfg.Race.CountdownInterval,
			Run: func() {
				race.CountdownValue = value
				QueueCue(e, components.SoundCountdownTick)
			},
		})
	}
	steps = append(steps, components.SequenceStep{
		Delay: cfg.Race.CountdownInterval,
		Run: func() {
			race.CountdownValue = -1
			QueueCue(e, components.SoundCountdownGo)
			SetGameState(e, cfg.GameStateRunning)
			ActivateStartingMatches(e)
		},
	})
	StartSequence(e, raceEntry(e), steps...)
}

// BindRaceSignals subscribes the state machine to the win/loss/pause
// signals for this scene's world.
func BindRaceSignals(e *ecs.ECS) {
	hub := GetHub(e)
	hub.ReachedBonfire.Subscribe(func(g signals.GoalReached) {
		handleGoal(e, g)
	})
	hub.BurnedOut.Subscribe(func(b signals.BurnOut) {
		handleBurnOut(e, b)
	})
	hub.PauseRequested.Subscribe(func(signals.PauseRequest) {
		TogglePause(e)
	})
	hub.StateChanged.Subscribe(func(sc signals.StateChange) {
		if sc.State == cfg.GameStatePostgame {
			RecordResult(e)
		}
	})
}

func handleGoal(e *ecs.ECS, g signals.GoalReached) {
	race := GetRace(e)
	if race.State != cfg.GameStateRunning {
		return
	}

	// Reaching the goal halts every pending sequence of the winning match
	// immediately; nothing may burn or hand off after the win.
	if match, ok := race.CurrentMatch(g.PlayerIndex); ok {
		CancelSequencesFor(e, match)
	}

	race.Won = true
	race.Cause = winText(race.Mode, g.PlayerIndex)
	if race.Mode == cfg.GameModeVersus {
		race.WinnerTag = fmt.Sprintf("%d", g.PlayerIndex+1)
	}
	QueueCue(e, components.SoundWin)
	TriggerScreenShake(e, cfg.Race.PostgameShakePower, cfg.Race.PostgameShakeFrames)
	SetGameState(e, cfg.GameStatePostgame)
}

func handleBurnOut(e *ecs.ECS, b signals.BurnOut) {
	race := GetRace(e)
	if race.State != cfg.GameStateRunning {
		return
	}
	race.Won = false
	race.Cause = b.Cause
	if race.Mode == cfg.GameModeVersus {
		race.WinnerTag = fmt.Sprintf("%d", 2-b.PlayerIndex)
	}
	if b.Doused {
		QueueCue(e, components.SoundDouse)
	} else {
		QueueCue(e, components.SoundBurnOut)
	}
	SetGameState(e, cfg.GameStatePostgame)
}

func winText(mode cfg.GameModeID, playerIndex int) string {
	switch mode {
	case cfg.GameModeVersus:
		return fmt.Sprintf("Player %d wins!", playerIndex+1)
	case cfg.GameModeCoop:
		return "Your team reached the bonfire!"
	}
	return "You reached the bonfire!"
}

// ClockSeconds returns the whole seconds elapsed while Running, for the HUD.
func ClockSeconds(e *ecs.ECS) int {
	return int(GetRace(e).Clock)
}
