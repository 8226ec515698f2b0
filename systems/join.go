package systems

import (
	"github.com/automoto/matchrun/archetypes"
	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/signals"
	"github.com/automoto/matchrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnPlayerJoin registers a player on a device and returns the assigned
// index. Indices are sequential in join order; there is no leave path.
func OnPlayerJoin(e *ecs.ECS, gamepadID *ebiten.GamepadID, scheme cfg.ControlSchemeID) int {
	race := GetRace(e)
	index := race.PlayersJoined
	race.PlayersJoined++

	entry := archetypes.Player.Spawn(e)
	components.Player.SetValue(entry, components.PlayerData{
		PlayerIndex:   index,
		GamepadID:     gamepadID,
		ControlScheme: scheme,
	})
	components.PlayerInput.SetValue(entry, components.PlayerInputData{
		PlayerIndex: index,
	})

	// Both players hear the same mix; a second listener would double it.
	if index == 1 {
		DisableSecondListener(e)
	}

	log.Info().Int("player", index).Msg("player joined")
	GetHub(e).PlayerJoined.Emit(signals.PlayerJoin{PlayerIndex: index})
	return index
}

// BindJoinSignals rebinds player control on every flame handoff.
func BindJoinSignals(e *ecs.ECS) {
	GetHub(e).FlamePassed.Subscribe(func(fp signals.FlamePass) {
		rebindPlayer(e, fp)
	})
}

// rebindPlayer points the controlling player's relation at the newly lit
// match. The lookup goes through the race registry, never a scene scan.
func rebindPlayer(e *ecs.ECS, fp signals.FlamePass) {
	race := GetRace(e)
	match, ok := race.CurrentMatch(fp.PlayerIndex)
	if !ok {
		return
	}

	if entry, ok := playerEntry(e, fp.PlayerIndex); ok {
		components.Player.Get(entry).Match = match
	}

	// Co-op keeps its camera offset across handoffs; the other modes snap
	// back to the mode pose and follow the new match.
	if race.Mode != cfg.GameModeCoop {
		if camEntry, ok := components.Camera.First(e.World); ok {
			camera := components.Camera.Get(camEntry)
			camera.Target = match
			camera.Offset = cfg.Camera.PoseFor(race.Mode)
		}
	}
}

// BindPlayerToMatch wires a player's relation and the camera at race start.
func BindPlayerToMatch(e *ecs.ECS, playerIndex int, match *donburi.Entry) {
	if entry, ok := playerEntry(e, playerIndex); ok {
		components.Player.Get(entry).Match = match
	}
	if playerIndex != 0 {
		return
	}
	if camEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(camEntry)
		camera.Target = match
		camera.Offset = cfg.Camera.PoseFor(GetRace(e).Mode)
	}
}

func playerEntry(e *ecs.ECS, playerIndex int) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if components.Player.Get(entry).PlayerIndex == playerIndex {
			found = entry
		}
	})
	return found, found != nil
}

// UpdateJoin polls for late joiners during the pregame wait and for pause
// requests during play.
func UpdateJoin(e *ecs.ECS) {
	race := GetRace(e)

	switch race.State {
	case cfg.GameStatePregame:
		if race.AwaitingPlayers && race.PlayersJoined < race.PlayersRequired {
			pollJoinDevices(e)
		}
	case cfg.GameStateRunning, cfg.GameStatePaused:
		if MergedAction(e, cfg.ActionPause).JustPressed {
			GetHub(e).PauseRequested.Emit(signals.PauseRequest{PlayerIndex: 0})
		}
	}
}

// pollJoinDevices binds the next free device that presses join. Player 0 is
// auto-joined on scheme A at scene start, so in practice this admits the
// second player on scheme B or a free gamepad.
func pollJoinDevices(e *ecs.ECS) {
	if schemeFree(e, cfg.ControlSchemeB) && JoinPressedOnScheme(cfg.ControlSchemeB) {
		OnPlayerJoin(e, nil, cfg.ControlSchemeB)
		return
	}
	if gpID, ok := JoinPressedOnGamepad(); ok && gamepadFree(e, gpID) {
		id := gpID
		OnPlayerJoin(e, &id, cfg.ControlSchemeB)
	}
}

func schemeFree(e *ecs.ECS, scheme cfg.ControlSchemeID) bool {
	free := true
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.GamepadID == nil && player.ControlScheme == scheme {
			free = false
		}
	})
	return free
}

func gamepadFree(e *ecs.ECS, gpID ebiten.GamepadID) bool {
	free := true
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.GamepadID != nil && *player.GamepadID == gpID {
			free = false
		}
	})
	return free
}
