package components

import (
	cfg "github.com/automoto/matchrun/config"
	"github.com/yohamta/donburi"
)

// RaceData is the authoritative race context: game state, game mode, clock,
// join tracking and the player-index to current-match registry.
//
// This is a singleton component, created fresh on every scene load. Only the
// race state machine mutates State and Mode; everything else reads them.
type RaceData struct {
	State cfg.GameStateID
	Mode  cfg.GameModeID

	// Clock accumulates seconds while State == Running only. Reset on
	// Pregame entry. HUD displays whole seconds.
	Clock float64

	// Join quorum tracking. Joins are monotonic: there is no leave path,
	// so SecondPlayerWait re-arms only when the joined count re-enters 1.
	PlayersJoined    int
	PlayersRequired  int
	AwaitingPlayers  bool
	SecondPlayerWait float64
	lastJoinedCount  int

	// Countdown display value: 3..1 while counting, -1 when inactive,
	// 0 momentarily for "GO".
	CountdownValue   int
	CountdownStarted bool

	// Postgame result.
	Won       bool
	Cause     string
	WinnerTag string // Versus winner label: "1" or "2"

	// Current maps player index to the match entity holding the flame.
	// Updated transactionally inside PassFlame and at race start;
	// never searched for scene-wide.
	Current map[int]*donburi.Entry
}

var Race = donburi.NewComponentType[RaceData]()

// CurrentMatch returns the match currently holding the flame for a player.
func (r *RaceData) CurrentMatch(playerIndex int) (*donburi.Entry, bool) {
	e, ok := r.Current[playerIndex]
	return e, ok
}

// NoteJoinCount re-arms the second-player timeout whenever the joined count
// changes into exactly one.
func (r *RaceData) NoteJoinCount() {
	if r.PlayersJoined != r.lastJoinedCount {
		r.lastJoinedCount = r.PlayersJoined
		if r.PlayersJoined == 1 {
			r.SecondPlayerWait = 0
		}
	}
}

// TransitionData tracks an in-flight scene transition in the owning scene.
type TransitionData struct {
	Target  string
	Started bool
}

var Transition = donburi.NewComponentType[TransitionData]()

// HUDData gates gameplay HUD drawing; hidden during scene transitions.
type HUDData struct {
	Visible bool
}

var HUD = donburi.NewComponentType[HUDData]()
