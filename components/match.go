package components

import (
	cfg "github.com/automoto/matchrun/config"
	"github.com/yohamta/donburi"
)

// BurnPhase marks which part of the matchstick is currently burning.
type BurnPhase int

const (
	PhaseHead BurnPhase = iota
	PhaseStick
	PhaseBurnedOut
)

// MatchData is the per-matchstick burn state.
//
// Lifecycle: created at scene load along the course, becomes current when
// the flame is passed to it (or at race start for the first match of each
// player's chain), becomes previous and inert once the flame moves on.
// IsPrevious is sticky: a previously lit match never reignites.
type MatchData struct {
	PlayerIndex int

	// Exactly one match per player index may be current at a time.
	// Both flags are mutated only inside PassFlame and burn-out.
	IsCurrent  bool
	IsPrevious bool

	Phase      BurnPhase
	HeadBurned bool

	// Sim extents in world units; they monotonically shrink while active.
	HeadScale   float64
	StickLength float64

	// Burn rates in units per second. Inherited verbatim from the giving
	// match on handoff rather than reset to defaults.
	HeadBurnRate  float64
	StickBurnRate float64

	// Order is the match's position along its course chain; the chain
	// start (Order 0) ignites at race start.
	Order int
}

var Match = donburi.NewComponentType[MatchData]()

// NewMatchData returns burn state at full extents with default rates.
func NewMatchData(playerIndex, order int) MatchData {
	return MatchData{
		PlayerIndex:   playerIndex,
		Phase:         PhaseHead,
		HeadScale:     cfg.Burn.HeadScale,
		StickLength:   cfg.Burn.StickLength,
		HeadBurnRate:  cfg.Burn.HeadBurnRate,
		StickBurnRate: cfg.Burn.StickBurnRate,
		Order:         order,
	}
}

// BurnedFraction reports how much of the stick has been consumed, for
// anchor tracking and rendering.
func (m *MatchData) BurnedFraction() float64 {
	if cfg.Burn.StickLength <= 0 {
		return 0
	}
	f := 1 - m.StickLength/cfg.Burn.StickLength
	if f < 0 {
		return 0
	}
	return f
}
