package systems

import (
	"fmt"

	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/signals"
	"github.com/automoto/matchrun/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBurn advances the combustion simulation and reacts to contacts.
// Only the match currently holding the flame burns, and only while the
// race is Running.
func UpdateBurn(e *ecs.ECS) {
	race := GetRace(e)
	if race.State != cfg.GameStateRunning {
		return
	}

	// Snapshot the registry so a match that receives the flame mid-pass does
	// not also tick and contact in the same frame.
	current := make([]*donburi.Entry, 0, len(race.Current))
	for _, entry := range race.Current {
		current = append(current, entry)
	}
	for _, entry := range current {
		if !entry.Valid() {
			continue
		}
		match := components.Match.Get(entry)
		if !match.IsCurrent {
			continue
		}
		tickBurn(e, entry, match)
		if match.IsCurrent {
			handleContacts(e, entry, match)
		}
	}
}

func tickBurn(e *ecs.ECS, entry *donburi.Entry, match *components.MatchData) {
	dt := cfg.C.Dt
	obj := components.Object.Get(entry)
	vfx := components.FlameVFX.Get(entry)

	switch match.Phase {
	case components.PhaseHead:
		match.HeadScale -= match.HeadBurnRate * dt
		if match.HeadScale < cfg.Burn.HeadThreshold {
			// Head is gone; the stick starts burning and the head
			// visual deactivates.
			match.HeadScale = 0
			match.HeadBurned = true
			match.Phase = components.PhaseStick
		}
		vfx.UpdatePosition(obj.CenterX(), obj.Top())

	case components.PhaseStick:
		match.StickLength -= match.StickBurnRate * dt
		shrinkCollider(obj, match)
		// Flame slot and camera anchor track the receding stick tip.
		vfx.UpdatePosition(obj.CenterX(), obj.Top())
		if match.StickLength < cfg.Burn.StickThreshold {
			burnOut(e, entry, match, false)
		}
	}
}

// shrinkCollider resizes the resolv extent to the remaining stick, keeping
// the base planted.
func shrinkCollider(obj *components.ObjectData, match *components.MatchData) {
	newH := match.StickLength * cfg.C.PixelsPerUnit
	if newH < 1 {
		newH = 1
	}
	obj.Y += obj.H - newH
	obj.H = newH
	obj.Update()
}

func handleContacts(e *ecs.ECS, entry *donburi.Entry, match *components.MatchData) {
	obj := components.Object.Get(entry)

	// Unlit matchstick: hand the flame onward.
	if check := obj.Check(0, 0, tags.ResolvMatch); check != nil {
		for _, other := range check.ObjectsByTags(tags.ResolvMatch) {
			target, ok := other.Data.(*donburi.Entry)
			if !ok || target == nil || target == entry {
				continue
			}
			if PassFlame(e, entry, target) {
				return
			}
		}
	}

	// Bonfire: win.
	if check := obj.Check(0, 0, tags.ResolvBonfire); check != nil && len(check.ObjectsByTags(tags.ResolvBonfire)) > 0 {
		GetHub(e).ReachedBonfire.Emit(signals.GoalReached{PlayerIndex: match.PlayerIndex})
		return
	}

	// Water: immediate loss.
	if check := obj.Check(0, 0, tags.ResolvWater); check != nil && len(check.ObjectsByTags(tags.ResolvWater)) > 0 {
		burnOut(e, entry, match, true)
	}
}

// PassFlame transfers current status from one matchstick to the next. This
// is the only place current/previous flags and the registry change hands,
// and it completes in one step within a single contact event. Returns false
// when the target was already consumed: a previously lit match never
// reignites.
func PassFlame(e *ecs.ECS, from, to *donburi.Entry) bool {
	target := components.Match.Get(to)
	if target.IsPrevious {
		return false
	}
	source := components.Match.Get(from)
	race := GetRace(e)

	// Versus flips the controlling player on every handoff; Solo and Coop
	// keep the target's pre-assigned index.
	resolved := target.PlayerIndex
	if race.Mode == cfg.GameModeVersus {
		resolved = 1 - source.PlayerIndex
		target.PlayerIndex = resolved
	}

	// Burn rates carry over exactly as they are now, not the target's
	// spawn defaults.
	target.HeadBurnRate = source.HeadBurnRate
	target.StickBurnRate = source.StickBurnRate

	target.IsCurrent = true
	source.IsCurrent = false
	source.IsPrevious = true

	// The spent stub stops reacting to any future contact.
	fromObj := components.Object.Get(from)
	fromObj.RemoveTags(tags.ResolvMatch)
	fromObj.AddTags(tags.ResolvPrevious)

	// Transactional registry update: at most one current match per index.
	delete(race.Current, source.PlayerIndex)
	if old, ok := race.Current[resolved]; ok && old != to {
		components.Match.Get(old).IsCurrent = false
	}
	race.Current[resolved] = to

	toObj := components.Object.Get(to)
	toVFX := components.FlameVFX.Get(to)
	toVFX.Ignite()
	toVFX.UpdatePosition(toObj.CenterX(), toObj.Top())
	QueueCue(e, components.SoundIgnite)

	// Co-op camera ownership moves with the flame, keeping whatever local
	// offset the players had; other modes rebind via the join coordinator.
	if race.Mode == cfg.GameModeCoop {
		if camEntry, ok := components.Camera.First(e.World); ok {
			components.Camera.Get(camEntry).Target = to
		}
	}

	GetHub(e).FlamePassed.Emit(signals.FlamePass{PlayerIndex: resolved, From: from, To: to})
	return true
}

func burnOut(e *ecs.ECS, entry *donburi.Entry, match *components.MatchData, doused bool) {
	vfx := components.FlameVFX.Get(entry)
	vfx.Extinguish(doused)

	wasCurrent := match.IsCurrent
	match.Phase = components.PhaseBurnedOut
	match.IsCurrent = false
	match.IsPrevious = true

	obj := components.Object.Get(entry)
	obj.RemoveTags(tags.ResolvMatch)
	obj.AddTags(tags.ResolvPrevious)

	race := GetRace(e)
	delete(race.Current, match.PlayerIndex)

	if wasCurrent {
		cause := causeText(race.Mode, match.PlayerIndex, doused)
		GetHub(e).BurnedOut.Emit(signals.BurnOut{
			PlayerIndex: match.PlayerIndex,
			Cause:       cause,
			Doused:      doused,
		})
	}
}

// causeText renders the loss message for the mode. In Versus the other
// player is the winner; player numbers are 1-based in display text.
func causeText(mode cfg.GameModeID, loser int, doused bool) string {
	switch mode {
	case cfg.GameModeSolo:
		if doused {
			return "You were doused!"
		}
		return "You burned out!"
	case cfg.GameModeCoop:
		if doused {
			return "Your team was doused!"
		}
		return "Your team burned out!"
	case cfg.GameModeVersus:
		event := "burned out"
		if doused {
			event = "was doused"
		}
		return fmt.Sprintf("Player %d wins! (Player %d %s)", 2-loser, loser+1, event)
	}
	// Known gap: no phrasing exists for an unexpected mode.
	log.Warn().Str("mode", mode.String()).Msg("no burn-out cause text for game mode")
	return ""
}

// ActivateStartingMatches ignites the chain start (order 0) for each
// registered player index at race start.
func ActivateStartingMatches(e *ecs.ECS) {
	race := GetRace(e)
	tags.Matchstick.Each(e.World, func(entry *donburi.Entry) {
		match := components.Match.Get(entry)
		if match.Order != 0 || match.IsPrevious {
			return
		}
		match.IsCurrent = true
		race.Current[match.PlayerIndex] = entry

		obj := components.Object.Get(entry)
		vfx := components.FlameVFX.Get(entry)
		vfx.Ignite()
		vfx.UpdatePosition(obj.CenterX(), obj.Top())

		BindPlayerToMatch(e, match.PlayerIndex, entry)
	})
	QueueCue(e, components.SoundIgnite)
}
