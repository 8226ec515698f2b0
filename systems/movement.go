package systems

import (
	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement applies each joined player's input to the match they
// currently control. Only runs while the race is Running, so pause freezes
// the sticks in place.
func UpdateMovement(e *ecs.ECS) {
	race := GetRace(e)
	if race.State != cfg.GameStateRunning {
		return
	}

	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		in := components.PlayerInput.Get(entry)
		player := components.Player.Get(entry)
		match := player.Match
		if match == nil || !match.Valid() {
			return
		}
		if !components.Match.Get(match).IsCurrent {
			return
		}

		physics := components.Physics.Get(match)

		axis := in.Axis()
		physics.SpeedX += axis * cfg.Movement.Accel
		if physics.SpeedX > cfg.Movement.MaxSpeed {
			physics.SpeedX = cfg.Movement.MaxSpeed
		} else if physics.SpeedX < -cfg.Movement.MaxSpeed {
			physics.SpeedX = -cfg.Movement.MaxSpeed
		}

		if in.Action(cfg.ActionJump).JustPressed && physics.OnGround != nil {
			physics.SpeedY = cfg.Movement.JumpSpeed
			physics.OnGround = nil
		}
	})
}
