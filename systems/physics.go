package systems

import (
	"math"

	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity and resolves collisions for the active
// matchsticks. Spent sticks stay planted where the flame left them.
func UpdatePhysics(e *ecs.ECS) {
	race := GetRace(e)
	if race.State != cfg.GameStateRunning {
		return
	}

	tags.Matchstick.Each(e.World, func(entry *donburi.Entry) {
		match := components.Match.Get(entry)
		if !match.IsCurrent {
			return
		}

		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		friction := cfg.Movement.Friction
		if physics.SpeedX > friction {
			physics.SpeedX -= friction
		} else if physics.SpeedX < -friction {
			physics.SpeedX += friction
		} else {
			physics.SpeedX = 0
		}

		physics.SpeedY += cfg.Movement.Gravity
		if physics.SpeedY > cfg.Movement.MaxFallSpeed {
			physics.SpeedY = cfg.Movement.MaxFallSpeed
		}

		resolveHorizontal(obj, physics)
		resolveVertical(obj, physics)
	})
}

func resolveHorizontal(obj *components.ObjectData, physics *components.PhysicsData) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0])
			dx = contact.X()
			physics.SpeedX = 0
		}
	}
	obj.X += dx
	obj.Update()
}

func resolveVertical(obj *components.ObjectData, physics *components.PhysicsData) {
	dy := math.Max(math.Min(physics.SpeedY, cfg.Movement.MaxFallSpeed), -cfg.Movement.MaxFallSpeed)

	checkDist := dy
	if dy >= 0 {
		checkDist++
	}

	if check := obj.Check(0, checkDist, tags.ResolvSolid, tags.ResolvPlatform); check != nil {
		// Platforms carry from above only.
		if dy >= 0 {
			if platforms := check.ObjectsByTags(tags.ResolvPlatform); len(platforms) > 0 {
				platform := platforms[0]
				if obj.Y+obj.H <= platform.Y+1 {
					contact := check.ContactWithObject(platform)
					obj.Y += contact.Y()
					obj.Update()
					physics.SpeedY = 0
					physics.OnGround = platform
					return
				}
			}
		}

		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0])
			obj.Y += contact.Y()
			obj.Update()
			physics.SpeedY = 0
			if dy >= 0 {
				physics.OnGround = solids[0]
			}
			return
		}
	}

	physics.OnGround = nil
	obj.Y += dy
	obj.Update()
}
