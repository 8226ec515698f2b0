package factory

import (
	"github.com/automoto/matchrun/archetypes"
	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/courses"
	"github.com/automoto/matchrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMatchstick spawns one matchstick at its course spawn point. The
// collider stands on the spawn point with the stick's full height above it.
func CreateMatchstick(ecs *ecs.ECS, spawn courses.MatchSpawn) *donburi.Entry {
	match := archetypes.Matchstick.Spawn(ecs)

	w := cfg.Burn.StickWidth * cfg.C.PixelsPerUnit
	h := cfg.Burn.StickLength * cfg.C.PixelsPerUnit
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h, tags.ResolvMatch)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = match

	components.Object.SetValue(match, components.ObjectData{Object: obj})
	components.Match.SetValue(match, components.NewMatchData(spawn.PlayerIndex, spawn.Order))
	components.Physics.SetValue(match, components.PhysicsData{})
	components.FlameVFX.SetValue(match, components.FlameVFXData{})
	addToSpace(ecs, obj)

	return match
}

// CreateBonfire spawns the goal.
func CreateBonfire(ecs *ecs.ECS, r courses.Rect) *donburi.Entry {
	bonfire := archetypes.Bonfire.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvBonfire)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = bonfire

	components.Object.SetValue(bonfire, components.ObjectData{Object: obj})
	components.FlameVFX.SetValue(bonfire, components.FlameVFXData{Lit: true})
	addToSpace(ecs, obj)

	return bonfire
}
