package factory

import (
	"github.com/automoto/matchrun/archetypes"
	"github.com/automoto/matchrun/components"
	"github.com/automoto/matchrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}

// CreateWater spawns a douse hazard. Water is not solid: sticks fall in.
func CreateWater(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	water := archetypes.Water.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvWater)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = water

	components.Object.SetValue(water, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return water
}
