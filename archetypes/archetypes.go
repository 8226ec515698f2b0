package archetypes

import (
	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Matchstick = newArchetype(
		tags.Matchstick,
		components.Match,
		components.Object,
		components.Physics,
		components.FlameVFX,
	)
	Bonfire = newArchetype(
		tags.Bonfire,
		components.Object,
		components.FlameVFX,
	)
	Water = newArchetype(
		tags.Water,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.Platform,
		components.Object,
		components.Tween,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
	)
	Race = newArchetype(
		components.Race,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
	Signals = newArchetype(
		components.Signals,
	)
	Sequence = newArchetype(
		components.Sequence,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Fade = newArchetype(
		components.Fade,
	)
	Transition = newArchetype(
		components.Transition,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Course = newArchetype(
		components.Course,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
