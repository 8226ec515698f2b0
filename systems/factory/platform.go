package factory

import (
	"github.com/automoto/matchrun/archetypes"
	"github.com/automoto/matchrun/components"
	"github.com/automoto/matchrun/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const platformTravel = 96.0

// CreateFloatingPlatform spawns a platform that drifts up and back on a
// looping tween sequence.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	// The platform moves using a *gween.Sequence of tweens, back and forth.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-platformTravel), 2, ease.Linear),
		gween.New(float32(y-platformTravel), float32(y), 2, ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform
}
