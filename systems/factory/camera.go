package factory

import (
	"github.com/automoto/matchrun/archetypes"
	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, mode cfg.GameModeID) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Offset: cfg.Camera.PoseFor(mode),
	})
}
