package factory

import (
	"github.com/automoto/matchrun/archetypes"
	"github.com/automoto/matchrun/components"
	"github.com/automoto/matchrun/courses"
	"github.com/yohamta/donburi/ecs"
)

// SpawnCourse creates the collision space and every course entity: solid
// geometry, water, floating platforms, the bonfire and the match chain.
func SpawnCourse(ecs *ecs.ECS, course *courses.Course) {
	CreateSpace(ecs, course.Width, course.Height, 16, 16)

	courseEntry := archetypes.Course.Spawn(ecs)
	components.Course.SetValue(courseEntry, components.CourseData{Course: course})

	for _, r := range course.Solids {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range course.Water {
		CreateWater(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range course.Platforms {
		CreateFloatingPlatform(ecs, r.X, r.Y, r.W, r.H)
	}
	CreateBonfire(ecs, course.Bonfire)
	for _, spawn := range course.Matches {
		CreateMatchstick(ecs, spawn)
	}
}
