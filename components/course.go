package components

import (
	"github.com/automoto/matchrun/courses"
	"github.com/yohamta/donburi"
)

// CourseData holds the loaded course geometry for the active scene.
type CourseData struct {
	Course *courses.Course
}

var Course = donburi.NewComponentType[CourseData]()
