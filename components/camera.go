package components

import (
	cfg "github.com/automoto/matchrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData follows the match entity in Target with a local offset.
// Reparenting on flame handoff swaps Target; Co-op preserves Offset while
// the other modes reset it to the mode's fixed pose.
type CameraData struct {
	Position math.Vec2
	Target   *donburi.Entry
	Offset   cfg.Offset
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
