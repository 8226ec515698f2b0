package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives the full-screen fade overlay with a gween tween over the
// overlay alpha. Done is latched when the tween finishes.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
	Done  bool
}

var Fade = donburi.NewComponentType[FadeData]()

// Tween holds a gween sequence for cosmetic motion (floating platforms).
var Tween = donburi.NewComponentType[gween.Sequence]()
