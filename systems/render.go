package systems

import (
	"image/color"
	"math"

	"github.com/automoto/matchrun/components"
	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cameraOrigin returns the world coordinate of the screen's top-left corner.
func cameraOrigin(e *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(screen.Bounds().Dx())/2,
		camera.Position.Y - float64(screen.Bounds().Dy())/2
}

// DrawCourse renders the static course geometry with flat fills.
func DrawCourse(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.DarkBlue)
	ox, oy := cameraOrigin(e, screen)

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		drawObjectRect(screen, components.Object.Get(entry), ox, oy, cfg.Charcoal)
	})
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		drawObjectRect(screen, components.Object.Get(entry), ox, oy, cfg.MatchWood)
	})
	tags.Water.Each(e.World, func(entry *donburi.Entry) {
		drawObjectRect(screen, components.Object.Get(entry), ox, oy, cfg.LightBlue)
	})
	tags.Bonfire.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		drawObjectRect(screen, obj, ox, oy, cfg.Charcoal)
		vfx := components.FlameVFX.Get(entry)
		if vfx.Lit {
			drawFlame(screen, vfx.X-ox, vfx.Y-oy, 8)
		}
	})
}

// DrawMatches renders every matchstick: wood body, head while unburned, and
// the flame on the current one.
func DrawMatches(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := cameraOrigin(e, screen)

	tags.Matchstick.Each(e.World, func(entry *donburi.Entry) {
		match := components.Match.Get(entry)
		obj := components.Object.Get(entry)

		body := cfg.MatchWood
		if match.IsPrevious && !match.IsCurrent {
			body = cfg.Charcoal
		}
		drawObjectRect(screen, obj, ox, oy, body)

		if !match.HeadBurned {
			headR := float32(match.HeadScale * cfg.C.PixelsPerUnit / 4)
			vector.DrawFilledCircle(screen,
				float32(obj.CenterX()-ox), float32(obj.Top()-oy),
				headR, cfg.Red, false)
		}

		vfx := components.FlameVFX.Get(entry)
		if vfx.Lit {
			drawFlame(screen, vfx.X-ox, vfx.Y-oy, 5)
		}
	})
}

func drawObjectRect(screen *ebiten.Image, obj *components.ObjectData, ox, oy float64, c color.RGBA) {
	vector.DrawFilledRect(screen,
		float32(obj.X-ox), float32(obj.Y-oy),
		float32(obj.W), float32(obj.H),
		c, false)
}

// drawFlame paints a two-tone flicker using the shared tick for phase.
func drawFlame(screen *ebiten.Image, x, y, r float64) {
	flicker := 1 + 0.15*math.Sin(float64(flameTick)*0.35)
	vector.DrawFilledCircle(screen, float32(x), float32(y),
		float32(r*flicker), cfg.Orange, false)
	vector.DrawFilledCircle(screen, float32(x), float32(y-r*0.3),
		float32(r*0.55*flicker), cfg.Yellow, false)
}

var flameTick int

// AdvanceRenderTick drives the flame flicker phase once per frame.
func AdvanceRenderTick(e *ecs.ECS) {
	flameTick++
}
