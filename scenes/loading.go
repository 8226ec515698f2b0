package scenes

import (
	"image/color"

	cfg "github.com/automoto/matchrun/config"
	"github.com/automoto/matchrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// LoadingScene sits between two scenes: a short grace pause, a minimum
// display time so the label never strobes, and a closing grace pause before
// the destination appears.
type LoadingScene struct {
	onDone   func()
	elapsed  float64
	switched bool
}

// NewLoadingScene creates a loading interstitial; onDone installs the
// destination scene.
func NewLoadingScene(onDone func()) *LoadingScene {
	return &LoadingScene{onDone: onDone}
}

func (ls *LoadingScene) Update() {
	ls.elapsed += cfg.C.Dt

	total := cfg.Fade.LoadingGraceBefore + cfg.Fade.LoadingMinDuration + cfg.Fade.LoadingGraceAfter
	if ls.elapsed >= total && !ls.switched {
		ls.switched = true
		ls.onDone()
	}
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// The label shows only during the minimum-display window, keeping the
	// grace pauses fully dark.
	if ls.elapsed < cfg.Fade.LoadingGraceBefore {
		return
	}
	if ls.elapsed > cfg.Fade.LoadingGraceBefore+cfg.Fade.LoadingMinDuration {
		return
	}

	face := fonts.Bold.Get()
	label := "Loading..."
	bounds := text.BoundString(face, label)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy() / 2
	text.Draw(screen, label, face, x, y, cfg.White)
}
