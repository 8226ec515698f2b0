package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/matchrun/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI is the ebitenui mode-select menu: one button per race scene plus
// the best time readout.
type MenuUI struct {
	UI *ebitenui.UI

	// OnSelect receives the chosen scene name.
	OnSelect func(scene string)
	// OnQuit exits the game.
	OnQuit func()

	bestLabel   *widget.Label
	firstButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI builds the menu.
func NewMenuUI(onSelect func(scene string), onQuit func()) *MenuUI {
	mui := &MenuUI{
		OnSelect: onSelect,
		OnQuit:   onQuit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   28,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("MATCHRUN", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 80, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, mode := range []string{cfg.SceneSolo, cfg.SceneCoop, cfg.SceneVersus} {
		scene := mode
		button := mui.modeButton(scene)
		if mui.firstButton == nil {
			mui.firstButton = button
		}
		contentContainer.AddChild(button)
	}

	mui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	contentContainer.AddChild(mui.bestLabel)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 24)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("Quit", &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnQuit != nil {
				mui.OnQuit()
			}
		}),
	)
	contentContainer.AddChild(quitButton)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}

	// Entering the menu always lands focus on the first mode button.
	mui.firstButton.Focus(true)
}

func (mui *MenuUI) modeButton(scene string) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(scene, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnSelect != nil {
				mui.OnSelect(scene)
			}
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetBestTimes updates the best time readout under the mode buttons.
func (mui *MenuUI) SetBestTimes(solo, coop float64) {
	s := "Best:"
	if solo > 0 {
		s += fmt.Sprintf("  Solo %ds", int(solo))
	}
	if coop > 0 {
		s += fmt.Sprintf("  Coop %ds", int(coop))
	}
	if solo <= 0 && coop <= 0 {
		s = "No clears yet"
	}
	mui.bestLabel.Label = s
}

// Update runs the ebitenui event loop for one frame.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
