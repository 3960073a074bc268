package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI is the overlay shown when the round ends, either by the
// player going down or the clock running out.
type GameOverUI struct {
	UI *ebitenui.UI

	OnRestart func()

	titleLabel *widget.Label
	scoreLabel *widget.Label
	bestLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewGameOverUI builds the overlay. It starts empty; Refresh fills in
// the round results.
func NewGameOverUI(onRestart func()) *GameOverUI {
	gui := &GameOverUI{
		OnRestart: onRestart,
	}

	gui.loadFonts()
	gui.buildUI()

	return gui
}

func (gui *GameOverUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	gui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   56,
	}
	gui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
}

func (gui *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	gui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("GAME OVER", &gui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 80, 80, 255},
		}),
	)
	contentContainer.AddChild(gui.titleLabel)

	gui.scoreLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &gui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(gui.scoreLabel)

	gui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &gui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 120, 255},
		}),
	)
	contentContainer.AddChild(gui.bestLabel)

	restartButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 40)),
		widget.ButtonOpts.Image(gui.buttonImage()),
		widget.ButtonOpts.Text("Restart (Enter)", &gui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if gui.OnRestart != nil {
				gui.OnRestart()
			}
		}),
	)
	contentContainer.AddChild(restartButton)

	rootContainer.AddChild(contentContainer)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (gui *GameOverUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// Refresh updates the labels with the final round results.
func (gui *GameOverUI) Refresh(score, highScore int, timeUp bool) {
	if timeUp {
		gui.titleLabel.Label = "TIME UP"
	} else {
		gui.titleLabel.Label = "YOU DIED"
	}
	gui.scoreLabel.Label = fmt.Sprintf("Score: %d", score)
	gui.bestLabel.Label = fmt.Sprintf("Best: %d", highScore)
}

// Update advances widget state; call once per tick while visible.
func (gui *GameOverUI) Update() {
	gui.UI.Update()
}
