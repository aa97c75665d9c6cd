package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/automoto/uitween/config"
)

// Control is one button of the panel.
type Control struct {
	Label   string
	OnClick func()
}

// ControlsUI is the demo's side panel: animation buttons plus a few status lines.
type ControlsUI struct {
	UI *ebitenui.UI

	buttons map[string]*widget.Button

	selectionLabel *widget.Label
	easingLabel    *widget.Label
	clockLabel     *widget.Label
	statusLabel    *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewControlsUI(controls []Control) (*ControlsUI, error) {
	ui := &ControlsUI{buttons: make(map[string]*widget.Button, len(controls))}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI(controls)
	return ui, nil
}

func (ui *ControlsUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.LabelFontSize}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.FontSize}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: cfg.UI.FontSize - 2}
	return nil
}

func (ui *ControlsUI) buildUI(controls []Control) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.PanelPadding)),
			widget.RowLayoutOpts.Spacing(cfg.UI.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CONTROLS", &ui.titleFace, &widget.LabelColor{
			Idle: cfg.UI.TextColor,
		}),
	))

	for _, c := range controls {
		panel.AddChild(ui.buildButton(c))
	}

	ui.selectionLabel = ui.newStatusLine(cfg.UI.TextColor)
	ui.easingLabel = ui.newStatusLine(cfg.UI.TextColor)
	ui.clockLabel = ui.newStatusLine(cfg.UI.TextColor)
	ui.statusLabel = ui.newStatusLine(color.RGBA{255, 200, 100, 255})
	for _, l := range []*widget.Label{ui.selectionLabel, ui.easingLabel, ui.clockLabel, ui.statusLabel} {
		panel.AddChild(l)
	}

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ControlsUI) buildButton(c Control) *widget.Button {
	onClick := c.OnClick
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.UI.ButtonWidth, cfg.UI.ButtonHeight)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(cfg.UI.ButtonIdle),
			Hover:    image.NewNineSliceColor(cfg.UI.ButtonHover),
			Pressed:  image.NewNineSliceColor(cfg.UI.ButtonPressed),
			Disabled: image.NewNineSliceColor(cfg.UI.ButtonDisabled),
		}),
		widget.ButtonOpts.Text(c.Label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     cfg.UI.TextColor,
			Disabled: cfg.UI.TextDisabled,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
	ui.buttons[c.Label] = btn
	return btn
}

func (ui *ControlsUI) newStatusLine(c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: c,
		}),
	)
}

func (ui *ControlsUI) SetSelection(name string) {
	ui.selectionLabel.Label = "element: " + name
}

func (ui *ControlsUI) SetEasing(name string) {
	ui.easingLabel.Label = "easing: " + name
}

func (ui *ControlsUI) SetClock(scale float64, paused bool, active int) {
	state := "running"
	if paused {
		state = "paused"
	}
	ui.clockLabel.Label = fmt.Sprintf("time x%.2f %s, %d active", scale, state, active)
}

func (ui *ControlsUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

// SetEnabled toggles the button with the given label.
func (ui *ControlsUI) SetEnabled(label string, enabled bool) {
	if btn, ok := ui.buttons[label]; ok {
		btn.GetWidget().Disabled = !enabled
	}
}

func (ui *ControlsUI) Update() {
	ui.UI.Update()
}

func (ui *ControlsUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
