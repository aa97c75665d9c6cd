package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 text API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/uitween/components"
	cfg "github.com/automoto/uitween/config"
	"github.com/automoto/uitween/fonts"
)

// DrawLoading renders the progress bar of the loading screen.
func DrawLoading(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Loading.First(e.World)
	if !ok {
		return
	}
	l := components.Loading.Get(entry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.UI.BackgroundColor, false)

	bar := Rect{
		X: (width - cfg.Loading.BarWidth) / 2,
		Y: height/2 - cfg.Loading.BarHeight/2,
		W: cfg.Loading.BarWidth,
		H: cfg.Loading.BarHeight,
	}
	vector.FillRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), cfg.Loading.BarBg, false)

	barColor := cfg.Loading.BarColor
	if l.Failed {
		barColor = cfg.LightRed
	}
	fr := FillRect(bar, &components.FillData{Amount: l.Progress, Origin: components.FillLeft})
	vector.FillRect(screen, float32(fr.X), float32(fr.Y), float32(fr.W), float32(fr.H), barColor, false)

	titleFont := fonts.Title.Get()
	title := "Loading " + l.Target
	titleWidth := len(title) * 15 // Approximate width for the title face
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), int(bar.Y)-24, cfg.Loading.TextColor)

	status := l.Status
	if status == "" {
		status = fmt.Sprintf("%3.0f%%", l.Progress*100)
	}
	smallFont := fonts.Small.Get()
	statusWidth := len(status) * 7
	text.Draw(screen, status, smallFont, int((width-float64(statusWidth))/2), int(bar.Y+bar.H)+20, cfg.Loading.TextColor)
}
