package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 text API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/uitween/components"
	cfg "github.com/automoto/uitween/config"
	"github.com/automoto/uitween/fonts"
	"github.com/automoto/uitween/tags"
)

// Rect is a screen-space rectangle.
type Rect struct {
	X, Y, W, H float64
}

// ElementRect applies the transform's scale around the element center.
func ElementRect(t *components.TransformData) Rect {
	w := t.W * t.ScaleX
	h := t.H * t.ScaleY
	return Rect{
		X: t.X + (t.W-w)/2,
		Y: t.Y + (t.H-h)/2,
		W: w,
		H: h,
	}
}

// FillRect is the part of r a fill of amount covers, growing from origin.
func FillRect(r Rect, f *components.FillData) Rect {
	amount := f.Amount
	if amount < 0 {
		amount = 0
	} else if amount > 1 {
		amount = 1
	}
	switch f.Origin {
	case components.FillRight:
		w := r.W * amount
		return Rect{X: r.X + r.W - w, Y: r.Y, W: w, H: r.H}
	case components.FillTop:
		return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H * amount}
	case components.FillBottom:
		h := r.H * amount
		return Rect{X: r.X, Y: r.Y + r.H - h, W: r.W, H: h}
	default:
		return Rect{X: r.X, Y: r.Y, W: r.W * amount, H: r.H}
	}
}

// WithAlpha scales c's alpha by a, clamped to [0,1]. The result is premultiplied.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a * float64(c.A) / 255),
		G: uint8(float64(c.G) * a * float64(c.A) / 255),
		B: uint8(float64(c.B) * a * float64(c.A) / 255),
		A: uint8(float64(c.A) * a),
	}
}

// DrawElements renders every visible element in creation order.
func DrawElements(e *ecs.ECS, screen *ebiten.Image) {
	components.Element.Each(e.World, func(entry *donburi.Entry) {
		el := components.Element.Get(entry)
		if !el.Visible || !entry.HasComponent(components.Transform) {
			return
		}
		r := ElementRect(components.Transform.Get(entry))
		if r.W <= 0 || r.H <= 0 {
			return
		}

		alpha := 1.0
		fill := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		if entry.HasComponent(components.Graphic) {
			g := components.Graphic.Get(entry)
			alpha = g.Alpha
			fill = g.Color
		}

		if entry.HasComponent(components.Fill) {
			vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), WithAlpha(cfg.Loading.BarBg, alpha), false)
			fr := FillRect(r, components.Fill.Get(entry))
			vector.FillRect(screen, float32(fr.X), float32(fr.Y), float32(fr.W), float32(fr.H), WithAlpha(fill, alpha), false)
		} else if !entry.HasComponent(tags.Text) {
			vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), WithAlpha(fill, alpha), false)
		}

		if entry.HasComponent(tags.Selected) {
			vector.StrokeRect(screen, float32(r.X-2), float32(r.Y-2), float32(r.W+4), float32(r.H+4), 2, cfg.White, false)
		}

		if entry.HasComponent(components.Label) {
			l := components.Label.Get(entry)
			if l.Text != "" {
				face := fonts.Regular.Get()
				text.Draw(screen, l.Text, face, int(r.X)+8, int(r.Y+r.H/2)+5, WithAlpha(l.Color, alpha))
			}
		}
	})
}
