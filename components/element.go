package components

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TransformData places an element on screen. Scale is applied around the element center.
type TransformData struct {
	X, Y   float64
	W, H   float64
	ScaleX float64
	ScaleY float64
}

var Transform = donburi.NewComponentType[TransformData](TransformData{ScaleX: 1, ScaleY: 1})

// GraphicData is the element's fill color; Alpha multiplies Color.A.
type GraphicData struct {
	Color color.RGBA
	Alpha float64
}

var Graphic = donburi.NewComponentType[GraphicData](GraphicData{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Alpha: 1})

// FillOrigin is the edge a partial fill grows from.
type FillOrigin int

const (
	FillLeft FillOrigin = iota
	FillRight
	FillTop
	FillBottom
)

func (o FillOrigin) String() string {
	switch o {
	case FillLeft:
		return "left"
	case FillRight:
		return "right"
	case FillTop:
		return "top"
	case FillBottom:
		return "bottom"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

func ParseFillOrigin(s string) (FillOrigin, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return FillLeft, nil
	case "right":
		return FillRight, nil
	case "top":
		return FillTop, nil
	case "bottom":
		return FillBottom, nil
	}
	return FillLeft, fmt.Errorf("unknown fill origin %q", s)
}

// FillData draws only Amount (0..1) of the element, starting from Origin.
type FillData struct {
	Amount float64
	Origin FillOrigin
}

var Fill = donburi.NewComponentType[FillData](FillData{Amount: 1})

type LabelData struct {
	Text  string
	Color color.RGBA
}

var Label = donburi.NewComponentType[LabelData]()

// ElementData identifies a UI element. Hidden elements are neither drawn nor animated.
type ElementData struct {
	Name    string
	Visible bool
}

var Element = donburi.NewComponentType[ElementData]()

// Pulse is an idle alpha animation driven by a looping gween sequence.
var Pulse = donburi.NewComponentType[gween.Sequence]()
