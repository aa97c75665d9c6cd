// Package layout reads UI element layouts authored as Tiled maps.
package layout

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed all:layouts
var layoutFS embed.FS

// ElementGroup is the object group elements are read from.
const ElementGroup = "Elements"

// Kind is what an element is drawn as.
type Kind string

const (
	KindPanel Kind = "panel"
	KindBar   Kind = "bar"
	KindText  Kind = "text"
)

// ElementSpec describes one element as placed in the editor.
type ElementSpec struct {
	Name string
	Kind Kind

	X, Y, W, H float64

	Color  color.RGBA
	Alpha  float64
	Fill   float64 // bars only
	Origin string  // bars only
	Label  string
	Hidden bool

	// Intro is the preset played when the element is spawned.
	Intro      string
	IntroDelay float64
}

type Layout struct {
	Name     string
	Width    int
	Height   int
	Elements []ElementSpec
}

// Load parses the layout at path inside fsys.
func Load(fsys fs.FS, path string) (*Layout, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}

	l := &Layout{
		Name:   path,
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}
	for _, og := range m.ObjectGroups {
		if og.Name != ElementGroup {
			continue
		}
		for _, o := range og.Objects {
			spec, err := parseObject(o)
			if err != nil {
				return nil, fmt.Errorf("layout %s: object %q: %w", path, o.Name, err)
			}
			l.Elements = append(l.Elements, spec)
		}
	}
	if len(l.Elements) == 0 {
		return nil, fmt.Errorf("layout %s: no objects in group %q", path, ElementGroup)
	}
	return l, nil
}

// LoadEmbedded parses one of the layouts shipped with the binary.
func LoadEmbedded(path string) (*Layout, error) {
	return Load(layoutFS, path)
}

func parseObject(o *tiled.Object) (ElementSpec, error) {
	kind := o.Class
	if kind == "" {
		kind = o.Type //nolint:staticcheck // older TMX files use type=
	}
	spec := ElementSpec{
		Name:       o.Name,
		Kind:       Kind(kind),
		X:          o.X,
		Y:          o.Y,
		W:          o.Width,
		H:          o.Height,
		Color:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Alpha:      floatOr(o.Properties, "alpha", 1),
		Fill:       floatOr(o.Properties, "fill", 1),
		Origin:     o.Properties.GetString("origin"),
		Label:      o.Properties.GetString("label"),
		Hidden:     o.Properties.GetBool("hidden"),
		Intro:      o.Properties.GetString("intro"),
		IntroDelay: o.Properties.GetFloat("intro_delay"),
	}

	switch spec.Kind {
	case KindPanel, KindBar, KindText:
	case "":
		spec.Kind = KindPanel
	default:
		return spec, fmt.Errorf("unknown class %q", kind)
	}
	if s := o.Properties.GetString("color"); s != "" {
		c, err := ParseColor(s)
		if err != nil {
			return spec, err
		}
		spec.Color = c
	}
	return spec, nil
}

func floatOr(ps tiled.Properties, name string, def float64) float64 {
	for _, p := range ps {
		if p.Name == name {
			return ps.GetFloat(name)
		}
	}
	return def
}

// ParseColor reads Tiled colors: #rrggbb or #aarrggbb.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	a := uint8(0xff)
	if len(hex) == 8 {
		a = uint8(v >> 24)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a}, nil
}
