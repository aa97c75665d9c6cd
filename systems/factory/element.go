package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/uitween/archetypes"
	"github.com/automoto/uitween/components"
	cfg "github.com/automoto/uitween/config"
	"github.com/automoto/uitween/layout"
)

// CreateElement spawns the entity for one layout element.
func CreateElement(ecs *ecs.ECS, spec layout.ElementSpec) *donburi.Entry {
	var entry *donburi.Entry
	switch spec.Kind {
	case layout.KindBar:
		entry = archetypes.Bar.Spawn(ecs)
		origin, err := components.ParseFillOrigin(spec.Origin)
		if err != nil {
			origin = components.FillLeft
		}
		components.Fill.SetValue(entry, components.FillData{Amount: spec.Fill, Origin: origin})
	case layout.KindText:
		entry = archetypes.Text.Spawn(ecs)
	default:
		entry = archetypes.Element.Spawn(ecs)
	}

	components.Element.SetValue(entry, components.ElementData{Name: spec.Name, Visible: !spec.Hidden})
	components.Transform.SetValue(entry, components.TransformData{
		X: spec.X, Y: spec.Y, W: spec.W, H: spec.H,
		ScaleX: 1, ScaleY: 1,
	})
	components.Graphic.SetValue(entry, components.GraphicData{Color: spec.Color, Alpha: spec.Alpha})

	if spec.Label != "" {
		if !entry.HasComponent(components.Label) {
			entry.AddComponent(components.Label)
		}
		components.Label.SetValue(entry, components.LabelData{Text: spec.Label, Color: cfg.White})
	}
	return entry
}

// CreateLayout spawns every element of l in order.
func CreateLayout(ecs *ecs.ECS, l *layout.Layout) []*donburi.Entry {
	entries := make([]*donburi.Entry, 0, len(l.Elements))
	for _, spec := range l.Elements {
		entries = append(entries, CreateElement(ecs, spec))
	}
	return entries
}

// CreateLoadingScreen spawns the singleton the loading renderer reads.
func CreateLoadingScreen(ecs *ecs.ECS, target string) *donburi.Entry {
	entry := archetypes.LoadingScreen.Spawn(ecs)
	components.Loading.SetValue(entry, components.LoadingData{Target: target})
	return entry
}
