package archetypes

import (
	"github.com/automoto/uitween/components"
	cfg "github.com/automoto/uitween/config"
	"github.com/automoto/uitween/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Element = newArchetype(
		tags.Element,
		components.Element,
		components.Transform,
		components.Graphic,
	)
	Bar = newArchetype(
		tags.Element,
		tags.Bar,
		components.Element,
		components.Transform,
		components.Graphic,
		components.Fill,
	)
	Text = newArchetype(
		tags.Element,
		tags.Text,
		components.Element,
		components.Transform,
		components.Graphic,
		components.Label,
	)
	LoadingScreen = newArchetype(
		components.Loading,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

// SpawnIn creates the archetype directly in a world, for code that has no ECS.
func (a *archetype) SpawnIn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
