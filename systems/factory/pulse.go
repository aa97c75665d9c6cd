package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"

	"github.com/automoto/uitween/components"
)

// AddPulse makes the element's alpha breathe between low and high forever.
// The pulse moves using a *gween.Sequence of two tweens, going back and forth.
func AddPulse(entry *donburi.Entry, low, high, period float32) {
	half := period / 2
	tw := gween.NewSequence()
	tw.Add(
		gween.New(high, low, half, ease.InOutSine),
		gween.New(low, high, half, ease.InOutSine),
	)
	tw.SetLoop(-1)

	if !entry.HasComponent(components.Pulse) {
		entry.AddComponent(components.Pulse)
	}
	components.Pulse.Set(entry, tw)
}

// RemovePulse stops the idle pulse and restores full alpha.
func RemovePulse(entry *donburi.Entry) {
	if !entry.HasComponent(components.Pulse) {
		return
	}
	entry.RemoveComponent(components.Pulse)
	if entry.HasComponent(components.Graphic) {
		components.Graphic.Get(entry).Alpha = 1
	}
}
