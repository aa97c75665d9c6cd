package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/uitween/components"
	"github.com/automoto/uitween/tween"
)

// NewUpdatePulses advances idle pulses in scaled time, so pausing the clock freezes them.
func NewUpdatePulses(clock *tween.Clock) ecs.System {
	return func(e *ecs.ECS) {
		StepPulses(e.World, clock.Delta(frameDelta(), tween.Scaled))
	}
}

// StepPulses writes each pulse's value into the element's alpha.
func StepPulses(w donburi.World, dt float64) {
	components.Pulse.Each(w, func(entry *donburi.Entry) {
		seq := components.Pulse.Get(entry)
		if !seq.HasTweens() {
			return
		}
		v, _, _ := seq.Update(float32(dt))
		if entry.HasComponent(components.Graphic) {
			components.Graphic.Get(entry).Alpha = float64(v)
		}
	})
}
