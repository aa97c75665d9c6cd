package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/time/rate"

	"github.com/automoto/uitween/logx"
	"github.com/automoto/uitween/tween"
)

// NewUpdateTweens ticks s once per frame with the frame delta mapped through clock.
// source is read every frame so the time source can be switched at runtime.
func NewUpdateTweens(s *tween.Scheduler, clock *tween.Clock, source func() tween.TimeSource, log logx.Logger) ecs.System {
	failLog := &rate.Sometimes{First: 3, Interval: 5 * time.Second}
	return func(e *ecs.ECS) {
		if err := s.Tick(clock.Delta(frameDelta(), source())); err != nil {
			failLog.Do(func() {
				log.Warn("tween callbacks failed", logx.Err(err))
			})
		}
	}
}

// frameDelta is the fixed update step in seconds.
func frameDelta() float64 {
	return 1.0 / float64(ebiten.TPS())
}
