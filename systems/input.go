package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// KeyBinding runs Action when Key is pressed.
type KeyBinding struct {
	Key    ebiten.Key
	Action func()
}

// NewUpdateShortcuts fires bindings on the frame their key goes down.
func NewUpdateShortcuts(bindings []KeyBinding) ecs.System {
	return func(e *ecs.ECS) {
		for _, b := range bindings {
			if inpututil.IsKeyJustPressed(b.Key) {
				b.Action()
			}
		}
	}
}
