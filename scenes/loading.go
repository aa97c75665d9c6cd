package scenes

import (
	"context"
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/uitween/components"
	cfg "github.com/automoto/uitween/config"
	"github.com/automoto/uitween/layout"
	"github.com/automoto/uitween/loading"
	"github.com/automoto/uitween/logx"
	"github.com/automoto/uitween/systems"
	"github.com/automoto/uitween/systems/factory"
	"github.com/automoto/uitween/tween"
)

// LoadingScene shows a progress bar while the demo's layout loads in the background.
type LoadingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	svc          Services
	once         sync.Once

	screen  *donburi.Entry
	tracker *loading.Tracker
	cancel  context.CancelFunc

	mu     sync.Mutex
	loaded *layout.Layout
}

func NewLoadingScene(sc SceneChanger, svc Services) *LoadingScene {
	return &LoadingScene{sceneChanger: sc, svc: svc}
}

func (ls *LoadingScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()

	l := components.Loading.Get(ls.screen)
	if ls.tracker == nil {
		return
	}
	if err := ls.tracker.Err(); err != nil {
		if !l.Failed {
			ls.svc.Log.Error("loading failed", logx.Err(err))
		}
		l.Failed = true
		l.Status = err.Error()
		return
	}

	// The bar is UI chrome and keeps moving while scaled time is paused.
	l.Progress = ls.tracker.Update(ls.svc.Clock.Delta(1.0/float64(ebiten.TPS()), tween.Unscaled))
	if !ls.tracker.Ready() {
		return
	}

	op := ls.svc.Loader.Operation()
	select {
	case <-op.Activated():
	default:
		return
	}
	target, ok := ls.svc.Loader.Finish()
	if !ok {
		return
	}

	ls.mu.Lock()
	loaded := ls.loaded
	ls.mu.Unlock()
	ls.cancel()
	ls.sceneChanger.ChangeScene(NewDemoScene(ls.sceneChanger, ls.svc, target, loaded))
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LoadingScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())
	ls.ecs.AddRenderer(cfg.Default, systems.DrawLoading)

	target := ls.svc.Loader.Next()
	if target == "" {
		target = cfg.Loading.Layout
		ls.svc.Loader.Request(target)
	}
	ls.screen = factory.CreateLoadingScreen(ls.ecs, target)

	ctx, cancel := context.WithCancel(context.Background())
	ls.cancel = cancel

	stepDelay := time.Duration(cfg.Loading.StepDelay * float64(time.Second))
	tracker, err := ls.svc.Loader.Begin(ctx,
		loading.Step{
			Name:   "layout",
			Weight: 2,
			Run: func(ctx context.Context, report func(float64)) error {
				l, err := layout.LoadEmbedded(target)
				if err != nil {
					return err
				}
				ls.mu.Lock()
				ls.loaded = l
				ls.mu.Unlock()
				return nil
			},
		},
		loading.Delay("warmup", stepDelay*6, 1),
		loading.Delay("assets", stepDelay*3, 1),
	)
	if err != nil {
		cancel()
		l := components.Loading.Get(ls.screen)
		l.Failed = true
		l.Status = err.Error()
		return
	}
	ls.tracker = tracker
}
