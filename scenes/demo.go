package scenes

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/uitween/animation"
	"github.com/automoto/uitween/components"
	cfg "github.com/automoto/uitween/config"
	"github.com/automoto/uitween/ease"
	"github.com/automoto/uitween/layout"
	"github.com/automoto/uitween/logx"
	"github.com/automoto/uitween/systems"
	"github.com/automoto/uitween/systems/factory"
	"github.com/automoto/uitween/tags"
	"github.com/automoto/uitween/tween"
	"github.com/automoto/uitween/ui"
)

const moveOffset = 200.0

// DemoScene shows the layout's elements and lets the user animate them.
type DemoScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	svc          Services
	log          logx.Logger
	once         sync.Once

	target string
	layout *layout.Layout

	sched    *tween.Scheduler
	source   tween.TimeSource
	entries  []*donburi.Entry
	specs    map[donburi.Entity]layout.ElementSpec
	selected int
	preset   int
	toast    *donburi.Entry

	controls *ui.ControlsUI

	// config reloads arrive on the watcher goroutine and are applied in Update
	mu        sync.Mutex
	pending   *cfg.File
	stopWatch context.CancelFunc
}

func NewDemoScene(sc SceneChanger, svc Services, target string, l *layout.Layout) *DemoScene {
	return &DemoScene{
		sceneChanger: sc,
		svc:          svc,
		log:          svc.Log.With(logx.String("scene", "demo")),
		target:       target,
		layout:       l,
	}
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)

	ds.mu.Lock()
	f := ds.pending
	ds.pending = nil
	ds.mu.Unlock()
	if f != nil {
		ds.applyConfig(f)
	}

	ds.controls.Update()
	ds.ecs.Update()
	ds.refreshStatus()
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
	ds.controls.Draw(screen)
}

func (ds *DemoScene) configure() {
	ds.ecs = ecs.NewECS(donburi.NewWorld())

	defaultEasing, err := ease.Lookup(cfg.Tween.Easing)
	if err != nil {
		ds.log.Warn("unknown default easing", logx.Err(err))
		defaultEasing = ease.Default
	}
	ds.sched = tween.NewScheduler(tween.WithLogger(ds.log), tween.WithDefaultEasing(defaultEasing))
	ds.source, err = tween.ParseTimeSource(cfg.Tween.TimeSource)
	if err != nil {
		ds.log.Warn("unknown time source", logx.Err(err))
	}
	ds.svc.Clock.SetTimeScale(cfg.Tween.TimeScale)

	ds.ecs.AddSystem(systems.NewUpdateTweens(ds.sched, ds.svc.Clock, func() tween.TimeSource { return ds.source }, ds.log))
	ds.ecs.AddSystem(systems.NewUpdatePulses(ds.svc.Clock))
	ds.ecs.AddSystem(systems.NewUpdateShortcuts([]systems.KeyBinding{
		{Key: ebiten.KeyM, Action: ds.move},
		{Key: ebiten.KeyF, Action: ds.fade},
		{Key: ebiten.KeyS, Action: ds.slide},
		{Key: ebiten.KeyX, Action: ds.scale},
		{Key: ebiten.KeyP, Action: ds.playPreset},
		{Key: ebiten.KeyC, Action: ds.cancel},
		{Key: ebiten.KeyTab, Action: ds.selectNext},
		{Key: ebiten.KeyE, Action: ds.cycleEasing},
		{Key: ebiten.KeyT, Action: ds.cycleTimeScale},
		{Key: ebiten.KeySpace, Action: ds.togglePause},
		{Key: ebiten.KeyU, Action: ds.toggleTimeSource},
		{Key: ebiten.KeyR, Action: ds.toggleReducedMotion},
		{Key: ebiten.KeyK, Action: ds.save},
	}))
	ds.ecs.AddRenderer(cfg.Default, systems.DrawElements)

	ds.specs = make(map[donburi.Entity]layout.ElementSpec)
	if ds.layout != nil {
		ds.entries = factory.CreateLayout(ds.ecs, ds.layout)
		for i, entry := range ds.entries {
			spec := ds.layout.Elements[i]
			ds.specs[entry.Entity()] = spec
			if spec.Hidden && ds.toast == nil {
				ds.toast = entry
			}
			ds.playIntro(entry, spec)
		}
	}
	if len(ds.entries) > 0 {
		ds.entries[0].AddComponent(tags.Selected)
	}

	controls, err := ui.NewControlsUI([]ui.Control{
		{Label: "Move [M]", OnClick: ds.move},
		{Label: "Fade [F]", OnClick: ds.fade},
		{Label: "Slide [S]", OnClick: ds.slide},
		{Label: "Scale [X]", OnClick: ds.scale},
		{Label: "Preset [P]", OnClick: ds.playPreset},
		{Label: "Cancel [C]", OnClick: ds.cancel},
		{Label: "Next element [Tab]", OnClick: ds.selectNext},
		{Label: "Easing [E]", OnClick: ds.cycleEasing},
		{Label: "Time scale [T]", OnClick: ds.cycleTimeScale},
		{Label: "Pause [Space]", OnClick: ds.togglePause},
		{Label: "Time source [U]", OnClick: ds.toggleTimeSource},
		{Label: "Reduced motion [R]", OnClick: ds.toggleReducedMotion},
		{Label: "Save settings [K]", OnClick: ds.save},
	})
	if err != nil {
		ds.log.Error("control panel unavailable", logx.Err(err))
		panic(err)
	}
	ds.controls = controls

	ctx, cancel := context.WithCancel(context.Background())
	ds.stopWatch = cancel
	if ds.svc.ConfigPath != "" {
		go func() {
			err := cfg.Watch(ctx, ds.svc.ConfigPath, ds.svc.Log, func(f *cfg.File) {
				ds.mu.Lock()
				ds.pending = f
				ds.mu.Unlock()
			})
			if err != nil {
				ds.log.Warn("config watch stopped", logx.Err(err))
			}
		}()
	}

	ds.log.Info("demo ready", logx.String("layout", ds.target), logx.Int("elements", len(ds.entries)))
}

// playIntro runs the element's intro preset, offset by its intro delay.
func (ds *DemoScene) playIntro(entry *donburi.Entry, spec layout.ElementSpec) {
	if spec.Intro == "" {
		return
	}
	p, ok := cfg.Presets[spec.Intro]
	if !ok {
		ds.log.Warn("unknown intro preset", logx.String("element", spec.Name), logx.String("preset", spec.Intro))
		return
	}
	p.Delay += spec.IntroDelay

	var hooks animation.Hooks
	switch p.Kind {
	case "move":
		// Fly in from off the left edge to the authored position.
		tr := components.Transform.Get(entry)
		tr.X, tr.Y = -spec.W-p.X, spec.Y
		p.X, p.Y = spec.X, spec.Y
	case "scale_y", "scale_x":
		hooks.OnComplete = func() {
			if entry.Valid() {
				factory.AddPulse(entry, 0.55, 1, 1.6)
			}
		}
	}
	if _, err := animation.Play(ds.sched, entry, p, hooks); err != nil {
		ds.log.Warn("intro failed", logx.String("element", spec.Name), logx.Err(err))
	}
}

func (ds *DemoScene) current() (*donburi.Entry, layout.ElementSpec, bool) {
	if len(ds.entries) == 0 {
		return nil, layout.ElementSpec{}, false
	}
	entry := ds.entries[ds.selected]
	return entry, ds.specs[entry.Entity()], entry.Valid()
}

func (ds *DemoScene) timing() animation.Timing {
	return animation.DefaultTiming()
}

func (ds *DemoScene) report(action string, err error) {
	if err != nil {
		ds.controls.SetStatus(action + ": " + err.Error())
		ds.log.Debug("action failed", logx.String("action", action), logx.Err(err))
		return
	}
	ds.controls.SetStatus(action)
}

func (ds *DemoScene) move() {
	entry, spec, ok := ds.current()
	if !ok {
		return
	}
	to := animation.Vec2{X: spec.X + moveOffset, Y: spec.Y}
	if components.Transform.Get(entry).X > spec.X+moveOffset/2 {
		to.X = spec.X
	}
	_, err := animation.Move(ds.sched, entry, to, ds.timing(), animation.Hooks{})
	ds.report("move", err)
}

func (ds *DemoScene) fade() {
	entry, _, ok := ds.current()
	if !ok {
		return
	}
	factory.RemovePulse(entry)
	var err error
	if components.Graphic.Get(entry).Alpha > 0.5 {
		_, err = animation.FadeOut(ds.sched, entry, ds.timing(), animation.Hooks{})
	} else {
		_, err = animation.FadeIn(ds.sched, entry, ds.timing(), animation.Hooks{})
	}
	ds.report("fade", err)
}

func (ds *DemoScene) slide() {
	entry, spec, ok := ds.current()
	if !ok {
		return
	}
	origin, err := components.ParseFillOrigin(spec.Origin)
	if err != nil {
		origin = components.FillLeft
	}
	_, err = animation.Slide(ds.sched, entry, 0, 1, origin, ds.timing(), animation.Hooks{})
	ds.report("slide", err)
}

func (ds *DemoScene) scale() {
	entry, _, ok := ds.current()
	if !ok {
		return
	}
	_, err := animation.ScaleAxis(ds.sched, entry, 0, 1, animation.AxisY, ds.timing(), animation.Hooks{})
	ds.report("scale", err)
}

func (ds *DemoScene) playPreset() {
	entry, spec, ok := ds.current()
	if !ok {
		return
	}
	names := make([]string, 0, len(cfg.Presets))
	for name := range cfg.Presets {
		names = append(names, name)
	}
	if len(names) == 0 {
		return
	}
	sort.Strings(names)
	name := names[ds.preset%len(names)]
	ds.preset++

	p := cfg.Presets[name]
	if p.Kind == "move" {
		// Presets move relative to where the element was authored.
		p.X += spec.X
		p.Y = spec.Y
	}
	_, err := animation.Play(ds.sched, entry, p, animation.Hooks{})
	ds.report("preset "+name, err)
}

func (ds *DemoScene) cancel() {
	entry, _, ok := ds.current()
	if !ok {
		return
	}
	n := animation.StopAll(ds.sched, entry)
	ds.report(fmt.Sprintf("canceled %d", n), nil)
}

func (ds *DemoScene) selectNext() {
	if len(ds.entries) == 0 {
		return
	}
	prev := ds.entries[ds.selected]
	if prev.Valid() && prev.HasComponent(tags.Selected) {
		prev.RemoveComponent(tags.Selected)
	}
	ds.selected = (ds.selected + 1) % len(ds.entries)
	ds.entries[ds.selected].AddComponent(tags.Selected)
}

func (ds *DemoScene) cycleEasing() {
	names := cfg.Settings.EasingCycle
	if len(names) == 0 {
		return
	}
	next := names[0]
	for i, n := range names {
		if n == cfg.Tween.Easing {
			next = names[(i+1)%len(names)]
			break
		}
	}
	cfg.Tween.Easing = next
}

func (ds *DemoScene) cycleTimeScale() {
	steps := cfg.Settings.TimeScaleSteps
	if len(steps) == 0 {
		return
	}
	next := steps[0]
	for i, v := range steps {
		if v == ds.svc.Clock.TimeScale() {
			next = steps[(i+1)%len(steps)]
			break
		}
	}
	ds.svc.Clock.SetTimeScale(next)
	cfg.Tween.TimeScale = next
}

func (ds *DemoScene) togglePause() {
	if ds.svc.Clock.IsPaused() {
		ds.svc.Clock.Resume()
	} else {
		ds.svc.Clock.Pause()
	}
}

func (ds *DemoScene) toggleTimeSource() {
	if ds.source == tween.Scaled {
		ds.source = tween.Unscaled
	} else {
		ds.source = tween.Scaled
	}
	cfg.Tween.TimeSource = ds.source.String()
	ds.report("time source "+ds.source.String(), nil)
}

func (ds *DemoScene) toggleReducedMotion() {
	cfg.Tween.ReducedMotion = !cfg.Tween.ReducedMotion
	ds.report(fmt.Sprintf("reduced motion %v", cfg.Tween.ReducedMotion), nil)
}

// save persists the settings and flashes the toast: fade in, hold, fade out.
func (ds *DemoScene) save() {
	err := systems.SaveSettings(systems.CurrentSettings(ds.svc.Clock))
	ds.report("settings saved", err)
	if err != nil || ds.toast == nil {
		return
	}
	toast := ds.toast
	_, err = animation.FadeIn(ds.sched, toast, animation.Timing{Duration: 0.2, Easing: ease.OutQuad}, animation.Hooks{
		OnComplete: func() {
			_, err := animation.FadeOut(ds.sched, toast, animation.Timing{Duration: 0.4, Delay: 1.2, Easing: ease.Linear}, animation.Hooks{
				OnComplete: func() {
					if toast.Valid() {
						components.Element.Get(toast).Visible = false
					}
				},
			})
			if err != nil {
				ds.log.Warn("toast fade out failed", logx.Err(err))
			}
		},
	})
	if err != nil {
		ds.log.Warn("toast fade in failed", logx.Err(err))
	}
}

func (ds *DemoScene) applyConfig(f *cfg.File) {
	cfg.Apply(f)
	ds.svc.Clock.SetTimeScale(cfg.Tween.TimeScale)
	if src, err := tween.ParseTimeSource(cfg.Tween.TimeSource); err == nil {
		ds.source = src
	}
	ds.report("config reloaded", nil)
}

func (ds *DemoScene) refreshStatus() {
	if _, spec, ok := ds.current(); ok {
		ds.controls.SetSelection(spec.Name)
	}
	ds.controls.SetEasing(cfg.Tween.Easing)
	ds.controls.SetClock(ds.svc.Clock.TimeScale(), ds.svc.Clock.IsPaused(), ds.sched.Len())
}
