package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/uitween/config"
	"github.com/automoto/uitween/fonts"
	"github.com/automoto/uitween/loading"
	"github.com/automoto/uitween/logx"
	"github.com/automoto/uitween/scenes"
	"github.com/automoto/uitween/systems"
	"github.com/automoto/uitween/tween"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(svc scenes.Services) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLoadingScene(g, svc)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config overlay, reloaded on change")
	logLevel := flag.String("log-level", "", "override the configured log level")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *logLevel != "" {
		config.Log.Level = *logLevel
	}

	logSvc, logger := logx.New(config.Log)
	defer logSvc.Close()

	if err := fonts.LoadDefaults(); err != nil {
		logger.Error("failed to load fonts", logx.Err(err))
		os.Exit(1)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(logger); err != nil {
		logger.Warn("could not initialize persistence", logx.Err(err))
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	clock := tween.NewClock()
	clock.SetTimeScale(config.Tween.TimeScale)

	svc := scenes.Services{
		Log:        logger,
		Clock:      clock,
		Loader:     loading.NewManager(config.Loading.ActivationThreshold, logger),
		ConfigPath: *configPath,
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	logger.Info("starting",
		logx.Int("width", config.C.Width),
		logx.Int("height", config.C.Height),
		logx.Int("tps", config.C.TPS),
	)
	if err := ebiten.RunGame(NewGame(svc)); err != nil {
		logger.Error("game exited", logx.Err(err))
		logSvc.Close()
		os.Exit(1)
	}
}
