package main

import (
	"flag"

	"go.uber.org/zap"

	"chosenoffset.com/lightrays/internal/game"
	ebitenrender "chosenoffset.com/lightrays/internal/render/ebiten"
	"chosenoffset.com/lightrays/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "", "path to a scene YAML file (uses the built-in scene when empty)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := scene.DefaultConfig()
	if *scenePath != "" {
		cfg, err = scene.LoadConfig(*scenePath)
		if err != nil {
			logger.Fatal("failed to load scene", zap.String("path", *scenePath), zap.Error(err))
		}
		logger.Info("loaded scene", zap.String("path", *scenePath))
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	input := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	sc := scene.New(cfg)
	logger.Info("scene ready",
		zap.Int("rays", sc.Bundle.Len()),
		zap.Int("obstacles", len(sc.Obstacles())))

	g := game.New(sc, renderer, input, cfg.Window.Width, cfg.Window.Height, logger)

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	if err := engine.RunGame(g); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
