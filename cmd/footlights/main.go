package main

import (
	"log"

	"chosenoffset.com/footlights/internal/config"
	"chosenoffset.com/footlights/internal/play"
	"chosenoffset.com/footlights/internal/playbill"
	ebitenrender "chosenoffset.com/footlights/internal/render/ebiten"
	"chosenoffset.com/footlights/internal/theater"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	playPath, err := playbill.Resolve(cfg.PlayPath)
	if err != nil {
		log.Fatalf("Failed to find a play: %v", err)
	}

	log.Printf("Loading play %s...", playPath)
	p, err := play.Load(playPath)
	if err != nil {
		log.Fatalf("Failed to load play: %v", err)
	}

	stage := theater.New(renderer, inputMgr, cfg.ScreenWidth, cfg.ScreenHeight)
	stage.Cast(p, loader, cfg.PortraitDir)

	title := cfg.Title
	if p.Title != "" {
		title = cfg.Title + " - " + p.Title
	}

	// Set up the window
	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle(title)
	engine.SetWindowResizable(cfg.Resizable)

	log.Println("Raising the curtain...")
	if err := engine.RunGame(stage); err != nil {
		log.Fatal(err)
	}
}
