package main

import (
	"flag"
	"image"
	"log"

	"github.com/pixelgrove/scurry/config"
	"github.com/pixelgrove/scurry/fonts"
	"github.com/pixelgrove/scurry/scenes"
	"github.com/pixelgrove/scurry/systems"
	"github.com/hajimehoshi/ebiten/v2"
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

func NewGame() *Game {
	// The TTF is optional; without it the HUD falls back to a bitmap face.
	fonts.LoadFromFile("assets/fonts/display.ttf")

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

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
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "skip the menu and start playing")
	flag.Parse()

	ebiten.SetWindowTitle("Scurry")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Best-run storage is optional; a failure already logged its warning.
	_ = systems.InitPersistence()

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
