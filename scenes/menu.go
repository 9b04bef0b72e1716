package scenes

import (
	"fmt"
	"os"

	cfg "github.com/pixelgrove/scurry/config"
	"github.com/pixelgrove/scurry/fonts"
	"github.com/pixelgrove/scurry/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type menuEntry struct {
	label string
	start int // level index to start, -1 exits
}

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger  SceneChanger
	entries       []menuEntry
	selectedIndex int
	bestLine      string
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	ms := &MenuScene{
		sceneChanger: sc,
		entries: []menuEntry{
			{label: "Play", start: 0},
			{label: "Tiled Arena", start: 1},
			{label: "Exit", start: -1},
		},
	}
	if best := systems.LoadLevelResult(0); best != nil && best.Completed {
		ms.bestLine = fmt.Sprintf("Best: %d points, %d deaths", best.BestScore, best.FewestDeaths)
	}
	return ms
}

func (ms *MenuScene) Update() {
	numOptions := len(ms.entries)

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		ms.selectedIndex = (ms.selectedIndex - 1 + numOptions) % numOptions
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		ms.selectedIndex = (ms.selectedIndex + 1) % numOptions
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		entry := ms.entries[ms.selectedIndex]
		if entry.start < 0 {
			os.Exit(0)
		}
		ms.sceneChanger.ChangeScene(NewPlatformerSceneAtLevel(ms.sceneChanger, entry.start))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		os.Exit(0)
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())

	vector.DrawFilledRect(screen, 0, 0,
		float32(width), float32(screen.Bounds().Dy()),
		cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := "SCURRY"
	titleWidth := len(title) * 20 // Approximate width for 32pt font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	if ms.bestLine != "" {
		bestFont := fonts.Small.Get()
		bestWidth := len(ms.bestLine) * 7
		bestX := int((width - float64(bestWidth)) / 2)
		text.Draw(screen, ms.bestLine, bestFont, bestX, int(cfg.Menu.TitleY)+24, cfg.Menu.TextColorNormal)
	}

	menuFont := fonts.HUD.Get()
	for i, entry := range ms.entries {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == ms.selectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		textWidth := len(entry.label) * 12
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, entry.label, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}
}
