package scenes

import (
	"image/color"
	"sync"

	"github.com/pixelgrove/scurry/components"
	cfg "github.com/pixelgrove/scurry/config"
	"github.com/pixelgrove/scurry/systems"
	"github.com/pixelgrove/scurry/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one level attempt. Reloading rebuilds the whole ECS:
// level data, player, and score are discarded and replaced as one unit,
// never reset piecemeal.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func NewPlatformerSceneAtLevel(sc SceneChanger, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.GetOrCreateInput(ps.ecs).Reset {
		ps.Reload()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Reload rebuilds the level from the same source. Idempotent and
// parameterless: the external reset control required by the simulation.
func (ps *PlatformerScene) Reload() {
	ps.configure()
}

func (ps *PlatformerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)

	// Simulation chain, frozen wholesale once the level is complete.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePickups))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemyContact))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateGoal))

	// Cosmetic systems keep running after completion.
	e.AddSystem(systems.UpdateTweens)
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawVictory)

	ps.ecs = e

	// Level data first, then the collision space sized to it.
	level := factory.CreateLevelAtIndex(e, ps.levelIndex)
	levelData := components.Level.Get(level)
	current := levelData.CurrentLevel

	factory.CreateSpace(e, current.Width, current.Height, 16, 16)
	factory.CreateCamera(e)
	factory.CreateSession(e)

	for _, tile := range current.Solids {
		factory.CreateWall(e, tile.X, tile.Y, tile.Width, tile.Height)
	}
	for _, spawn := range current.Collectibles {
		factory.CreateCollectible(e, spawn)
	}
	factory.CreateGoal(e, current.Goal)
	for _, spawn := range current.EnemySpawns {
		factory.CreateEnemy(e, spawn.X, spawn.Y)
	}
	factory.CreatePlayer(e, current.PlayerSpawn.X, current.PlayerSpawn.Y)

	// Snap the camera to the spawn so the view does not pan in from (0,0).
	systems.SnapCamera(e, current.PlayerSpawn.X, current.PlayerSpawn.Y)
}
