package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/calebrood/ghostpunch/assets"
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/systems"
	"github.com/calebrood/ghostpunch/systems/factory"
	"github.com/calebrood/ghostpunch/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tuningPath = "tuning.yml"

// ArenaScene runs the brawl: one player, waves of ghosts, a round
// clock and a game-over overlay.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	gameOverUI   *ui.GameOverUI
	overlayShown bool
	once         sync.Once
}

func NewArenaScene(sc SceneChanger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	if err := cfg.ReloadTuningIfChanged(tuningPath); err != nil {
		log.Printf("tuning reload failed: %v", err)
	}

	as.ecs.Update()
	as.updateOverlay()
}

// updateOverlay shows the game-over UI while the round is finished and
// hides it again after a restart.
func (as *ArenaScene) updateOverlay() {
	sessionEntry, ok := components.Session.First(as.ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	if !session.GameOver && !session.TimeUp {
		as.overlayShown = false
		return
	}

	if !as.overlayShown {
		as.gameOverUI.Refresh(session.Score, session.HighScore, session.TimeUp)
		as.overlayShown = true
	}
	as.gameOverUI.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)

	if as.overlayShown {
		as.gameOverUI.UI.Draw(screen)
	}
}

func (as *ArenaScene) configure() {
	if err := cfg.LoadTuning(tuningPath); err != nil {
		log.Printf("tuning load failed: %v", err)
	}
	if _, err := cfg.WatchTuning(tuningPath); err != nil {
		log.Printf("tuning watch unavailable: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateTime)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdatePlayerPhysics)
	ecs.AddSystem(systems.UpdateHitboxes)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateDefeats)
	ecs.AddSystem(systems.UpdateEnemies)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	arena := assets.LoadArena("assets/maps/arena.tmx")

	factory.CreateSpace(ecs, cfg.WorldWidth, cfg.WorldHeight, 16, 16)
	factory.CreateArena(ecs, arena)
	factory.CreateSession(ecs, systems.LoadHighScore())
	factory.CreatePlayer(ecs, cfg.WorldCenterX+cfg.Player.SpawnX, arena.GroundY)

	as.gameOverUI = ui.NewGameOverUI(func() {
		sessionEntry, ok := components.Session.First(as.ecs.World)
		if !ok {
			return
		}
		systems.RestartRound(as.ecs, sessionEntry)
	})

	as.ecs = ecs
}
