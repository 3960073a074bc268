package systems

import (
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/systems/factory"
	"github.com/calebrood/ghostpunch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession ticks the round timer and handles the restart input
// once the round has ended.
func UpdateSession(ecs *ecs.ECS) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	if !session.GameOver && !session.TimeUp {
		session.RoundTimer.Tick(DeltaTime(ecs))
		if session.RoundTimer.Finished() {
			session.TimeUp = true
			SaveHighScore(session.HighScore)
		}
	}

	if session.GameOver || session.TimeUp {
		if input := PlayerInput(ecs); input != nil {
			if input.GetAction(cfg.ActionRestart).JustPressed {
				RestartRound(ecs, sessionEntry)
			}
		}
	}
}

// RestartRound reinitializes all per-actor and session state for a
// fresh round: despawns every ghost, resets the player, and zeroes
// the bookkeeping.
func RestartRound(ecs *ecs.ECS, sessionEntry *donburi.Entry) {
	var dead []donburi.Entity
	tags.Enemy.Each(ecs.World, func(enemyEntry *donburi.Entry) {
		removeFromSpace(ecs, enemyEntry)
		dead = append(dead, enemyEntry.Entity())
	})
	for _, e := range dead {
		ecs.World.Remove(e)
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		factory.ResetPlayer(playerEntry,
			cfg.WorldCenterX+cfg.Player.SpawnX,
			arenaOf(ecs).GroundY)
	}

	factory.ResetSession(sessionEntry)
}

// arenaOf returns the loaded arena layout, or the default flat arena
// when none was created.
func arenaOf(ecs *ecs.ECS) components.ArenaData {
	if entry, ok := components.Arena.First(ecs.World); ok {
		return *components.Arena.Get(entry)
	}
	return components.ArenaData{
		GroundY:     cfg.WorldCenterY + cfg.Player.SpawnY,
		MinX:        cfg.WorldCenterX - float64(cfg.C.Width)/2,
		MaxX:        cfg.WorldCenterX + float64(cfg.C.Width)/2,
		EnemySpawnX: cfg.Enemy.SpawnX,
	}
}
