package systems

import (
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDefeats consumes the defeats raised by UpdateCombat in the
// same tick: despawns dead ghosts and scores them, and turns a player
// defeat into the forced Defeat state plus the game-over flag.
func UpdateDefeats(ecs *ecs.ECS) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	defeats := components.DefeatQueue.Get(sessionEntry)

	for _, enemy := range defeats.Enemies {
		if !ecs.World.Valid(enemy) {
			continue
		}
		enemyEntry := ecs.World.Entry(enemy)
		removeFromSpace(ecs, enemyEntry)
		ecs.World.Remove(enemy)
		session.Enemies--
		session.Score += cfg.Session.ScorePerKill
		if session.Score > session.HighScore {
			session.HighScore = session.Score
		}
	}
	defeats.Enemies = defeats.Enemies[:0]

	if defeats.PlayerDefeated {
		defeats.PlayerDefeated = false
		if !session.GameOver {
			session.GameOver = true
			SaveHighScore(session.HighScore)
		}

		// Bypass the normal input/update protocol.
		if playerEntry, ok := tags.Player.First(ecs.World); ok {
			components.State.Get(playerEntry).CurrentState = cfg.Defeat
		}
	}
}

// removeFromSpace detaches an actor's resolv objects before despawn.
func removeFromSpace(ecs *ecs.ECS, entry *donburi.Entry) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry).Object; obj != nil {
			space.Remove(obj)
		}
	}
	if entry.HasComponent(components.Hitbox) {
		if obj := components.Hitbox.Get(entry).Object; obj != nil {
			space.Remove(obj)
		}
	}
}
