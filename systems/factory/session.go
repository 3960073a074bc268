package factory

import (
	"github.com/calebrood/ghostpunch/archetypes"
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSession(ecs *ecs.ECS, highScore int) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		HighScore:  highScore,
		RoundTimer: components.NewTimer(cfg.Session.RoundTime),
	})
	return session
}

// ResetSession restores round bookkeeping for a restart. The queues
// are emptied so no stale damage crosses rounds.
func ResetSession(sessionEntry *donburi.Entry) {
	session := components.Session.Get(sessionEntry)
	session.Score = 0
	session.Enemies = 0
	session.RoundTimer = components.NewTimer(cfg.Session.RoundTime)
	session.SinceSpawn = 0
	session.GameOver = false
	session.TimeUp = false

	components.DamageQueue.Get(sessionEntry).Events = nil
	defeats := components.DefeatQueue.Get(sessionEntry)
	defeats.Enemies = nil
	defeats.PlayerDefeated = false
}
