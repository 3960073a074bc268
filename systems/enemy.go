package systems

import (
	"math/rand"

	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/systems/factory"
	"github.com/calebrood/ghostpunch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies spawns ghosts on a cadence and drifts the live ones
// toward the player. Stunned or shoved ghosts hold still until the
// effect decays.
func UpdateEnemies(ecs *ecs.ECS) {
	spawnEnemies(ecs)
	moveEnemies(ecs)
}

func spawnEnemies(ecs *ecs.ECS) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.GameOver || session.TimeUp {
		return
	}

	session.SinceSpawn += DeltaTime(ecs)
	if session.SinceSpawn < cfg.Enemy.SpawnInterval || session.Enemies >= cfg.Enemy.MaxAlive {
		return
	}
	session.SinceSpawn = 0

	offsetX := arenaOf(ecs).EnemySpawnX
	facing := -1.0
	if rand.Intn(2) == 0 {
		offsetX = -offsetX
		facing = 1.0
	}

	factory.CreateEnemy(ecs, cfg.WorldCenterX+offsetX, cfg.WorldCenterY, facing)
	session.Enemies++
}

func moveEnemies(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)
	px, py := playerObj.CenterX(), playerObj.CenterY()
	dt := DeltaTime(ecs)

	tags.Enemy.Each(ecs.World, func(enemyEntry *donburi.Entry) {
		// While a shove is still decaying, UpdateEffects owns the
		// ghost's position.
		if enemyEntry.HasComponent(components.Stunned) ||
			enemyEntry.HasComponent(components.Knockback) {
			return
		}

		enemy := components.Enemy.Get(enemyEntry)
		obj := components.Object.Get(enemyEntry)
		x, y := obj.CenterX(), obj.CenterY()

		// Flip only past the hysteresis distance so the ghost doesn't
		// jitter while hovering on top of the player.
		xDiff := px - x
		if xDiff > cfg.Enemy.FlipDistance {
			enemy.Facing = 1
		} else if xDiff < -cfg.Enemy.FlipDistance {
			enemy.Facing = -1
		}

		yDiff := py - y
		if yDiff > cfg.Enemy.VerticalDeadband {
			y += cfg.Enemy.VerticalSpeed * dt
		} else if yDiff < -cfg.Enemy.VerticalDeadband {
			y -= cfg.Enemy.VerticalSpeed * dt
		}

		x += enemy.Facing * cfg.Enemy.ChaseSpeed * dt

		obj.SetCenter(x, y)
		obj.Update()
	})
}
