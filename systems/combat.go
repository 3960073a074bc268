package systems

import (
	"math"

	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat drains the tick's damage queue: applies health deltas,
// derives knockback from attacker-to-target direction, attaches the
// status effects, and raises defeats for the cleanup stage.
func UpdateCombat(ecs *ecs.ECS) {
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	queue := components.DamageQueue.Get(sessionEntry)
	defeats := components.DefeatQueue.Get(sessionEntry)

	for _, ev := range queue.Drain() {
		if !ecs.World.Valid(ev.Target) {
			continue
		}
		targetEntry := ecs.World.Entry(ev.Target)
		if !targetEntry.HasComponent(components.Health) {
			continue
		}

		health := components.Health.Get(targetEntry)
		health.Current -= ev.Amount

		isEnemy := targetEntry.HasComponent(components.Enemy)

		if health.Current <= 0 {
			// Defeated targets get no status effects.
			if isEnemy {
				defeats.Enemies = append(defeats.Enemies, ev.Target)
			} else {
				defeats.PlayerDefeated = true
			}
			continue
		}

		dirX, dirY := knockbackDirection(ecs, ev.Attacker, targetEntry)
		if isEnemy {
			applyStatusEffects(targetEntry, dirX, dirY, cfg.Enemy.KnockbackForce, cfg.Enemy.HitFlashDuration, true)
		} else {
			applyStatusEffects(targetEntry, dirX, dirY, cfg.Player.KnockbackForce, cfg.Player.HitFlashDuration, false)
		}
	}
}

// knockbackDirection is the normalized attacker-to-target vector, or
// zero when the attacker no longer exists.
func knockbackDirection(ecs *ecs.ECS, attacker donburi.Entity, targetEntry *donburi.Entry) (float64, float64) {
	if !ecs.World.Valid(attacker) {
		return 0, 0
	}
	attackerEntry := ecs.World.Entry(attacker)
	if !attackerEntry.HasComponent(components.Object) {
		return 0, 0
	}
	if !targetEntry.HasComponent(components.Object) {
		return 0, 0
	}

	from := components.Object.Get(attackerEntry)
	to := components.Object.Get(targetEntry)

	dx := to.CenterX() - from.CenterX()
	dy := to.CenterY() - from.CenterY()
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		return 0, 0
	}
	return dx / mag, dy / mag
}

// applyStatusEffects attaches stun (enemies) or invulnerability
// (player), knockback, and the hit flash. A second hit while an
// effect is live restarts it rather than stacking a duplicate.
func applyStatusEffects(targetEntry *donburi.Entry, dirX, dirY, knockbackForce, flashDuration float64, isEnemy bool) {
	if isEnemy {
		if targetEntry.HasComponent(components.Stunned) {
			components.Stunned.Get(targetEntry).Timer = components.NewTimer(cfg.Enemy.StunDuration)
		} else {
			donburi.Add(targetEntry, components.Stunned, &components.StunnedData{
				Timer: components.NewTimer(cfg.Enemy.StunDuration),
			})
		}
	} else {
		if targetEntry.HasComponent(components.Invulnerable) {
			components.Invulnerable.Get(targetEntry).Timer = components.NewTimer(cfg.Player.InvulnDuration)
		} else {
			donburi.Add(targetEntry, components.Invulnerable, &components.InvulnerableData{
				Timer: components.NewTimer(cfg.Player.InvulnDuration),
			})
		}
	}

	kb := components.KnockbackData{
		VelocityX: dirX * knockbackForce,
		VelocityY: dirY * knockbackForce,
	}
	if targetEntry.HasComponent(components.Knockback) {
		*components.Knockback.Get(targetEntry) = kb
	} else {
		donburi.Add(targetEntry, components.Knockback, &kb)
	}

	flash := components.HitFlashData{
		Ramp:      gween.New(1, 0, float32(flashDuration), ease.Linear),
		Intensity: 1,
	}
	if targetEntry.HasComponent(components.HitFlash) {
		*components.HitFlash.Get(targetEntry) = flash
	} else {
		donburi.Add(targetEntry, components.HitFlash, &flash)
	}
}
