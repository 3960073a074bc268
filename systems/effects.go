package systems

import (
	"math"

	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects decays all status effects. Runs after UpdateCombat so
// an effect attached this tick gets its first decay only next tick.
func UpdateEffects(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)

	components.Stunned.Each(ecs.World, func(entry *donburi.Entry) {
		stunned := components.Stunned.Get(entry)
		stunned.Timer.Tick(dt)
		if stunned.Timer.Finished() {
			entry.RemoveComponent(components.Stunned)
		}
	})

	components.Invulnerable.Each(ecs.World, func(entry *donburi.Entry) {
		invuln := components.Invulnerable.Get(entry)
		invuln.Timer.Tick(dt)
		if invuln.Timer.Finished() {
			entry.RemoveComponent(components.Invulnerable)
		}
	})

	components.Knockback.Each(ecs.World, func(entry *donburi.Entry) {
		applyKnockback(entry, dt)
	})

	components.HitFlash.Each(ecs.World, func(entry *donburi.Entry) {
		flash := components.HitFlash.Get(entry)
		value, done := flash.Ramp.Update(float32(dt))
		flash.Intensity = value
		if done {
			entry.RemoveComponent(components.HitFlash)
		}
	})
}

// applyKnockback shoves the actor, then decays the velocity
// geometrically and removes it under the threshold. Grounded actors
// only take the horizontal component; airborne ghosts take both axes.
func applyKnockback(entry *donburi.Entry, dt float64) {
	kb := components.Knockback.Get(entry)
	obj := components.Object.Get(entry)

	x, y := obj.CenterX(), obj.CenterY()
	grounded := false
	if entry.HasComponent(components.JumpPhysics) {
		jump := components.JumpPhysics.Get(entry)
		grounded = y <= jump.GroundY+1.0
	}

	x += kb.VelocityX * dt
	if !grounded {
		y += kb.VelocityY * dt
	}
	obj.SetCenter(x, y)
	obj.Update()

	kb.VelocityX *= cfg.Combat.KnockbackDecay
	kb.VelocityY *= cfg.Combat.KnockbackDecay

	if math.Hypot(kb.VelocityX, kb.VelocityY) < cfg.Combat.KnockbackThreshold {
		entry.RemoveComponent(components.Knockback)
	}
}
