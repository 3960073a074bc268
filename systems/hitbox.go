package systems

import (
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitboxes recomputes the player's hit volume from the current
// state and animation frame, then runs both detection passes: attack
// hits against ghosts and ghost contact damage against the player.
// Damage events land on the session queue for UpdateCombat.
func UpdateHitboxes(ecs *ecs.ECS) {
	updateAttackHitbox(ecs)
	detectAttackHits(ecs)
	detectContactDamage(ecs)
}

// updateAttackHitbox activates the volume during the middle third of
// the swing, in front of the player, sized per attack.
func updateAttackHitbox(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	state := components.State.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	hitbox := components.Hitbox.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	if !state.CurrentState.IsAttack() || anim.CurrentAnimation == nil {
		hitbox.Active = false
		syncHitboxObject(hitbox, obj)
		return
	}

	a := anim.CurrentAnimation
	frame := a.Frame()
	total := a.Last - a.First
	midStart := a.First + total/3
	midEnd := a.First + 2*total/3

	hitbox.Active = frame >= midStart && frame <= midEnd
	hitbox.OffsetX = cfg.Combat.HitboxReach * player.Facing
	hitbox.OffsetY = 0
	hitbox.Damage = cfg.BehaviorFor(state.CurrentState).Damage

	size := cfg.AttackHitboxes[state.CurrentState]
	hitbox.Width = size.W
	hitbox.Height = size.H

	syncHitboxObject(hitbox, obj)
}

// syncHitboxObject mirrors the hit volume into the resolv space.
func syncHitboxObject(hitbox *components.HitboxData, owner *components.ObjectData) {
	if hitbox.Object == nil {
		return
	}
	if !hitbox.Active {
		hitbox.Object.W = 0
		hitbox.Object.H = 0
		hitbox.Object.Update()
		return
	}
	hitbox.Object.X = owner.CenterX() + hitbox.OffsetX - hitbox.Width/2
	hitbox.Object.Y = owner.CenterY() + hitbox.OffsetY - hitbox.Height/2
	hitbox.Object.W = hitbox.Width
	hitbox.Object.H = hitbox.Height
	hitbox.Object.Update()
}

func detectAttackHits(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}

	hitbox := components.Hitbox.Get(playerEntry)
	if !hitbox.Active || hitbox.Object == nil {
		return
	}

	tracking := components.HitTracking.Get(playerEntry)
	queue := components.DamageQueue.Get(sessionEntry)

	check := hitbox.Object.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		enemyEntry, ok := obj.Data.(*donburi.Entry)
		if !ok || !enemyEntry.Valid() {
			continue
		}
		// Stun gates movement and contact damage only; a stunned
		// ghost can still be struck by the next swing.
		// Broadphase only guarantees shared cells, so confirm the
		// boxes truly overlap.
		if !aabbOverlap(hitbox.Object.X, hitbox.Object.Y, hitbox.Object.W, hitbox.Object.H,
			obj.X, obj.Y, obj.W, obj.H) {
			continue
		}
		// One swing lands at most once per target.
		if tracking.HitEntities[enemyEntry.Entity()] {
			continue
		}
		tracking.HitEntities[enemyEntry.Entity()] = true
		queue.Push(components.DamageEvent{
			Attacker: playerEntry.Entity(),
			Target:   enemyEntry.Entity(),
			Amount:   hitbox.Damage,
		})
	}
}

// detectContactDamage hurts the player when a ghost drifts within
// touch range. Stunned ghosts don't deal contact damage, and an
// invulnerable player takes none.
func detectContactDamage(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	sessionEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	if playerEntry.HasComponent(components.Invulnerable) {
		return
	}

	playerObj := components.Object.Get(playerEntry)
	queue := components.DamageQueue.Get(sessionEntry)
	px, py := playerObj.CenterX(), playerObj.CenterY()

	tags.Enemy.Each(ecs.World, func(enemyEntry *donburi.Entry) {
		if enemyEntry.HasComponent(components.Stunned) {
			return
		}
		enemyObj := components.Object.Get(enemyEntry)
		dx := enemyObj.CenterX() - px
		dy := enemyObj.CenterY() - py
		if dx*dx+dy*dy < cfg.Enemy.ContactRange*cfg.Enemy.ContactRange {
			queue.Push(components.DamageEvent{
				Attacker: enemyEntry.Entity(),
				Target:   playerEntry.Entity(),
				Amount:   cfg.Enemy.ContactDamage,
			})
		}
	})
}

func aabbOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return x1 < x2+w2 && x1+w1 > x2 && y1 < y2+h2 && y1+h1 > y2
}
