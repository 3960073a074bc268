package factory

import (
	"github.com/calebrood/ghostpunch/archetypes"
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.HurtboxWidth, cfg.Player.HurtboxHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Player.SetValue(player, components.PlayerData{
		Facing: 1,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.Idle,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	// The window starts closed; entering an attack reopens it.
	comboWindow := components.NewTimer(cfg.Player.ComboWindow)
	comboWindow.Remaining = 0
	components.Combo.SetValue(player, components.ComboData{
		Window:      comboWindow,
		LastAttack:  cfg.StateNone,
		QueuedCombo: cfg.StateNone,
	})
	components.JumpPhysics.SetValue(player, components.JumpPhysicsData{
		GroundY:   y,
		JumpForce: cfg.Player.JumpForce,
	})
	components.HitTracking.SetValue(player, components.HitTrackingData{
		HitEntities: make(map[donburi.Entity]bool),
	})

	// The hit volume rides in the same space as the hurtboxes. It is
	// resized and repositioned per swing; inactive swings park it
	// with zero size.
	hitObj := resolv.NewObject(x, y, 1, 1)
	hitObj.AddTags(tags.ResolvHitbox)
	hitObj.Data = player
	components.Hitbox.SetValue(player, components.HitboxData{Object: hitObj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(hitObj)
	}

	animData := GenerateAnimations("player", 320, 320)
	animData.CurrentAnimation = animData.Animations[cfg.Idle]
	components.Animation.Set(player, animData)

	return player
}

// ResetPlayer restores a player entry to its initial round state.
func ResetPlayer(playerEntry *donburi.Entry, x, y float64) {
	components.Player.Get(playerEntry).Facing = 1

	state := components.State.Get(playerEntry)
	state.CurrentState = cfg.Idle
	state.PreviousState = cfg.Idle

	health := components.Health.Get(playerEntry)
	health.Current = cfg.Player.Health
	health.Max = cfg.Player.Health

	combo := components.Combo.Get(playerEntry)
	combo.Window = components.NewTimer(cfg.Player.ComboWindow)
	combo.Window.Remaining = 0
	combo.LastAttack = cfg.StateNone
	combo.QueuedCombo = cfg.StateNone

	jump := components.JumpPhysics.Get(playerEntry)
	jump.VelocityY = 0
	jump.GroundY = y
	jump.JumpForce = cfg.Player.JumpForce
	jump.HasUsedAerialAttack = false

	hitbox := components.Hitbox.Get(playerEntry)
	*hitbox = components.HitboxData{Object: hitbox.Object}

	components.HitTracking.Get(playerEntry).Clear()

	obj := components.Object.Get(playerEntry)
	obj.SetCenter(x, y)
	obj.Update()

	anim := components.Animation.Get(playerEntry)
	anim.CurrentSheet = cfg.StateNone
	anim.SetAnimation(cfg.Idle)

	if playerEntry.HasComponent(components.Stunned) {
		donburi.Remove[components.StunnedData](playerEntry, components.Stunned)
	}
	if playerEntry.HasComponent(components.Invulnerable) {
		donburi.Remove[components.InvulnerableData](playerEntry, components.Invulnerable)
	}
	if playerEntry.HasComponent(components.Knockback) {
		donburi.Remove[components.KnockbackData](playerEntry, components.Knockback)
	}
	if playerEntry.HasComponent(components.HitFlash) {
		donburi.Remove[components.HitFlashData](playerEntry, components.HitFlash)
	}
}
