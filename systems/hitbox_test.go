package systems

import (
	"testing"

	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// enterAttack forces the player straight into an attack state so the
// swing's frames can be stepped deterministically.
func enterAttack(player *donburi.Entry, s cfg.StateID) {
	state := components.State.Get(player)
	state.CurrentState = s
	state.PreviousState = s
	components.HitTracking.Get(player).Clear()
	components.Animation.Get(player).SetAnimation(s)
}

func advanceToFrame(player *donburi.Entry, frame int) {
	a := components.Animation.Get(player).CurrentAnimation
	for a.Frame() < frame {
		a.Update(a.FrameDuration)
	}
}

func spawnEnemyAt(e *ecs.ECS, player *donburi.Entry, dx, dy float64) *donburi.Entry {
	obj := components.Object.Get(player)
	return factory.CreateEnemy(e, obj.CenterX()+dx, obj.CenterY()+dy, -1)
}

func TestHitVolumeActiveDuringMiddleThird(t *testing.T) {
	e, player := newTestECS()
	enterAttack(player, cfg.Punch)

	// Punch runs frames 1..12; the middle third is 4..8.
	UpdateHitboxes(e)
	hitbox := components.Hitbox.Get(player)
	if hitbox.Active {
		t.Error("frame 1 should be windup, not active")
	}
	if hitbox.Object.W != 0 || hitbox.Object.H != 0 {
		t.Error("inactive volume should be parked at zero size")
	}

	advanceToFrame(player, 4)
	UpdateHitboxes(e)
	if !hitbox.Active {
		t.Fatal("frame 4 should be active")
	}

	obj := components.Object.Get(player)
	wantX := obj.CenterX() + cfg.Combat.HitboxReach - hitbox.Width/2
	if hitbox.Object.X != wantX {
		t.Errorf("volume x = %v, want %v", hitbox.Object.X, wantX)
	}
	if hitbox.Width != 60 || hitbox.Height != 40 {
		t.Errorf("punch volume = %vx%v, want 60x40", hitbox.Width, hitbox.Height)
	}
	if hitbox.Damage != 2 {
		t.Errorf("punch damage = %d, want 2", hitbox.Damage)
	}

	advanceToFrame(player, 9)
	UpdateHitboxes(e)
	if hitbox.Active {
		t.Error("frame 9 should be recovery, not active")
	}
}

func TestHitVolumeFollowsFacing(t *testing.T) {
	e, player := newTestECS()
	components.Player.Get(player).Facing = -1

	// Kick runs frames 1..20; the middle third is 7..13.
	enterAttack(player, cfg.Kick)
	advanceToFrame(player, 10)
	UpdateHitboxes(e)

	hitbox := components.Hitbox.Get(player)
	if !hitbox.Active {
		t.Fatal("frame 10 should be active")
	}
	if hitbox.Width != 80 || hitbox.Height != 50 {
		t.Errorf("kick volume = %vx%v, want 80x50", hitbox.Width, hitbox.Height)
	}
	if hitbox.OffsetX != -cfg.Combat.HitboxReach {
		t.Errorf("offset = %v, want %v", hitbox.OffsetX, -cfg.Combat.HitboxReach)
	}

	obj := components.Object.Get(player)
	if center := hitbox.Object.X + hitbox.Object.W/2; center >= obj.CenterX() {
		t.Error("volume should sit behind a left-facing player's center")
	}
}

func TestSwingHitsEachDefenderOnce(t *testing.T) {
	e, player := newTestECS()
	enemy := spawnEnemyAt(e, player, 110, 0)

	enterAttack(player, cfg.Punch)
	advanceToFrame(player, 5)

	UpdateHitboxes(e)
	queue := damageQueueOf(e)
	events := queue.Drain()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Target != enemy.Entity() {
		t.Error("event targets the wrong entity")
	}
	if ev.Attacker != player.Entity() {
		t.Error("event should credit the player")
	}
	if ev.Amount != 2 {
		t.Errorf("amount = %d, want 2", ev.Amount)
	}

	// Same swing, later active frame: no second hit.
	advanceToFrame(player, 7)
	UpdateHitboxes(e)
	if got := len(queue.Drain()); got != 0 {
		t.Errorf("same swing landed %d extra hits", got)
	}

	// A fresh swing hits again.
	enterAttack(player, cfg.Punch)
	advanceToFrame(player, 5)
	UpdateHitboxes(e)
	if got := len(queue.Drain()); got != 1 {
		t.Errorf("new swing landed %d hits, want 1", got)
	}
}

func TestSwingHitsMultipleDefenders(t *testing.T) {
	e, player := newTestECS()
	first := spawnEnemyAt(e, player, 110, 0)
	second := spawnEnemyAt(e, player, 130, 10)

	enterAttack(player, cfg.Punch)
	advanceToFrame(player, 5)
	UpdateHitboxes(e)

	events := damageQueueOf(e).Drain()
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	hit := map[donburi.Entity]bool{}
	for _, ev := range events {
		hit[ev.Target] = true
	}
	if !hit[first.Entity()] || !hit[second.Entity()] {
		t.Error("both defenders should be hit")
	}
}

func TestOutOfReachDefenderIsMissed(t *testing.T) {
	e, player := newTestECS()
	spawnEnemyAt(e, player, 400, 0)

	enterAttack(player, cfg.Punch)
	advanceToFrame(player, 5)
	UpdateHitboxes(e)

	if got := len(damageQueueOf(e).Drain()); got != 0 {
		t.Errorf("distant defender was hit %d times", got)
	}
}

func TestNonAttackStatesCarryNoVolume(t *testing.T) {
	e, player := newTestECS()
	spawnEnemyAt(e, player, 110, 0)

	UpdateHitboxes(e)

	hitbox := components.Hitbox.Get(player)
	if hitbox.Active {
		t.Error("idle player should have no live volume")
	}
	if got := len(damageQueueOf(e).Drain()); got != 0 {
		t.Errorf("idle player landed %d hits", got)
	}
}

func TestContactDamage(t *testing.T) {
	e, player := newTestECS()
	enemy := spawnEnemyAt(e, player, 50, 0)

	UpdateHitboxes(e)

	events := damageQueueOf(e).Drain()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Amount != cfg.Enemy.ContactDamage {
		t.Errorf("amount = %d, want %d", events[0].Amount, cfg.Enemy.ContactDamage)
	}
	if events[0].Target != player.Entity() {
		t.Error("contact damage should target the player")
	}

	// Stunned ghosts don't hurt on touch.
	donburi.Add(enemy, components.Stunned, &components.StunnedData{
		Timer: components.NewTimer(cfg.Enemy.StunDuration),
	})
	UpdateHitboxes(e)
	if got := len(damageQueueOf(e).Drain()); got != 0 {
		t.Errorf("stunned ghost dealt %d contact hits", got)
	}
	enemy.RemoveComponent(components.Stunned)

	// An invulnerable player takes none.
	donburi.Add(player, components.Invulnerable, &components.InvulnerableData{
		Timer: components.NewTimer(cfg.Player.InvulnDuration),
	})
	UpdateHitboxes(e)
	if got := len(damageQueueOf(e).Drain()); got != 0 {
		t.Errorf("invulnerable player took %d contact hits", got)
	}
}

func TestStunnedDefenderStillTakesSwingHits(t *testing.T) {
	e, player := newTestECS()
	enemy := spawnEnemyAt(e, player, 110, 0)
	donburi.Add(enemy, components.Stunned, &components.StunnedData{
		Timer: components.NewTimer(cfg.Enemy.StunDuration),
	})

	// Stun stops the ghost moving and dealing contact damage, but it
	// does not make it untouchable: a follow-up swing can juggle it.
	enterAttack(player, cfg.Punch)
	advanceToFrame(player, 5)
	UpdateHitboxes(e)

	events := damageQueueOf(e).Drain()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Target != enemy.Entity() {
		t.Error("event targets the wrong entity")
	}
}
