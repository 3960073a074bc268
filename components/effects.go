package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Status effects attached by the damage resolution stage and decayed
// every tick. An actor holds at most one of each kind.

// StunnedData freezes enemy movement until the timer expires.
type StunnedData struct {
	Timer Timer
}

var Stunned = donburi.NewComponentType[StunnedData]()

// InvulnerableData blocks contact damage to the player until the
// timer expires.
type InvulnerableData struct {
	Timer Timer
}

var Invulnerable = donburi.NewComponentType[InvulnerableData]()

// KnockbackData is a decaying velocity applied on top of normal
// movement. Removed once its magnitude falls under the threshold.
type KnockbackData struct {
	VelocityX float64
	VelocityY float64
}

var Knockback = donburi.NewComponentType[KnockbackData]()

// HitFlashData drives the red tint ramp on a freshly hit actor.
// Intensity runs 1 to 0 over the flash duration.
type HitFlashData struct {
	Ramp      *gween.Tween
	Intensity float32
}

var HitFlash = donburi.NewComponentType[HitFlashData]()
