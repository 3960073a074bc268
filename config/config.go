package config

import "image/color"

// PlayerConfig contains all player-related tuning values
type PlayerConfig struct {
	// Jump physics
	Gravity         float64 `yaml:"gravity"`
	JumpForce       float64 `yaml:"jump_force"`
	AirControlSpeed float64 `yaml:"air_control_speed"`

	// Combat
	Health      int     `yaml:"health"`
	ComboWindow float64 `yaml:"combo_window"`

	// Status effects applied when hit
	InvulnDuration    float64 `yaml:"invuln_duration"`
	KnockbackForce    float64 `yaml:"knockback_force"`
	HitFlashDuration  float64 `yaml:"hit_flash_duration"`

	// Dimensions
	HurtboxWidth  float64 `yaml:"hurtbox_width"`
	HurtboxHeight float64 `yaml:"hurtbox_height"`

	// Spawn position
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// EnemyConfig contains ghost tuning values
type EnemyConfig struct {
	Health        int     `yaml:"health"`
	ChaseSpeed    float64 `yaml:"chase_speed"`
	VerticalSpeed float64 `yaml:"vertical_speed"`

	// Horizontal flip hysteresis and vertical deadband keep the chase
	// from jittering around the player.
	FlipDistance     float64 `yaml:"flip_distance"`
	VerticalDeadband float64 `yaml:"vertical_deadband"`

	// Contact damage
	ContactDamage int     `yaml:"contact_damage"`
	ContactRange  float64 `yaml:"contact_range"`

	// Status effects applied when hit
	StunDuration     float64 `yaml:"stun_duration"`
	KnockbackForce   float64 `yaml:"knockback_force"`
	HitFlashDuration float64 `yaml:"hit_flash_duration"`

	// Dimensions
	HurtboxWidth  float64 `yaml:"hurtbox_width"`
	HurtboxHeight float64 `yaml:"hurtbox_height"`

	// Spawning
	SpawnInterval float64 `yaml:"spawn_interval"`
	SpawnX        float64 `yaml:"spawn_x"`
	MaxAlive      int     `yaml:"max_alive"`
}

// CombatConfig contains hit-volume and knockback tuning
type CombatConfig struct {
	// Distance the hit volume sits in front of the attacker
	HitboxReach float64 `yaml:"hitbox_reach"`

	// Knockback decay per tick and the removal threshold
	KnockbackDecay     float64 `yaml:"knockback_decay"`
	KnockbackThreshold float64 `yaml:"knockback_threshold"`
}

// SessionConfig contains round-level tuning
type SessionConfig struct {
	RoundTime    float64 `yaml:"round_time"`
	ScorePerKill int     `yaml:"score_per_kill"`
}

// HitboxSize is the width/height of an attack's hit volume.
type HitboxSize struct {
	W float64
	H float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// The resolv space is a positive-coordinate grid; spawn positions in
// the tuning configs are offsets from the arena center.
const (
	WorldWidth   = 8192
	WorldHeight  = 8192
	WorldCenterX = WorldWidth / 2
	WorldCenterY = WorldHeight / 2
)

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Session SessionConfig

// AttackHitboxes maps each attack state to its hit-volume size.
var AttackHitboxes map[StateID]HitboxSize

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Player = PlayerConfig{
		Gravity:         1800,
		JumpForce:       1000,
		AirControlSpeed: 250,

		Health:      20,
		ComboWindow: 0.5,

		InvulnDuration:   1.0,
		KnockbackForce:   500,
		HitFlashDuration: 0.3,

		HurtboxWidth:  100,
		HurtboxHeight: 150,

		SpawnX: -200,
		SpawnY: -200,
	}

	Enemy = EnemyConfig{
		Health:        6,
		ChaseSpeed:    150,
		VerticalSpeed: 50,

		FlipDistance:     150,
		VerticalDeadband: 10,

		ContactDamage: 1,
		ContactRange:  100,

		StunDuration:     0.5,
		KnockbackForce:   300,
		HitFlashDuration: 0.3,

		HurtboxWidth:  80,
		HurtboxHeight: 100,

		SpawnInterval: 2.0,
		SpawnX:        2000,
		MaxAlive:      6,
	}

	Combat = CombatConfig{
		HitboxReach:        80,
		KnockbackDecay:     0.9,
		KnockbackThreshold: 10,
	}

	Session = SessionConfig{
		RoundTime:    120,
		ScorePerKill: 10,
	}

	AttackHitboxes = map[StateID]HitboxSize{
		Punch:          {W: 60, H: 40},
		PunchCombo:     {W: 60, H: 40},
		Kick:           {W: 80, H: 50},
		KickCombo:      {W: 80, H: 50},
		PunchKickCombo: {W: 80, H: 50},
		JumpPunch:      {W: 50, H: 50},
		JumpKick:       {W: 70, H: 60},
	}
}
