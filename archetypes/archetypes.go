package archetypes

import (
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Animation,
		components.State,
		components.Combo,
		components.JumpPhysics,
		components.Hitbox,
		components.HitTracking,
		components.Input,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Animation,
	)
	Session = newArchetype(
		components.Session,
		components.DamageQueue,
		components.DefeatQueue,
		components.Time,
	)
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		components.Arena,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
