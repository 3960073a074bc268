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

func CreateEnemy(ecs *ecs.ECS, x, y, facing float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := cfg.Enemy.HurtboxWidth, cfg.Enemy.HurtboxHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Facing: facing,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: cfg.Enemy.Health,
		Max:     cfg.Enemy.Health,
	})
	animData := GenerateAnimations("ghost", 160, 160)
	animData.CurrentAnimation = animData.Animations[cfg.Idle]
	components.Animation.Set(enemy, animData)

	return enemy
}
