package systems

import (
	"github.com/calebrood/ghostpunch/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations syncs the player's strip to its state and advances
// every actor's current animation. Runs after UpdatePlayer so a
// freshly entered state starts its strip from frame one.
func UpdateAnimations(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	components.Animation.Each(ecs.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)

		if entry.HasComponent(components.State) {
			state := components.State.Get(entry)
			anim.SetAnimation(state.CurrentState)
		} else if anim.CurrentAnimation == nil {
			anim.SetAnimation(anim.CurrentSheet)
		}

		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(dt)
		}
	})
}
