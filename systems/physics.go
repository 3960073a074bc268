package systems

import (
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerPhysics integrates the player's movement for the tick
// according to the active state's physics config: gravity, air
// control, ground movement, then the unconditional ground clamp.
func UpdatePlayerPhysics(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	dt := DeltaTime(ecs)
	state := components.State.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	jump := components.JumpPhysics.Get(playerEntry)
	input := components.Input.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	physics := cfg.BehaviorFor(state.CurrentState).Physics

	x, y := obj.CenterX(), obj.CenterY()

	left := input.GetAction(cfg.ActionMoveLeft).Pressed
	right := input.GetAction(cfg.ActionMoveRight).Pressed

	if physics.ApplyGravity {
		jump.VelocityY -= cfg.Player.Gravity * dt
		y += jump.VelocityY * dt
		if y < jump.GroundY {
			y = jump.GroundY
			jump.VelocityY = 0
		}
	}

	if physics.AirControl {
		switch {
		case left:
			x -= cfg.Player.AirControlSpeed * dt
			player.Facing = -1
		case right:
			x += cfg.Player.AirControlSpeed * dt
			player.Facing = 1
		}
	}

	if !physics.LocksMovement && physics.GroundSpeed > 0 {
		switch {
		case left:
			x -= physics.GroundSpeed * dt
			player.Facing = -1
		case right:
			x += physics.GroundSpeed * dt
			player.Facing = 1
		}
	}

	// Knockback or other external forces must never leave the player
	// below floor level.
	if y < jump.GroundY {
		y = jump.GroundY
		jump.VelocityY = 0
	}

	obj.SetCenter(x, y)
	obj.Update()
}
