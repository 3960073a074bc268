package components

import "github.com/yohamta/donburi"

type JumpPhysicsData struct {
	VelocityY float64
	GroundY   float64
	JumpForce float64
	// One aerial attack per jump. Cleared on entering Jump, set on
	// entering JumpPunch/JumpKick, untouched by Fall and Land.
	HasUsedAerialAttack bool
}

var JumpPhysics = donburi.NewComponentType[JumpPhysicsData]()
