package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	// Facing is +1 when drifting right, -1 when drifting left. Only
	// flips once the player is further than the flip distance behind,
	// so the ghost doesn't jitter when hovering over its target.
	Facing float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
