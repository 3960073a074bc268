package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Facing is +1 when looking right, -1 when looking left.
	Facing float64
}

var Player = donburi.NewComponentType[PlayerData]()
