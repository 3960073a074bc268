package components

import (
	"github.com/calebrood/ghostpunch/config"
	"github.com/yohamta/donburi"
)

// ComboData tracks attack chaining. The window opens on every attack
// start; a follow-up queued inside it replaces the attack's normal
// animation-finished transition.
type ComboData struct {
	Window      Timer
	LastAttack  config.StateID
	QueuedCombo config.StateID // StateNone when nothing is queued
}

var Combo = donburi.NewComponentType[ComboData]()
