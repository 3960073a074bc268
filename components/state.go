package components

import (
	"github.com/calebrood/ghostpunch/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
}

// Changed reports whether the state moved since the last time the
// transition hooks ran.
func (s *StateData) Changed() bool {
	return s.CurrentState != s.PreviousState
}

var State = donburi.NewComponentType[StateData]()
