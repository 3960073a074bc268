package components

import (
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for
// all actions. JustPressed/JustReleased are computed by comparing
// frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// GetAction returns the temporal state of an action for this frame.
func (in *InputData) GetAction(action cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[action],
		JustPressed:  in.Current[action] && !in.Previous[action],
		JustReleased: !in.Current[action] && in.Previous[action],
	}
}

var Input = donburi.NewComponentType[InputData]()
