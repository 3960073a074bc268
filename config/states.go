package config

import "fmt"

// StateID identifies one of the player's locomotion or combat states.
type StateID int

const (
	StateNone StateID = iota

	Idle
	IdleToWalk
	IdleToRun
	Walk
	Run
	Jump
	Fall
	Land
	Punch
	PunchCombo
	Kick
	KickCombo
	PunchKickCombo
	JumpPunch
	JumpKick
	Defeat

	StateCount // Must be last - used for array sizing
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	Idle:           "idle",
	IdleToWalk:     "idle_to_walk",
	IdleToRun:      "idle_to_run",
	Walk:           "walk",
	Run:            "run",
	Jump:           "jump",
	Fall:           "fall",
	Land:           "land",
	Punch:          "punch",
	PunchCombo:     "punch_combo",
	Kick:           "kick",
	KickCombo:      "kick_combo",
	PunchKickCombo: "punch_kick_combo",
	JumpPunch:      "jump_punch",
	JumpKick:       "jump_kick",
	Defeat:         "defeat",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StateID(%d)", int(s))
}

// StateToFileName maps each state to its sprite sheet base name.
var StateToFileName = map[StateID]string{
	Idle:           "idle",
	IdleToWalk:     "idle_to_walk",
	IdleToRun:      "idle_to_run",
	Walk:           "walk",
	Run:            "run",
	Jump:           "jump",
	Fall:           "fall",
	Land:           "land",
	Punch:          "punch",
	PunchCombo:     "punch_combo",
	Kick:           "kick",
	KickCombo:      "kick_combo",
	PunchKickCombo: "punch_kick_combo",
	JumpPunch:      "jump_punch",
	JumpKick:       "jump_kick",
	Defeat:         "defeat",
}

// IsAttack reports whether the state is one of the melee states that
// carries a hit volume.
func (s StateID) IsAttack() bool {
	switch s {
	case Punch, PunchCombo, Kick, KickCombo, PunchKickCombo, JumpPunch, JumpKick:
		return true
	}
	return false
}

// IsAerialAttack reports whether the state is an airborne melee state.
func (s StateID) IsAerialAttack() bool {
	return s == JumpPunch || s == JumpKick
}
