package config

import "fmt"

// InputSnapshot carries one tick's worth of player input plus the
// animation progress a state needs to judge combo timing.
type InputSnapshot struct {
	Left  bool
	Right bool
	Shift bool
	Jump  bool // just pressed
	Punch bool // just pressed
	Kick  bool // just pressed

	HasUsedAerialAttack bool
	CurrentFrame        int
	TotalFrames         int
}

// UpdateSnapshot carries the animation/physics conditions a state's
// update phase reacts to.
type UpdateSnapshot struct {
	AnimationFinished bool
	AtGround          bool
	VelocityY         float64
}

// TransitionKind distinguishes the ways a state can respond to input
// or update conditions.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionTo
	TransitionQueue
)

// Transition is a state's requested response for the current tick.
type Transition struct {
	Kind TransitionKind
	To   StateID
}

// Stay requests no transition.
var Stay = Transition{}

// To requests an immediate transition.
func To(s StateID) Transition {
	return Transition{Kind: TransitionTo, To: s}
}

// QueueCombo requests that a follow-up attack be queued for when the
// current animation finishes.
func QueueCombo(s StateID) Transition {
	return Transition{Kind: TransitionQueue, To: s}
}

// StatePhysics describes how the physics step treats an actor in a
// given state.
type StatePhysics struct {
	GroundSpeed   float64
	AirControl    bool
	ApplyGravity  bool
	LocksMovement bool
}

// Behavior bundles everything the state machine needs to know about
// one state: its input reactions, its auto-transitions, and its
// physics and combat parameters.
type Behavior struct {
	HandleInput func(in InputSnapshot) Transition
	Update      func(u UpdateSnapshot) Transition
	Physics     StatePhysics
	Damage      int
}

// IsAttack reports whether the behavior carries a hit volume.
func (b Behavior) IsAttack() bool {
	return b.Damage > 0
}

// LocksInput reports whether the input phase should ignore movement
// and jump inputs for this state. Combo inputs bypass this at the
// system layer.
func (b Behavior) LocksInput() bool {
	return b.Physics.LocksMovement
}

// groundedInput is the shared input reaction of the grounded movement
// states: attacks first, then jump, then the movement decision.
func groundedInput(onMove, onStop func(in InputSnapshot) Transition) func(in InputSnapshot) Transition {
	return func(in InputSnapshot) Transition {
		if in.Punch {
			return To(Punch)
		}
		if in.Kick {
			return To(Kick)
		}
		if in.Jump {
			return To(Jump)
		}
		if in.Left || in.Right {
			if onMove != nil {
				return onMove(in)
			}
			return Stay
		}
		if onStop != nil {
			return onStop(in)
		}
		return Stay
	}
}

// airborneInput allows one aerial attack per jump; steering is the
// physics step's job.
func airborneInput(in InputSnapshot) Transition {
	if !in.HasUsedAerialAttack {
		if in.Punch {
			return To(JumpPunch)
		}
		if in.Kick {
			return To(JumpKick)
		}
	}
	return Stay
}

// comboInput queues the follow-up attack when the press lands in the
// second half of the swing.
func comboInput(pressed func(in InputSnapshot) bool, next StateID) func(in InputSnapshot) Transition {
	return func(in InputSnapshot) Transition {
		if pressed(in) && in.CurrentFrame >= in.TotalFrames/2 {
			return QueueCombo(next)
		}
		return Stay
	}
}

func lockedInput(InputSnapshot) Transition { return Stay }

func noUpdate(UpdateSnapshot) Transition { return Stay }

// finishTo transitions when the animation completes.
func finishTo(next StateID) func(u UpdateSnapshot) Transition {
	return func(u UpdateSnapshot) Transition {
		if u.AnimationFinished {
			return To(next)
		}
		return Stay
	}
}

// aerialAttackUpdate lands or resumes falling once the swing ends.
func aerialAttackUpdate(u UpdateSnapshot) Transition {
	if u.AnimationFinished {
		if u.AtGround {
			return To(Land)
		}
		return To(Fall)
	}
	return Stay
}

var behaviors map[StateID]Behavior

func init() {
	stopToIdle := func(InputSnapshot) Transition { return To(Idle) }
	startMoving := func(in InputSnapshot) Transition {
		if in.Shift {
			return To(IdleToWalk)
		}
		return To(IdleToRun)
	}

	behaviors = map[StateID]Behavior{
		Idle: {
			HandleInput: groundedInput(startMoving, nil),
			Update:      noUpdate,
		},
		IdleToWalk: {
			HandleInput: groundedInput(nil, stopToIdle),
			Update:      finishTo(Walk),
			Physics:     StatePhysics{GroundSpeed: 200},
		},
		IdleToRun: {
			HandleInput: groundedInput(nil, stopToIdle),
			Update:      finishTo(Run),
			Physics:     StatePhysics{GroundSpeed: 400},
		},
		Walk: {
			HandleInput: groundedInput(nil, stopToIdle),
			Update:      noUpdate,
			Physics:     StatePhysics{GroundSpeed: 200},
		},
		Run: {
			HandleInput: groundedInput(nil, stopToIdle),
			Update:      noUpdate,
			Physics:     StatePhysics{GroundSpeed: 600},
		},
		Jump: {
			HandleInput: airborneInput,
			Update: func(u UpdateSnapshot) Transition {
				// Past the peak, start descending.
				if u.VelocityY <= 0 {
					return To(Fall)
				}
				return Stay
			},
			Physics: StatePhysics{AirControl: true, ApplyGravity: true},
		},
		Fall: {
			HandleInput: airborneInput,
			Update: func(u UpdateSnapshot) Transition {
				if u.AtGround {
					return To(Land)
				}
				return Stay
			},
			Physics: StatePhysics{AirControl: true, ApplyGravity: true},
		},
		Land: {
			HandleInput: lockedInput,
			Update:      finishTo(Idle),
			Physics:     StatePhysics{LocksMovement: true},
		},
		Punch: {
			HandleInput: comboInput(func(in InputSnapshot) bool { return in.Punch }, PunchCombo),
			Update:      finishTo(Idle),
			Physics:     StatePhysics{LocksMovement: true},
			Damage:      2,
		},
		PunchCombo: {
			HandleInput: comboInput(func(in InputSnapshot) bool { return in.Kick }, PunchKickCombo),
			Update:      finishTo(Idle),
			Physics:     StatePhysics{LocksMovement: true},
			Damage:      2,
		},
		Kick: {
			HandleInput: comboInput(func(in InputSnapshot) bool { return in.Kick }, KickCombo),
			Update:      finishTo(Idle),
			Physics:     StatePhysics{LocksMovement: true},
			Damage:      3,
		},
		KickCombo: {
			HandleInput: lockedInput,
			Update:      finishTo(Idle),
			Physics:     StatePhysics{LocksMovement: true},
			Damage:      3,
		},
		PunchKickCombo: {
			HandleInput: lockedInput,
			Update:      finishTo(Idle),
			Physics:     StatePhysics{LocksMovement: true},
			Damage:      3,
		},
		JumpPunch: {
			HandleInput: lockedInput,
			Update:      aerialAttackUpdate,
			Physics:     StatePhysics{AirControl: true},
			Damage:      6,
		},
		JumpKick: {
			HandleInput: lockedInput,
			Update:      aerialAttackUpdate,
			Physics:     StatePhysics{AirControl: true},
			Damage:      6,
		},
		Defeat: {
			HandleInput: lockedInput,
			Update:      noUpdate,
			Physics:     StatePhysics{LocksMovement: true},
		},
	}
}

// BehaviorFor returns the behavior table entry for a state. Unknown
// states are a programming error.
func BehaviorFor(s StateID) Behavior {
	b, ok := behaviors[s]
	if !ok {
		panic(fmt.Sprintf("config: no behavior for state %v", s))
	}
	return b
}
