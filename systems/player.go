package systems

import (
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs the player state machine for one tick: the input
// phase, the transition-edge initializers, then the update phase.
// Transitions made by the update phase keep StateData.Changed true
// until the next tick's initializer pass, mirroring how the combat
// stage's forced Defeat transition is picked up.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	dt := DeltaTime(ecs)
	state := components.State.Get(playerEntry)
	combo := components.Combo.Get(playerEntry)
	jump := components.JumpPhysics.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	gameOver := false
	if sessionEntry, ok := components.Session.First(ecs.World); ok {
		gameOver = components.Session.Get(sessionEntry).GameOver
	}

	// Input phase. Frozen once the round is over, but the combo
	// window keeps ticking so it expires instead of sticking open.
	combo.Window.Tick(dt)
	if !gameOver {
		handlePlayerInput(playerEntry, state, combo, jump, anim)
	}

	// Transition-edge initializers. Runs for transitions made this
	// tick by the input phase and for any made since the last pass
	// (update phase, forced Defeat).
	applyTransitionEdge(playerEntry, state, jump)

	// Update phase: animation/physics driven auto-transitions.
	updatePlayerState(playerEntry, state, combo, jump, anim)
}

func handlePlayerInput(playerEntry *donburi.Entry, state *components.StateData, combo *components.ComboData, jump *components.JumpPhysicsData, anim *components.AnimationData) {
	input := components.Input.Get(playerEntry)

	currentFrame := 0
	totalFrames := 0
	if anim.CurrentAnimation != nil {
		currentFrame = anim.CurrentAnimation.Frame()
		totalFrames = anim.CurrentAnimation.TotalFrames()
	}

	in := cfg.InputSnapshot{
		Left:                input.GetAction(cfg.ActionMoveLeft).Pressed,
		Right:               input.GetAction(cfg.ActionMoveRight).Pressed,
		Shift:               input.GetAction(cfg.ActionWalkModifier).Pressed,
		Jump:                input.GetAction(cfg.ActionJump).JustPressed,
		Punch:               input.GetAction(cfg.ActionPunch).JustPressed,
		Kick:                input.GetAction(cfg.ActionKick).JustPressed,
		HasUsedAerialAttack: jump.HasUsedAerialAttack,
		CurrentFrame:        currentFrame,
		TotalFrames:         totalFrames,
	}

	behavior := cfg.BehaviorFor(state.CurrentState)

	// Locked states still accept combo inputs, but only while the
	// combo window is open.
	if behavior.LocksInput() {
		if !in.Punch && !in.Kick {
			return
		}
		if combo.Window.Finished() {
			return
		}
	}

	switch tr := behavior.HandleInput(in); tr.Kind {
	case cfg.TransitionTo:
		transitionPlayer(state, combo, tr.To)
	case cfg.TransitionQueue:
		if !combo.Window.Finished() {
			combo.QueuedCombo = tr.To
		}
	}
}

// transitionPlayer replaces the current state and, for attacks, opens
// the combo window.
func transitionPlayer(state *components.StateData, combo *components.ComboData, next cfg.StateID) {
	state.CurrentState = next
	if next.IsAttack() {
		combo.LastAttack = next
		combo.Window.Reset()
	}
}

// applyTransitionEdge runs the jump-physics and hit-tracking reactions
// that fire once per state change.
func applyTransitionEdge(playerEntry *donburi.Entry, state *components.StateData, jump *components.JumpPhysicsData) {
	if !state.Changed() {
		return
	}

	obj := components.Object.Get(playerEntry)

	switch state.CurrentState {
	case cfg.Jump:
		// New jump: capture the launch point and allow one aerial
		// attack.
		jump.GroundY = obj.CenterY()
		jump.VelocityY = jump.JumpForce
		jump.HasUsedAerialAttack = false
	case cfg.Fall:
		// An aerial attack should start descending immediately
		// rather than keep its leftover upward velocity.
		jump.VelocityY = 0
	case cfg.JumpPunch, cfg.JumpKick:
		jump.HasUsedAerialAttack = true
	}

	if state.CurrentState.IsAttack() {
		components.HitTracking.Get(playerEntry).Clear()
	}

	state.PreviousState = state.CurrentState
}

func updatePlayerState(playerEntry *donburi.Entry, state *components.StateData, combo *components.ComboData, jump *components.JumpPhysicsData, anim *components.AnimationData) {
	obj := components.Object.Get(playerEntry)

	animationFinished := anim.CurrentAnimation != nil && anim.CurrentAnimation.JustFinished

	u := cfg.UpdateSnapshot{
		AnimationFinished: animationFinished,
		AtGround:          obj.CenterY() <= jump.GroundY+1.0,
		VelocityY:         jump.VelocityY,
	}

	behavior := cfg.BehaviorFor(state.CurrentState)
	tr := behavior.Update(u)
	if tr.Kind != cfg.TransitionTo {
		return
	}

	// A queued combo overrides the state's own animation-finished
	// transition.
	if animationFinished && combo.QueuedCombo != cfg.StateNone {
		next := combo.QueuedCombo
		combo.QueuedCombo = cfg.StateNone
		transitionPlayer(state, combo, next)
		return
	}

	state.CurrentState = tr.To
}
