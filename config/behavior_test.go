package config

import "testing"

func TestGroundedStatesStartAttacksAndJumps(t *testing.T) {
	grounded := []StateID{Idle, IdleToWalk, IdleToRun, Walk, Run}

	for _, s := range grounded {
		b := BehaviorFor(s)

		if tr := b.HandleInput(InputSnapshot{Punch: true}); tr != To(Punch) {
			t.Errorf("%v: punch -> %+v, want transition to Punch", s, tr)
		}
		if tr := b.HandleInput(InputSnapshot{Kick: true}); tr != To(Kick) {
			t.Errorf("%v: kick -> %+v, want transition to Kick", s, tr)
		}
		if tr := b.HandleInput(InputSnapshot{Jump: true}); tr != To(Jump) {
			t.Errorf("%v: jump -> %+v, want transition to Jump", s, tr)
		}
	}
}

func TestIdleMovementBranchesOnShift(t *testing.T) {
	b := BehaviorFor(Idle)

	if tr := b.HandleInput(InputSnapshot{Right: true}); tr != To(IdleToRun) {
		t.Errorf("move -> %+v, want IdleToRun", tr)
	}
	if tr := b.HandleInput(InputSnapshot{Right: true, Shift: true}); tr != To(IdleToWalk) {
		t.Errorf("shift+move -> %+v, want IdleToWalk", tr)
	}
	if tr := b.HandleInput(InputSnapshot{}); tr != Stay {
		t.Errorf("no input -> %+v, want Stay", tr)
	}
}

func TestMovingStatesReturnToIdleWhenReleased(t *testing.T) {
	for _, s := range []StateID{IdleToWalk, IdleToRun, Walk, Run} {
		b := BehaviorFor(s)
		if tr := b.HandleInput(InputSnapshot{}); tr != To(Idle) {
			t.Errorf("%v: released -> %+v, want Idle", s, tr)
		}
		if tr := b.HandleInput(InputSnapshot{Left: true}); tr != Stay {
			t.Errorf("%v: held -> %+v, want Stay", s, tr)
		}
	}
}

func TestTransitionStatesFinishIntoMovement(t *testing.T) {
	if tr := BehaviorFor(IdleToWalk).Update(UpdateSnapshot{AnimationFinished: true}); tr != To(Walk) {
		t.Errorf("IdleToWalk finish -> %+v, want Walk", tr)
	}
	if tr := BehaviorFor(IdleToRun).Update(UpdateSnapshot{AnimationFinished: true}); tr != To(Run) {
		t.Errorf("IdleToRun finish -> %+v, want Run", tr)
	}
	if tr := BehaviorFor(IdleToRun).Update(UpdateSnapshot{}); tr != Stay {
		t.Errorf("IdleToRun mid-strip -> %+v, want Stay", tr)
	}
}

func TestJumpFallsPastThePeak(t *testing.T) {
	b := BehaviorFor(Jump)

	if tr := b.Update(UpdateSnapshot{VelocityY: 500}); tr != Stay {
		t.Errorf("rising -> %+v, want Stay", tr)
	}
	if tr := b.Update(UpdateSnapshot{VelocityY: 0}); tr != To(Fall) {
		t.Errorf("at peak -> %+v, want Fall", tr)
	}
	if tr := b.Update(UpdateSnapshot{VelocityY: -10}); tr != To(Fall) {
		t.Errorf("descending -> %+v, want Fall", tr)
	}
}

func TestFallLandsAtGround(t *testing.T) {
	b := BehaviorFor(Fall)

	if tr := b.Update(UpdateSnapshot{AtGround: false}); tr != Stay {
		t.Errorf("airborne -> %+v, want Stay", tr)
	}
	if tr := b.Update(UpdateSnapshot{AtGround: true}); tr != To(Land) {
		t.Errorf("at ground -> %+v, want Land", tr)
	}
}

func TestAerialAttackAllowedOncePerJump(t *testing.T) {
	for _, s := range []StateID{Jump, Fall} {
		b := BehaviorFor(s)

		if tr := b.HandleInput(InputSnapshot{Punch: true}); tr != To(JumpPunch) {
			t.Errorf("%v: punch -> %+v, want JumpPunch", s, tr)
		}
		if tr := b.HandleInput(InputSnapshot{Kick: true}); tr != To(JumpKick) {
			t.Errorf("%v: kick -> %+v, want JumpKick", s, tr)
		}
		if tr := b.HandleInput(InputSnapshot{Punch: true, HasUsedAerialAttack: true}); tr != Stay {
			t.Errorf("%v: second aerial punch -> %+v, want Stay", s, tr)
		}
		if tr := b.HandleInput(InputSnapshot{Kick: true, HasUsedAerialAttack: true}); tr != Stay {
			t.Errorf("%v: second aerial kick -> %+v, want Stay", s, tr)
		}
	}
}

func TestAerialAttackEndsIntoLandOrFall(t *testing.T) {
	for _, s := range []StateID{JumpPunch, JumpKick} {
		b := BehaviorFor(s)

		if tr := b.Update(UpdateSnapshot{AnimationFinished: true, AtGround: true}); tr != To(Land) {
			t.Errorf("%v: finished at ground -> %+v, want Land", s, tr)
		}
		if tr := b.Update(UpdateSnapshot{AnimationFinished: true, AtGround: false}); tr != To(Fall) {
			t.Errorf("%v: finished airborne -> %+v, want Fall", s, tr)
		}
		if tr := b.Update(UpdateSnapshot{}); tr != Stay {
			t.Errorf("%v: mid-swing -> %+v, want Stay", s, tr)
		}
	}
}

func TestComboQueueingRequiresSecondHalfOfSwing(t *testing.T) {
	cases := []struct {
		state StateID
		press InputSnapshot
		next  StateID
	}{
		{Punch, InputSnapshot{Punch: true}, PunchCombo},
		{PunchCombo, InputSnapshot{Kick: true}, PunchKickCombo},
		{Kick, InputSnapshot{Kick: true}, KickCombo},
	}

	for _, c := range cases {
		b := BehaviorFor(c.state)

		early := c.press
		early.CurrentFrame = 2
		early.TotalFrames = 13
		if tr := b.HandleInput(early); tr != Stay {
			t.Errorf("%v: early press -> %+v, want Stay", c.state, tr)
		}

		late := c.press
		late.CurrentFrame = 7
		late.TotalFrames = 13
		if tr := b.HandleInput(late); tr != QueueCombo(c.next) {
			t.Errorf("%v: late press -> %+v, want queue %v", c.state, tr, c.next)
		}
	}
}

func TestWrongButtonDoesNotQueue(t *testing.T) {
	in := InputSnapshot{Kick: true, CurrentFrame: 10, TotalFrames: 13}
	if tr := BehaviorFor(Punch).HandleInput(in); tr != Stay {
		t.Errorf("Punch + kick press -> %+v, want Stay", tr)
	}

	in = InputSnapshot{Punch: true, CurrentFrame: 10, TotalFrames: 13}
	if tr := BehaviorFor(Kick).HandleInput(in); tr != Stay {
		t.Errorf("Kick + punch press -> %+v, want Stay", tr)
	}
}

func TestTerminalComboStatesIgnoreInput(t *testing.T) {
	in := InputSnapshot{Punch: true, Kick: true, Jump: true, CurrentFrame: 10, TotalFrames: 13}
	for _, s := range []StateID{KickCombo, PunchKickCombo, Land, Defeat} {
		if tr := BehaviorFor(s).HandleInput(in); tr != Stay {
			t.Errorf("%v should ignore input, got %+v", s, tr)
		}
	}
}

func TestDefeatIsAbsorbing(t *testing.T) {
	b := BehaviorFor(Defeat)
	if tr := b.Update(UpdateSnapshot{AnimationFinished: true, AtGround: true}); tr != Stay {
		t.Errorf("Defeat update -> %+v, want Stay", tr)
	}
}

func TestDamageTable(t *testing.T) {
	want := map[StateID]int{
		Punch:          2,
		PunchCombo:     2,
		Kick:           3,
		KickCombo:      3,
		PunchKickCombo: 3,
		JumpPunch:      6,
		JumpKick:       6,
	}

	for s, damage := range want {
		b := BehaviorFor(s)
		if b.Damage != damage {
			t.Errorf("%v damage = %d, want %d", s, b.Damage, damage)
		}
		if !b.IsAttack() {
			t.Errorf("%v should be an attack", s)
		}
	}

	for _, s := range []StateID{Idle, Walk, Run, Jump, Fall, Land, Defeat} {
		if BehaviorFor(s).IsAttack() {
			t.Errorf("%v should not be an attack", s)
		}
	}
}

func TestGroundSpeeds(t *testing.T) {
	speeds := map[StateID]float64{
		Idle:       0,
		IdleToWalk: 200,
		Walk:       200,
		IdleToRun:  400,
		Run:        600,
	}
	for s, speed := range speeds {
		if got := BehaviorFor(s).Physics.GroundSpeed; got != speed {
			t.Errorf("%v ground speed = %v, want %v", s, got, speed)
		}
	}
}

func TestLockTable(t *testing.T) {
	locked := []StateID{Land, Punch, PunchCombo, Kick, KickCombo, PunchKickCombo, Defeat}
	for _, s := range locked {
		if !BehaviorFor(s).LocksInput() {
			t.Errorf("%v should lock input", s)
		}
	}

	unlocked := []StateID{Idle, Walk, Run, Jump, Fall, JumpPunch, JumpKick}
	for _, s := range unlocked {
		if BehaviorFor(s).LocksInput() {
			t.Errorf("%v should not lock input", s)
		}
	}
}

func TestEveryStateHasABehavior(t *testing.T) {
	for s := Idle; s < StateCount; s++ {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("BehaviorFor panicked: %v", r)
			}
		}()
		b := BehaviorFor(s)
		if b.HandleInput == nil || b.Update == nil {
			t.Errorf("%v has nil handlers", s)
		}
	}
}

func TestBehaviorForUnknownStatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for StateNone")
		}
	}()
	BehaviorFor(StateNone)
}
