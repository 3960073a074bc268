package components

import "github.com/yohamta/donburi"

// DamageEvent is one pending hit, queued by the detection stages and
// drained by damage resolution in the same tick.
type DamageEvent struct {
	Attacker donburi.Entity
	Target   donburi.Entity
	Amount   int
}

// DamageQueueData collects the tick's damage events in detection
// order. Lives on the session entity.
type DamageQueueData struct {
	Events []DamageEvent
}

func (q *DamageQueueData) Push(ev DamageEvent) {
	q.Events = append(q.Events, ev)
}

// Drain returns the pending events and empties the queue.
func (q *DamageQueueData) Drain() []DamageEvent {
	evs := q.Events
	q.Events = nil
	return evs
}

var DamageQueue = donburi.NewComponentType[DamageQueueData]()

// DefeatQueueData collects defeats raised by damage resolution, for
// the cleanup stage later in the same tick.
type DefeatQueueData struct {
	Enemies        []donburi.Entity
	PlayerDefeated bool
}

var DefeatQueue = donburi.NewComponentType[DefeatQueueData]()
