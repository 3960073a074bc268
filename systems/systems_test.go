package systems

import (
	"github.com/calebrood/ghostpunch/assets"
	"github.com/calebrood/ghostpunch/components"
	cfg "github.com/calebrood/ghostpunch/config"
	"github.com/calebrood/ghostpunch/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDt = 1.0 / TickRate

// newTestECS builds a world with the space, arena, session and player
// the systems expect. No ghosts; tests spawn their own.
func newTestECS() (*ecs.ECS, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	arena := assets.DefaultArena()
	factory.CreateSpace(e, cfg.WorldWidth, cfg.WorldHeight, 16, 16)
	factory.CreateArena(e, arena)
	factory.CreateSession(e, 0)
	player := factory.CreatePlayer(e,
		cfg.WorldCenterX+cfg.Player.SpawnX,
		arena.GroundY)
	UpdateTime(e)
	return e, player
}

// setInput replaces the player's polled input for the coming tick.
// Calling it again without arguments releases everything, which is
// what makes just-pressed edges work across ticks.
func setInput(player *donburi.Entry, actions ...cfg.ActionID) {
	input := components.Input.Get(player)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

// tick runs one simulation step in scene order, minus the hardware
// input poll (tests feed input via setInput) and minus enemy AI so
// scenario tests aren't disturbed by background spawns.
func tick(e *ecs.ECS, player *donburi.Entry, actions ...cfg.ActionID) {
	setInput(player, actions...)
	UpdateTime(e)
	UpdateSession(e)
	UpdatePlayer(e)
	UpdateAnimations(e)
	UpdatePlayerPhysics(e)
	UpdateHitboxes(e)
	UpdateCombat(e)
	UpdateEffects(e)
	UpdateDefeats(e)
}

func playerState(player *donburi.Entry) cfg.StateID {
	return components.State.Get(player).CurrentState
}

func sessionOf(e *ecs.ECS) *components.SessionData {
	entry, _ := components.Session.First(e.World)
	return components.Session.Get(entry)
}

func damageQueueOf(e *ecs.ECS) *components.DamageQueueData {
	entry, _ := components.Session.First(e.World)
	return components.DamageQueue.Get(entry)
}
