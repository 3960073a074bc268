package systems

import (
	"github.com/calebrood/ghostpunch/components"
	"github.com/yohamta/donburi/ecs"
)

// TickRate is the fixed simulation rate.
const TickRate = 60.0

// UpdateTime publishes the tick's delta time. Ebiten drives Update at
// a fixed TPS so dt is constant.
func UpdateTime(ecs *ecs.ECS) {
	if entry, ok := components.Time.First(ecs.World); ok {
		components.Time.Get(entry).DeltaTime = 1.0 / TickRate
	}
}

// DeltaTime reads the current tick's delta time.
func DeltaTime(ecs *ecs.ECS) float64 {
	entry, ok := components.Time.First(ecs.World)
	if !ok {
		return 1.0 / TickRate
	}
	return components.Time.Get(entry).DeltaTime
}
