package factory

import (
	"github.com/calebrood/ghostpunch/archetypes"
	"github.com/calebrood/ghostpunch/assets"
	"github.com/calebrood/ghostpunch/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena publishes the loaded arena layout to the world so the
// spawner, restart flow and renderer all share the same floor.
func CreateArena(ecs *ecs.ECS, arena *assets.Arena) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{
		GroundY:     arena.GroundY,
		MinX:        arena.MinX,
		MaxX:        arena.MaxX,
		EnemySpawnX: arena.EnemySpawnX,
	})
	return entry
}
