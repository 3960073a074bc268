package assets

import (
	"log"
	"math"
	"os"

	"github.com/calebrood/ghostpunch/config"
	"github.com/lafriks/go-tiled"
)

// Arena describes the playable area loaded from a Tiled map: the floor
// line, the horizontal extents and the edge offset ghosts spawn at.
type Arena struct {
	GroundY     float64
	MinX        float64
	MaxX        float64
	EnemySpawnX float64
}

// DefaultArena is used when no map file is shipped with the build.
func DefaultArena() *Arena {
	return &Arena{
		GroundY:     config.WorldCenterY + config.Player.SpawnY,
		MinX:        config.WorldCenterX - float64(config.C.Width)/2,
		MaxX:        config.WorldCenterX + float64(config.C.Width)/2,
		EnemySpawnX: config.Enemy.SpawnX,
	}
}

// LoadArena reads the arena layout from a TMX file. Missing or broken
// maps fall back to the default flat arena so the game still runs.
func LoadArena(path string) *Arena {
	if _, err := os.Stat(path); err != nil {
		return DefaultArena()
	}

	m, err := tiled.LoadFile(path)
	if err != nil {
		log.Printf("failed to parse %s: %v", path, err)
		return DefaultArena()
	}

	arena := DefaultArena()

	// Map coordinates are Y-down with the origin top-left; world space
	// is Y-up around the arena center, so positions are taken relative
	// to the map center.
	halfW := float64(m.Width*m.TileWidth) / 2
	halfH := float64(m.Height*m.TileHeight) / 2
	arena.MinX = config.WorldCenterX - halfW
	arena.MaxX = config.WorldCenterX + halfW

	for _, group := range m.ObjectGroups {
		for _, obj := range group.Objects {
			switch obj.Name {
			case "ground":
				arena.GroundY = config.WorldCenterY + (halfH - obj.Y)
			case "spawn":
				config.Player.SpawnX = obj.X - halfW
				config.Player.SpawnY = halfH - obj.Y
			case "enemy_spawn":
				arena.EnemySpawnX = math.Abs(obj.X - halfW)
			}
		}
	}
	return arena
}
