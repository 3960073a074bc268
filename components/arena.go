package components

import "github.com/yohamta/donburi"

// ArenaData is the playable area: the floor line, horizontal extents
// and the edge offset ghosts spawn at, all in world coordinates.
type ArenaData struct {
	GroundY     float64
	MinX        float64
	MaxX        float64
	EnemySpawnX float64
}

var Arena = donburi.NewComponentType[ArenaData]()
