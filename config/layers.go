package config

import "github.com/yohamta/donburi/ecs"

// Render/update layers.
const (
	Default ecs.LayerID = iota
)
