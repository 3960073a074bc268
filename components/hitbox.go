package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxData is the attacker's hit volume, repositioned every tick in
// front of its owner and only active during the middle third of the
// swing. Object mirrors the volume into the resolv space for the
// overlap query.
type HitboxData struct {
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
	Active  bool
	Damage  int
	Object  *resolv.Object
}

var Hitbox = donburi.NewComponentType[HitboxData]()

// HitTrackingData records which targets the current swing already
// connected with, so one swing lands at most once per target.
type HitTrackingData struct {
	HitEntities map[donburi.Entity]bool
}

func (h *HitTrackingData) Clear() {
	if h.HitEntities == nil {
		h.HitEntities = make(map[donburi.Entity]bool)
		return
	}
	for e := range h.HitEntities {
		delete(h.HitEntities, e)
	}
}

var HitTracking = donburi.NewComponentType[HitTrackingData]()
