package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the actor's resolv hurtbox object. X/Y is the min
// corner in world coordinates (Y grows upward); actor positions
// elsewhere refer to the center.
type ObjectData struct {
	*resolv.Object
}

// CenterX returns the horizontal center of the object.
func (o ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// CenterY returns the vertical center of the object.
func (o ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

// SetCenter moves the object so its center lands on (x, y).
func (o ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
