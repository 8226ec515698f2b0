package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// CenterX returns the horizontal center of the collider.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// Top returns the collider's upper edge; the flame anchor tracks this as
// the stick shrinks.
func (o *ObjectData) Top() float64 {
	return o.Y
}
