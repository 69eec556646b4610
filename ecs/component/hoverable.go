package component

// Hoverable gives an entity a pick box for cursor queries, centered on its
// sprite.
type Hoverable struct {
	Width  float64
	Height float64
}

var HoverableComponent = NewComponent[Hoverable]()
