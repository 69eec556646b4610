package component

// RenderLayer orders drawing; lower indexes draw first and flyers sit under
// walkers.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
