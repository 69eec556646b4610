package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is the drawable image of an entity. FlipX draws the image
// mirrored around its vertical axis.
type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool
	OriginX   float64
	OriginY   float64
	FlipX     bool
}

var SpriteComponent = NewComponent[Sprite]()
