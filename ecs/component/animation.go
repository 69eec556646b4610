package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type AnimationDef struct {
	Name       string
	Row        int
	ColStart   int // start column (frame 0)
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

// FrameRect returns the sheet rectangle holding the given frame.
func (d AnimationDef) FrameRect(frame int) image.Rectangle {
	x := d.ColStart*d.FrameW + frame*d.FrameW
	y := d.Row * d.FrameH
	return image.Rect(x, y, x+d.FrameW, y+d.FrameH)
}

type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()
