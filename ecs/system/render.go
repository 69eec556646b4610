package system

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
	"golang.org/x/image/colornames"
)

var hoverOutline = colornames.Gold

type RenderSystem struct {
	debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{debug: debug}
}

// drawOrder sorts by layer, then by slot so equal layers stay stable.
func drawOrder(w *ecs.World, entities []ecs.Entity) {
	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(entities[i]), layerOf(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := ecs.Query(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	drawOrder(w, entities)

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		// Mirroring happens around the origin so the sprite stays in its lane.
		if s.FlipX {
			sx = -sx
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		screen.DrawImage(img, op)
	}

	r.drawHovered(w, screen)
}

func (r *RenderSystem) drawHovered(w *ecs.World, screen *ebiten.Image) {
	e, ok := ecs.First(w, component.HoveredTagComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	hv, ok := ecs.Get(w, e, component.HoverableComponent.Kind())
	if !ok {
		return
	}

	x := float32(t.X - hv.Width/2)
	y := float32(t.Y - hv.Height/2)
	vector.StrokeRect(screen, x, y, float32(hv.Width), float32(hv.Height), 2, hoverOutline, true)

	if !r.debug {
		return
	}
	walker, ok := ecs.Get(w, e, component.WalkerComponent.Kind())
	if !ok {
		return
	}
	label := fmt.Sprintf("%s %s\n%.0f -> %.0f %dms", walker.Group, walker.Sprite.AssetID, walker.Sprite.StartX, walker.Sprite.EndX, walker.Sprite.DurationMs)
	ebitenutil.DebugPrintAt(screen, label, int(x), int(y)-32)
}
