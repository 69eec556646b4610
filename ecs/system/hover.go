package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
)

// CursorFunc reports the cursor position in screen space.
type CursorFunc func() (x, y int)

type hoverBox struct {
	body  *cp.Body
	shape *cp.Shape
}

// HoverSystem keeps a kinematic box per hoverable entity in a chipmunk
// space and tags the one under the cursor.
type HoverSystem struct {
	space   *cp.Space
	boxes   map[ecs.Entity]hoverBox
	cursor  CursorFunc
	hovered ecs.Entity
}

func NewHoverSystem() *HoverSystem {
	return &HoverSystem{
		space:  cp.NewSpace(),
		boxes:  make(map[ecs.Entity]hoverBox),
		cursor: ebiten.CursorPosition,
	}
}

// SetCursor replaces the cursor source.
func (h *HoverSystem) SetCursor(fn CursorFunc) {
	if h == nil || fn == nil {
		return
	}
	h.cursor = fn
}

// Hovered returns the entity under the cursor, if any.
func (h *HoverSystem) Hovered() (ecs.Entity, bool) {
	if h == nil || !h.hovered.Valid() {
		return 0, false
	}
	return h.hovered, true
}

func (h *HoverSystem) Update(w *ecs.World) {
	if h == nil || w == nil {
		return
	}

	seen := make(map[ecs.Entity]struct{}, len(h.boxes))
	ecs.ForEach2(w, component.HoverableComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, hv *component.Hoverable, t *component.Transform) {
		seen[e] = struct{}{}
		box, ok := h.boxes[e]
		if !ok {
			body := h.space.AddBody(cp.NewKinematicBody())
			shape := h.space.AddShape(cp.NewBox(body, hv.Width, hv.Height, 0))
			shape.UserData = e
			box = hoverBox{body: body, shape: shape}
			h.boxes[e] = box
		}
		box.body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		h.space.ReindexShapesForBody(box.body)
	})

	for e, box := range h.boxes {
		if _, ok := seen[e]; ok {
			continue
		}
		h.space.RemoveShape(box.shape)
		h.space.RemoveBody(box.body)
		delete(h.boxes, e)
	}

	var next ecs.Entity
	cx, cy := h.cursor()
	if info := h.space.PointQueryNearest(cp.Vector{X: float64(cx), Y: float64(cy)}, 0, cp.SHAPE_FILTER_ALL); info != nil && info.Shape != nil {
		if e, ok := info.Shape.UserData.(ecs.Entity); ok {
			next = e
		}
	}

	if next == h.hovered && (next == 0 || ecs.Has(w, next, component.HoveredTagComponent.Kind())) {
		return
	}

	if h.hovered.Valid() {
		ecs.Remove(w, h.hovered, component.HoveredTagComponent.Kind())
	}
	if next.Valid() {
		_ = ecs.Add(w, next, component.HoveredTagComponent.Kind(), &component.HoveredTag{})
	}
	changed := next != h.hovered
	h.hovered = next
	if changed {
		w.Events().Push(ecs.Event{Type: ecs.EventHoverChanged, Data: next})
	}
}
