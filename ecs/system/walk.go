package system

import (
	"time"

	"github.com/milk9111/parade/crowd"
	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
)

// TickDuration is the simulated time of one Update at 60 TPS.
const TickDuration = time.Second / 60

// WalkSystem moves every walker along its path and keeps its sprite facing
// the way it travels.
type WalkSystem struct {
	step time.Duration
}

func NewWalkSystem() *WalkSystem {
	return &WalkSystem{step: TickDuration}
}

// SetStep overrides the time advanced per update.
func (s *WalkSystem) SetStep(step time.Duration) {
	if s == nil || step <= 0 {
		return
	}
	s.step = step
}

func (s *WalkSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.WalkerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, walker *component.Walker, t *component.Transform) {
		walker.Elapsed += s.step
		offset := crowd.Offset(walker.Sprite, walker.Elapsed, walker.Ease)
		walker.Mirror = walker.Sprite.Observe(offset)
		walker.Offset = offset
		t.X = offset

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.FlipX = walker.Mirror
		}
	})
}
