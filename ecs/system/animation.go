package system

import (
	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if !anim.Playing {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		// Advance frame every N ticks based on FPS and 60 TPS
		ticksPerFrame := 1
		if def.FPS > 0 {
			ticksPerFrame = max(int(60.0/def.FPS), 1)
		}

		anim.FrameTimer++
		if anim.FrameTimer >= ticksPerFrame {
			anim.FrameTimer = 0
			anim.Frame++
			if anim.Frame >= def.FrameCount {
				if def.Loop {
					anim.Frame = 0
				} else {
					anim.Frame = def.FrameCount - 1
					anim.Playing = false
				}
			}
		}

		if anim.Sheet != nil {
			sprite.Image = anim.Sheet
		}
		sprite.UseSource = true
		sprite.Source = def.FrameRect(anim.Frame)
	})
}
