package system

import (
	"testing"

	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
)

func TestAnimationSystem(t *testing.T) {
	cases := []struct {
		name        string
		fps         float64
		loop        bool
		ticks       int
		wantFrame   int
		wantPlaying bool
	}{
		{"advances", 30, true, 2, 1, true},
		{"waits_between_frames", 10, true, 5, 0, true},
		{"loops", 60, true, 4, 0, true},
		{"stops_on_last", 60, false, 6, 3, false},
		{"zero_fps_every_tick", 0, true, 3, 3, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			def := component.AnimationDef{Name: "walk", FrameCount: 4, FrameW: 32, FrameH: 48, FPS: c.fps, Loop: c.loop}
			anim := &component.Animation{Defs: map[string]component.AnimationDef{"walk": def}, Current: "walk", Playing: true}
			if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
				t.Fatal(err)
			}
			if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}); err != nil {
				t.Fatal(err)
			}

			sys := NewAnimationSystem()
			for i := 0; i < c.ticks; i++ {
				sys.Update(w)
			}

			if anim.Frame != c.wantFrame {
				t.Fatalf("frame = %d, want %d", anim.Frame, c.wantFrame)
			}
			if anim.Playing != c.wantPlaying {
				t.Fatalf("playing = %v, want %v", anim.Playing, c.wantPlaying)
			}
			sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
			if !sprite.UseSource || sprite.Source != def.FrameRect(c.wantFrame) {
				t.Fatalf("source = %v, want %v", sprite.Source, def.FrameRect(c.wantFrame))
			}
		})
	}
}
