package system

import (
	"math"
	"testing"
	"time"

	"github.com/milk9111/parade/crowd"
	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
)

func TestWalkSystem(t *testing.T) {
	cases := []struct {
		name       string
		facesLeft  bool
		ticks      int
		wantX      float64
		wantMirror bool
	}{
		{"right_facing_outbound", false, 5, 50, false},
		{"right_facing_return", false, 13, 70, true},
		{"left_facing_outbound", true, 5, 50, true},
		{"left_facing_return", true, 13, 70, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			s := crowd.Sprite{AssetID: "x", FacesLeft: c.facesLeft, StartX: 0, EndX: 100, DurationMs: 1000}
			if err := ecs.Add(w, e, component.WalkerComponent.Kind(), &component.Walker{Sprite: s}); err != nil {
				t.Fatal(err)
			}
			if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
				t.Fatal(err)
			}
			if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}); err != nil {
				t.Fatal(err)
			}

			ws := NewWalkSystem()
			ws.SetStep(100 * time.Millisecond)
			for i := 0; i < c.ticks; i++ {
				ws.Update(w)
			}

			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			if math.Abs(tr.X-c.wantX) > 1e-9 {
				t.Fatalf("x = %v, want %v", tr.X, c.wantX)
			}
			wk, _ := ecs.Get(w, e, component.WalkerComponent.Kind())
			if wk.Mirror != c.wantMirror {
				t.Fatalf("mirror = %v, want %v", wk.Mirror, c.wantMirror)
			}
			sp, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
			if sp.FlipX != c.wantMirror {
				t.Fatalf("sprite flip = %v, want %v", sp.FlipX, c.wantMirror)
			}
			if wk.Sprite.LastOffsetX == nil || *wk.Sprite.LastOffsetX != tr.X {
				t.Fatalf("last offset not tracked: %v", wk.Sprite.LastOffsetX)
			}
		})
	}
}

func TestWalkSystemDefaultStep(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	s := crowd.Sprite{StartX: 0, EndX: 60, DurationMs: 1000}
	_ = ecs.Add(w, e, component.WalkerComponent.Kind(), &component.Walker{Sprite: s})
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{})

	ws := NewWalkSystem()
	for i := 0; i < 30; i++ {
		ws.Update(w)
	}
	wk, _ := ecs.Get(w, e, component.WalkerComponent.Kind())
	if wk.Elapsed != 30*TickDuration {
		t.Fatalf("elapsed = %v, want %v", wk.Elapsed, 30*TickDuration)
	}
	if math.Abs(wk.Offset-30) > 1e-3 {
		t.Fatalf("offset = %v, want 30", wk.Offset)
	}
}
