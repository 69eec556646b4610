package system

import (
	"errors"
	"testing"

	"github.com/milk9111/parade/crowd"
	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
	"github.com/milk9111/parade/ecs/entity"
	"github.com/milk9111/parade/prefabs"
)

func testSpec() *prefabs.ParadeSpec {
	return &prefabs.ParadeSpec{
		Name:   "test",
		Width:  400,
		Height: 300,
		Groups: []prefabs.GroupSpec{
			{
				Name:  "walkers",
				Count: 3,
				LaneY: 200,
				Layer: 2,
				Pool:  []prefabs.PoolEntry{{Asset: "a"}, {Asset: "b", FacesLeft: true}},
			},
			{
				Name:       "flyers",
				Count:      2,
				LaneY:      50,
				LaneJitter: 10,
				Layer:      1,
				Pool:       []prefabs.PoolEntry{{Asset: "c"}},
			},
		},
	}
}

// fakeBuild skips prefab loading and attaches only what the systems read.
func fakeBuild(w *ecs.World, s crowd.Sprite, opts entity.WalkerOpts) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: s.StartX, Y: opts.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	return e, ecs.Add(w, e, component.WalkerComponent.Kind(), &component.Walker{Group: opts.Group, Sprite: s, Ease: opts.Ease, Offset: s.StartX})
}

func walkersByGroup(w *ecs.World) map[string][]*component.Walker {
	out := map[string][]*component.Walker{}
	ecs.ForEach(w, component.WalkerComponent.Kind(), func(_ ecs.Entity, wk *component.Walker) {
		out[wk.Group] = append(out[wk.Group], wk)
	})
	return out
}

func newTestSpawn(seed uint64) *SpawnSystem {
	s := NewSpawnSystem(func() (*prefabs.ParadeSpec, error) { return testSpec(), nil }, seed, false)
	s.SetBuilder(fakeBuild)
	return s
}

func TestSpawnSystemFirstUpdate(t *testing.T) {
	w := ecs.NewWorld()
	s := newTestSpawn(42)
	s.Update(w)

	groups := walkersByGroup(w)
	if len(groups["walkers"]) != 3 || len(groups["flyers"]) != 2 {
		t.Fatalf("unexpected group sizes: walkers=%d flyers=%d", len(groups["walkers"]), len(groups["flyers"]))
	}
	for _, wk := range groups["flyers"] {
		if wk.Sprite.AssetID != "c" {
			t.Fatalf("flyer got asset %q", wk.Sprite.AssetID)
		}
	}
	for _, wk := range groups["walkers"] {
		if wk.Sprite.AssetID == "b" && !wk.Sprite.FacesLeft {
			t.Fatalf("asset b should face left")
		}
		if wk.Sprite.StartX < 0 || wk.Sprite.StartX >= 400 {
			t.Fatalf("start x %v out of range", wk.Sprite.StartX)
		}
	}

	events := w.Events().Drain()
	if len(events) != 1 || events[0].Type != ecs.EventParadeSpawned {
		t.Fatalf("expected one spawned event, got %+v", events)
	}
	if got := events[0].Data.(ecs.SpawnedEvent); got.Count != 5 || got.Seed != 42 {
		t.Fatalf("unexpected payload %+v", got)
	}

	// Without a request nothing changes.
	s.Update(w)
	if n := len(ecs.Query(w, component.WalkerComponent.Kind())); n != 5 {
		t.Fatalf("expected 5 walkers after idle update, got %d", n)
	}
	if events := w.Events().Drain(); len(events) != 0 {
		t.Fatalf("idle update should not emit events, got %+v", events)
	}
}

func TestSpawnSystemSameSeedSameParade(t *testing.T) {
	snapshot := func() []crowd.Sprite {
		w := ecs.NewWorld()
		newTestSpawn(7).Update(w)
		var out []crowd.Sprite
		ecs.ForEach(w, component.WalkerComponent.Kind(), func(_ ecs.Entity, wk *component.Walker) {
			out = append(out, wk.Sprite)
		})
		return out
	}

	a, b := snapshot(), snapshot()
	if len(a) != len(b) {
		t.Fatalf("length mismatch %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].AssetID != b[i].AssetID || a[i].StartX != b[i].StartX || a[i].DurationMs != b[i].DurationMs {
			t.Fatalf("sprite %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnSystemRespawn(t *testing.T) {
	cases := []struct {
		name     string
		req      component.RespawnRequest
		delta    int
		wantSeed func(prev uint64) bool
		want     int
	}{
		{"keep_seed", component.RespawnRequest{}, 0, func(prev uint64) bool { return prev == 11 }, 5},
		{"explicit_seed", component.RespawnRequest{Seed: 99}, 0, func(prev uint64) bool { return prev == 99 }, 5},
		{"more", component.RespawnRequest{}, 2, func(prev uint64) bool { return prev == 11 }, 9},
		{"fewer_clamps_at_zero", component.RespawnRequest{}, -10, func(prev uint64) bool { return prev == 11 }, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			s := newTestSpawn(11)
			s.Update(w)

			s.SetCountDelta(c.delta)
			e := ecs.CreateEntity(w)
			req := c.req
			if err := ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &req); err != nil {
				t.Fatal(err)
			}
			s.Update(w)

			if n := len(ecs.Query(w, component.WalkerComponent.Kind())); n != c.want {
				t.Fatalf("expected %d walkers, got %d", c.want, n)
			}
			if !c.wantSeed(s.Seed()) {
				t.Fatalf("unexpected seed %d", s.Seed())
			}
			if ecs.IsAlive(w, e) {
				t.Fatalf("respawn request should be consumed")
			}
		})
	}
}

func TestSpawnSystemCountDeltaFloor(t *testing.T) {
	w := ecs.NewWorld()
	s := newTestSpawn(11)
	s.SetCountDelta(-50)
	if s.CountDelta() != -50 {
		t.Fatalf("delta before the first spawn should be kept, got %d", s.CountDelta())
	}
	s.Update(w)
	if s.CountDelta() != -3 {
		t.Fatalf("expected delta floored at -3 after spawning, got %d", s.CountDelta())
	}

	for range 10 {
		s.SetCountDelta(s.CountDelta() - 1)
	}
	if s.CountDelta() != -3 {
		t.Fatalf("repeated decrements should stay at -3, got %d", s.CountDelta())
	}

	s.SetCountDelta(s.CountDelta() + 1)
	if err := RequestRespawn(w, false); err != nil {
		t.Fatal(err)
	}
	s.Update(w)
	if n := len(ecs.Query(w, component.WalkerComponent.Kind())); n != 1 {
		t.Fatalf("one increment from the floor should show a walker, got %d", n)
	}
}

func TestSpawnSystemSeedFallbacks(t *testing.T) {
	t.Run("spec_seed", func(t *testing.T) {
		spec := testSpec()
		spec.Seed = 1234
		s := NewSpawnSystem(func() (*prefabs.ParadeSpec, error) { return spec, nil }, 0, false)
		s.SetBuilder(fakeBuild)
		s.Update(ecs.NewWorld())
		if s.Seed() != 1234 {
			t.Fatalf("expected spec seed, got %d", s.Seed())
		}
	})

	t.Run("reseed", func(t *testing.T) {
		w := ecs.NewWorld()
		s := newTestSpawn(5)
		s.Update(w)
		if err := RequestRespawn(w, true); err != nil {
			t.Fatal(err)
		}
		s.Update(w)
		if s.Seed() == 0 {
			t.Fatalf("reseed should pick a non-zero seed")
		}
	})
}

func TestSpawnSystemLoadErrorKeepsParade(t *testing.T) {
	w := ecs.NewWorld()
	fail := false
	s := NewSpawnSystem(func() (*prefabs.ParadeSpec, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return testSpec(), nil
	}, 3, false)
	s.SetBuilder(fakeBuild)
	s.Update(w)

	fail = true
	if err := RequestRespawn(w, false); err != nil {
		t.Fatal(err)
	}
	s.Update(w)
	if n := len(ecs.Query(w, component.WalkerComponent.Kind())); n != 5 {
		t.Fatalf("failed reload should keep 5 walkers, got %d", n)
	}
}

func TestSpawnSystemBadEasingKeepsParade(t *testing.T) {
	w := ecs.NewWorld()
	bad := false
	s := NewSpawnSystem(func() (*prefabs.ParadeSpec, error) {
		spec := testSpec()
		if bad {
			spec.Groups[1].Easing = "no_such_script"
		}
		return spec, nil
	}, 3, false)
	s.SetBuilder(fakeBuild)
	s.Update(w)

	bad = true
	if err := RequestRespawn(w, false); err != nil {
		t.Fatal(err)
	}
	s.Update(w)
	if n := len(ecs.Query(w, component.WalkerComponent.Kind())); n != 5 {
		t.Fatalf("broken easing should keep 5 walkers, got %d", n)
	}
}
