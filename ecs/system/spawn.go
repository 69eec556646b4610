package system

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/milk9111/parade/crowd"
	"github.com/milk9111/parade/crowd/easing"
	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
	"github.com/milk9111/parade/ecs/entity"
	"github.com/milk9111/parade/prefabs"
)

// SpecLoader returns the current parade spec. It is called on every respawn
// so edited prefabs take effect.
type SpecLoader func() (*prefabs.ParadeSpec, error)

// BuildFunc places one generated sprite in the world.
type BuildFunc func(w *ecs.World, s crowd.Sprite, opts entity.WalkerOpts) (ecs.Entity, error)

// SpawnSystem fills the world with the parade on its first update and again
// whenever a RespawnRequest entity appears.
type SpawnSystem struct {
	load  SpecLoader
	build BuildFunc
	debug bool

	spec        *prefabs.ParadeSpec
	seed        uint64
	countDelta  int
	initialized bool
}

func NewSpawnSystem(load SpecLoader, seed uint64, debug bool) *SpawnSystem {
	return &SpawnSystem{
		load:  load,
		build: entity.BuildWalker,
		seed:  seed,
		debug: debug,
	}
}

// SetBuilder swaps the entity builder. Tests use it to avoid loading images.
func (s *SpawnSystem) SetBuilder(build BuildFunc) {
	if s == nil || build == nil {
		return
	}
	s.build = build
}

// Seed returns the seed of the parade currently on screen.
func (s *SpawnSystem) Seed() uint64 {
	if s == nil {
		return 0
	}
	return s.seed
}

// Spec returns the spec used for the last spawn.
func (s *SpawnSystem) Spec() *prefabs.ParadeSpec {
	if s == nil {
		return nil
	}
	return s.spec
}

// CountDelta is added to every group's count, never going below zero.
func (s *SpawnSystem) CountDelta() int {
	if s == nil {
		return 0
	}
	return s.countDelta
}

// SetCountDelta is clamped against the current spec once one is loaded.
func (s *SpawnSystem) SetCountDelta(delta int) {
	if s == nil {
		return
	}
	if s.spec != nil {
		delta = s.spec.ClampDelta(delta)
	}
	s.countDelta = delta
}

// RequestRespawn queues a rebuild on the next update.
func RequestRespawn(w *ecs.World, reseed bool) error {
	e := ecs.CreateEntity(w)
	return ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{Reseed: reseed})
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	req, requested := s.drainRequests(w)
	if s.initialized && !requested {
		return
	}

	spec, err := s.load()
	if err != nil {
		log.Printf("spawn: load parade spec: %v", err)
		return
	}

	seed := s.seed
	switch {
	case req.Seed != 0:
		seed = req.Seed
	case req.Reseed:
		seed = rand.Uint64()
	case seed == 0 && spec.Seed != 0:
		seed = spec.Seed
	case seed == 0:
		seed = rand.Uint64()
	}

	count, err := s.spawn(w, spec, seed)
	if err != nil {
		log.Printf("spawn: %v", err)
		return
	}

	s.countDelta = spec.ClampDelta(s.countDelta)

	s.spec = spec
	s.seed = seed
	s.initialized = true
	w.Events().Push(ecs.Event{Type: ecs.EventParadeSpawned, Data: ecs.SpawnedEvent{Count: count, Seed: seed}})
}

func (s *SpawnSystem) drainRequests(w *ecs.World) (component.RespawnRequest, bool) {
	var merged component.RespawnRequest
	found := false
	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, req *component.RespawnRequest) {
		found = true
		if req.Seed != 0 {
			merged.Seed = req.Seed
		}
		merged.Reseed = merged.Reseed || req.Reseed
		ecs.DestroyEntity(w, e)
	})
	return merged, found
}

func (s *SpawnSystem) spawn(w *ecs.World, spec *prefabs.ParadeSpec, seed uint64) (int, error) {
	// Resolve every easing before touching the world so a broken script
	// leaves the current parade in place.
	eases := make(map[string]crowd.Easing, len(spec.Groups))
	for _, g := range spec.Groups {
		ease, err := easing.Resolve(g.Easing)
		if err != nil {
			return 0, fmt.Errorf("group %q: %w", g.Name, err)
		}
		eases[g.Name] = ease
	}

	ecs.ForEach(w, component.WalkerComponent.Kind(), func(e ecs.Entity, _ *component.Walker) {
		ecs.DestroyEntity(w, e)
	})

	total := 0
	for _, p := range spec.Roll(seed, s.countDelta) {
		e, err := s.build(w, p.Sprite, entity.WalkerOpts{Group: p.Group, Y: p.Y, Layer: p.Layer, Ease: eases[p.Group]})
		if err != nil {
			log.Printf("spawn: group %q: %v", p.Group, err)
			continue
		}
		total++
		if s.debug {
			log.Printf("spawn: %s entity=%s asset=%s start=%.1f end=%.1f duration=%dms", p.Group, e, p.Sprite.AssetID, p.Sprite.StartX, p.Sprite.EndX, p.Sprite.DurationMs)
		}
	}
	return total, nil
}
