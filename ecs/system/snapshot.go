package system

import (
	"github.com/milk9111/parade/crowd"
	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
)

// TakeSnapshot lists every live walker in entity order.
func TakeSnapshot(w *ecs.World, seed uint64, width float64) crowd.Snapshot {
	snap := crowd.Snapshot{Seed: seed, Width: width, Sprites: []crowd.SnapshotEntry{}}
	ecs.ForEach(w, component.WalkerComponent.Kind(), func(_ ecs.Entity, wk *component.Walker) {
		snap.Sprites = append(snap.Sprites, crowd.EntryOf(wk.Group, wk.Sprite, wk.Mirror))
	})
	return snap
}
