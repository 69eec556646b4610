package entity

import (
	"fmt"

	"github.com/milk9111/parade/crowd"
	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
	"github.com/milk9111/parade/prefabs"
)

// WalkerOpts places a generated sprite in the world.
type WalkerOpts struct {
	Group string
	Y     float64
	Layer int
	Ease  crowd.Easing
}

// BuildWalker builds the asset prefab named by s.AssetID and attaches the
// walker that moves it.
func BuildWalker(w *ecs.World, s crowd.Sprite, opts WalkerOpts) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabs.AssetFile(s.AssetID))
	if err != nil {
		return 0, err
	}

	if err := SetEntityTransform(w, e, s.StartX, opts.Y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build walker %q: %w", s.AssetID, err)
	}

	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: opts.Layer}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build walker %q: %w", s.AssetID, err)
	}

	walker := &component.Walker{
		Group:  opts.Group,
		Sprite: s,
		Ease:   opts.Ease,
		Offset: s.StartX,
		Mirror: s.FacesLeft == (s.EndX > s.StartX),
	}
	if err := ecs.Add(w, e, component.WalkerComponent.Kind(), walker); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build walker %q: %w", s.AssetID, err)
	}

	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.FlipX = walker.Mirror
	}

	return e, nil
}
