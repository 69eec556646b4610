package entity

import (
	"fmt"

	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
	"github.com/milk9111/parade/ecs/render"
	"github.com/milk9111/parade/prefabs"
)

type buildContext struct {
	PrefabPath   string
	CenterOrigin bool
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":    addTransform,
	"sprite":       addSprite,
	"render_layer": addRenderLayer,
	"animation":    addAnimation,
	"hoverable":    addHoverable,
}

// Animation runs after sprite so it can point the sprite at its first frame.
var componentBuildOrder = []string{
	"transform",
	"sprite",
	"render_layer",
	"animation",
	"hoverable",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		if _, ok := componentRegistry[k]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, k)
		}
		remaining[k] = v
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	if spec.Image != "" {
		img, err := render.LoadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
		sprite.Source = img.Bounds()
	}

	sprite.UseSource = spec.UseSource
	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero {
		ctx.CenterOrigin = true
		centerOrigin(&sprite)
	}
	sprite.FlipX = spec.FlipX

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

func centerOrigin(sprite *component.Sprite) {
	if sprite.Image == nil {
		return
	}
	r := sprite.Image.Bounds()
	if sprite.UseSource {
		r = sprite.Source
	}
	sprite.OriginX = float64(r.Dx()) / 2
	sprite.OriginY = float64(r.Dy()) / 2
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	sheet, err := render.LoadImage(spec.Sheet)
	if err != nil {
		return fmt.Errorf("load animation sheet %q: %w", spec.Sheet, err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			Row:        def.Row,
			ColStart:   def.ColStart,
			FrameCount: def.FrameCount,
			FrameW:     def.FrameW,
			FrameH:     def.FrameH,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	if _, ok := defs[spec.Current]; !ok {
		return fmt.Errorf("animation %q not defined", spec.Current)
	}

	playing := spec.Playing
	if m, ok := raw.(map[string]any); ok {
		if _, has := m["playing"]; !has {
			playing = true
		}
	}

	anim := &component.Animation{
		Sheet:      sheet,
		Defs:       defs,
		Current:    spec.Current,
		Frame:      spec.Frame,
		FrameTimer: spec.FrameTimer,
		Playing:    playing,
	}

	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Image = sheet
		sprite.UseSource = true
		sprite.Source = defs[spec.Current].FrameRect(anim.Frame)
		if ctx != nil && ctx.CenterOrigin {
			centerOrigin(sprite)
		}
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
}

type hoverableSpec = prefabs.HoverableComponentSpec

func addHoverable(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[hoverableSpec](raw)
	if err != nil {
		return fmt.Errorf("decode hoverable spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("hoverable needs a positive size, got %vx%v", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.HoverableComponent.Kind(), &component.Hoverable{
		Width:  spec.Width,
		Height: spec.Height,
	})
}
