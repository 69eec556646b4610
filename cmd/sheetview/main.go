// Command sheetview plays one asset prefab at a time so its faces_left flag
// can be checked against the artwork.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
	"github.com/milk9111/parade/ecs/entity"
	"github.com/milk9111/parade/ecs/system"
	"github.com/milk9111/parade/prefabs"
)

const viewSize = 512

type sheetView struct {
	world  *ecs.World
	assets []prefabs.PoolEntry
	index  int
	flip   bool
	shown  ecs.Entity
	err    error
}

func newSheetView(assets []prefabs.PoolEntry, start string) *sheetView {
	v := &sheetView{world: ecs.NewWorld(), assets: assets}
	v.world.AddSystem(system.NewAnimationSystem())
	v.world.AddSystem(system.NewRenderSystem(false))
	for i, a := range assets {
		if a.Asset == start {
			v.index = i
		}
	}
	v.show()
	return v
}

func (v *sheetView) show() {
	if v.shown.Valid() {
		ecs.DestroyEntity(v.world, v.shown)
		v.shown = 0
	}
	if len(v.assets) == 0 {
		return
	}

	e, err := entity.BuildEntity(v.world, prefabs.AssetFile(v.assets[v.index].Asset))
	v.err = err
	if err != nil {
		log.Printf("sheetview: %v", err)
		return
	}
	v.err = entity.SetEntityTransform(v.world, e, viewSize/2, viewSize/2)
	if t, ok := ecs.Get(v.world, e, component.TransformComponent.Kind()); ok {
		t.ScaleX *= 2
		t.ScaleY *= 2
	}
	v.shown = e
	v.applyFlip()
}

func (v *sheetView) applyFlip() {
	if sprite, ok := ecs.Get(v.world, v.shown, component.SpriteComponent.Kind()); ok {
		sprite.FlipX = v.flip
	}
}

func (v *sheetView) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		v.index = (v.index + 1) % max(len(v.assets), 1)
		v.show()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		v.index = (v.index - 1 + len(v.assets)) % max(len(v.assets), 1)
		v.show()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		v.flip = !v.flip
		v.applyFlip()
	}
	v.world.Update()
	return nil
}

func (v *sheetView) Draw(screen *ebiten.Image) {
	v.world.Draw(screen)

	if len(v.assets) == 0 {
		ebitenutil.DebugPrint(screen, "no assets in parade prefab")
		return
	}
	a := v.assets[v.index]
	facing := "right"
	if a.FacesLeft != v.flip {
		facing = "left"
	}
	msg := fmt.Sprintf("%s  faces_left=%v  on screen: %s\n<- -> switch  F flip", a.Asset, a.FacesLeft, facing)
	if v.err != nil {
		msg += "\n" + v.err.Error()
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (v *sheetView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// poolAssets lists every distinct asset across the parade groups.
func poolAssets(spec *prefabs.ParadeSpec) []prefabs.PoolEntry {
	seen := map[string]bool{}
	var out []prefabs.PoolEntry
	for _, g := range spec.Groups {
		for _, p := range g.Pool {
			if seen[p.Asset] {
				continue
			}
			seen[p.Asset] = true
			out = append(out, p)
		}
	}
	return out
}

func main() {
	prefab := flag.String("prefab", "", "parade prefab whose pools are listed")
	asset := flag.String("asset", "", "asset to show first")
	flag.Parse()

	spec, err := prefabs.LoadParadeSpec(*prefab)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("sheetview")
	if err := ebiten.RunGame(newSheetView(poolAssets(spec), *asset)); err != nil {
		log.Fatal(err)
	}
}
