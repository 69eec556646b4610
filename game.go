package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/parade/common"
	"github.com/milk9111/parade/ecs"
	"github.com/milk9111/parade/ecs/component"
	"github.com/milk9111/parade/ecs/render"
	"github.com/milk9111/parade/ecs/system"
	"github.com/milk9111/parade/prefabs"
	"github.com/milk9111/parade/settings"
	"golang.org/x/image/colornames"
)

type GameOptions struct {
	Prefab     string
	Seed       uint64
	CountDelta int
	Debug      bool
}

type Game struct {
	frames int
	debug  bool

	world *ecs.World
	spawn *system.SpawnSystem
	hover *system.HoverSystem

	watcher   *prefabs.Watcher
	store     *settings.Store
	clipboard *Clipboard
	hud       *HUD
	showHUD   bool

	background color.Color
	walkers    int
}

func NewGame(opts GameOptions, store *settings.Store) (*Game, error) {
	prefabFile := opts.Prefab
	if prefabFile == "" {
		prefabFile = prefabs.ParadeFile
	}

	// Fail fast on a broken spec; later reloads only log.
	spec, err := prefabs.LoadParadeSpec(prefabFile)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		debug:      opts.Debug,
		world:      ecs.NewWorld(),
		store:      store,
		clipboard:  NewClipboard(),
		showHUD:    true,
		background: colornames.Black,
	}
	if spec.Background != nil {
		g.background = spec.Background.Color
	}
	if store != nil {
		g.showHUD = store.Get().ShowHUD
	}

	g.spawn = system.NewSpawnSystem(func() (*prefabs.ParadeSpec, error) {
		return prefabs.LoadParadeSpec(prefabFile)
	}, opts.Seed, opts.Debug)
	g.spawn.SetCountDelta(opts.CountDelta)
	g.hover = system.NewHoverSystem()

	g.world.AddSystem(g.spawn)
	g.world.AddSystem(system.NewWalkSystem())
	g.world.AddSystem(system.NewAnimationSystem())
	g.world.AddSystem(g.hover)
	g.world.AddSystem(system.NewRenderSystem(opts.Debug))

	g.hud = NewHUD(spec.Name, HUDActions{
		Shuffle: g.shuffle,
		More:    func() { g.changeCount(1) },
		Fewer:   func() { g.changeCount(-1) },
		Copy:    g.copySnapshot,
	})

	g.watcher = newPrefabWatcher()
	return g, nil
}

// newPrefabWatcher watches the on-disk prefab and asset folders. Running from
// a directory without them leaves hot reload off.
func newPrefabWatcher() *prefabs.Watcher {
	var dirs []string
	for _, dir := range []string{prefabs.Dir, prefabs.Dir + "/scripts", "assets"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("game: hot reload disabled: %v", err)
		return nil
	}
	return w
}

func (g *Game) Update() error {
	g.frames++

	g.reloadChanged()

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.shuffle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}

	if g.showHUD {
		g.hud.ui.Update()
	}

	g.world.Update()
	g.handleEvents()
	return nil
}

func (g *Game) reloadChanged() {
	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	for _, path := range changed {
		log.Printf("game: reloading after change to %s", path)
		if prefabs.IsImageFile(path) {
			render.ForgetImages()
		}
	}
	if err := system.RequestRespawn(g.world, false); err != nil {
		log.Printf("game: request respawn: %v", err)
	}
}

func (g *Game) handleEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventParadeSpawned:
			spawned, ok := evt.Data.(ecs.SpawnedEvent)
			if !ok {
				continue
			}
			g.walkers = spawned.Count
			g.hud.SetStatus(spawned.Count, spawned.Seed, g.clipboard.Ready())
			if spec := g.spawn.Spec(); spec != nil && spec.Background != nil {
				g.background = spec.Background.Color
			}
			g.saveSettings()
		case ecs.EventHoverChanged:
			if !g.debug {
				continue
			}
			if e, ok := evt.Data.(ecs.Entity); ok && e.Valid() {
				if wk, ok := ecs.Get(g.world, e, component.WalkerComponent.Kind()); ok {
					log.Printf("game: hovering %s (%s)", wk.Sprite.AssetID, wk.Group)
				}
			}
		}
	}
}

func (g *Game) shuffle() {
	if err := system.RequestRespawn(g.world, true); err != nil {
		log.Printf("game: shuffle: %v", err)
	}
}

func (g *Game) changeCount(delta int) {
	g.spawn.SetCountDelta(g.spawn.CountDelta() + delta)
	if err := system.RequestRespawn(g.world, false); err != nil {
		log.Printf("game: change count: %v", err)
	}
}

func (g *Game) copySnapshot() {
	width := float64(common.BaseWidth)
	if spec := g.spawn.Spec(); spec != nil {
		width = spec.Width
	}
	data, err := system.TakeSnapshot(g.world, g.spawn.Seed(), width).Marshal()
	if err != nil {
		log.Printf("game: %v", err)
		return
	}
	if !g.clipboard.Copy(data) {
		log.Printf("game: clipboard unavailable, snapshot not copied")
		return
	}
	log.Printf("game: copied snapshot of %d walkers", g.walkers)
}

func (g *Game) saveSettings() {
	if g.store == nil {
		return
	}
	g.store.Set(settings.Settings{
		CountDelta: g.spawn.CountDelta(),
		Seed:       g.spawn.Seed(),
		ShowHUD:    g.showHUD,
	})
	if err := g.store.Save(); err != nil {
		log.Printf("game: %v", err)
	}
}

// Close stops the watcher and saves settings.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
	g.saveSettings()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.world.Draw(screen)

	if g.showHUD {
		g.hud.ui.Draw(screen)
	}
	if g.debug {
		_, h := g.screenSize()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 8, int(h)-20)
	}
}

func (g *Game) screenSize() (float64, float64) {
	if spec := g.spawn.Spec(); spec != nil && spec.Width > 0 && spec.Height > 0 {
		return spec.Width, spec.Height
	}
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.screenSize()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.screenSize()
	return int(w), int(h)
}
