package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/parade/settings"
)

func main() {
	count := flag.Int("count", 0, "add this many walkers to every group (negative removes)")
	seed := flag.Uint64("seed", 0, "parade seed; 0 uses the saved or prefab seed")
	debug := flag.Bool("debug", false, "enable debug mode")
	prefab := flag.String("prefab", "", "parade prefab in prefabs/ (default parade.yaml)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	store := settings.Open()
	saved := store.Get()

	opts := GameOptions{
		Prefab:     *prefab,
		Seed:       *seed,
		CountDelta: *count,
		Debug:      *debug,
	}
	if !set["seed"] {
		opts.Seed = saved.Seed
	}
	if !set["count"] {
		opts.CountDelta = saved.CountDelta
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(opts, store)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	w, h := game.screenSize()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle("parade")

	if err := ebiten.RunGame(game); err != nil {
		log.Print(err)
	}
}
