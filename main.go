package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/game-of-life-go/session"
)

func main() {
	cfg := session.DefaultConfig()
	var seedMode string
	var verbose, paused bool

	flag.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels")
	flag.IntVar(&cfg.Multiplier, "zoom", cfg.Multiplier, "Initial zoom multiplier (1-10, higher means smaller cells)")
	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Time between generations")
	flag.Float64Var(&cfg.AliveChance, "alive", cfg.AliveChance, "Probability of a cell starting alive; negative picks a random one per seeding")
	flag.StringVar(&seedMode, "seed-mode", string(cfg.SeedMode), "Initial population: random, perlin or empty")
	flag.Int64Var(&cfg.Seed, "seed", 0, "RNG seed (0 uses the clock)")
	flag.BoolVar(&paused, "paused", false, "Start with the simulation stopped")
	flag.BoolVar(&verbose, "v", false, "Log ignored edits and other diagnostics")
	flag.Parse()

	mode, err := session.ParseSeedMode(seedMode)
	if err != nil {
		log.Fatal(err)
	}
	cfg.SeedMode = mode
	cfg.Autostart = !paused

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if verbose {
		game.sess.Logger = log.New(os.Stderr, "life: ", log.LstdFlags)
	}

	// Set up Ebitengine game
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Game of Life")
	ebiten.SetTPS(TPS)

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
