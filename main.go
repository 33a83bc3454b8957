package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"
)

func main() {
	defaults := DefaultConfig()
	mode := flag.String("mode", "gtp", "run mode: gtp (controller protocol on stdin/stdout) or tui (interactive terminal)")
	configPath := flag.String("config", "", "JSON config file; explicit flags override its values")
	size := flag.Int("size", defaults.BoardSize, "board size")
	playouts := flag.Int("playouts", defaults.Playouts, "rollout trials per candidate move")
	policyName := flag.String("policy", defaults.Policy, "rollout policy: random or rule_based")
	workers := flag.Int("workers", defaults.SimWorkers, "parallel candidate scoring workers")
	seed := flag.Int64("seed", defaults.Seed, "RNG seed, 0 seeds from the clock")
	simStats := flag.Bool("simstats", defaults.LogSimStats, "log per-move simulation statistics")
	flag.Parse()

	cfg := defaults
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.BoardSize = *size
		case "playouts":
			cfg.Playouts = *playouts
		case "policy":
			cfg.Policy = *policyName
		case "workers":
			cfg.SimWorkers = *workers
		case "seed":
			cfg.Seed = *seed
		case "simstats":
			cfg.LogSimStats = *simStats
		}
	})

	if cfg.BoardSize < 2 || cfg.BoardSize > MaxSize {
		log.Fatalf("board size %d out of range [2, %d]", cfg.BoardSize, MaxSize)
	}
	policy, err := ParsePolicy(cfg.Policy)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.Playouts < 1 {
		log.Fatalf("playouts must be positive, got %d", cfg.Playouts)
	}

	configStore.Update(cfg)

	seedValue := cfg.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	switch *mode {
	case "gtp":
		board := NewBoard(cfg.BoardSize)
		sim := NewSimulator(cfg.Playouts, cfg.SimWorkers, rng)
		NewGtpConnection(os.Stdin, os.Stdout, board, sim, policy).StartConnection()
	case "tui":
		settings := DefaultGameSettings()
		settings.BoardSize = cfg.BoardSize
		settings.Policy = policy
		settings.Playouts = cfg.Playouts
		StartUI(settings, rng)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}
