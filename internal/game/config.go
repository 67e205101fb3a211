package game

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed   = "WUMPUS_SEED"
	EnvReveal = "WUMPUS_REVEAL"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible world placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Reveal draws the hazard, gold and pits. When false only the agent's
	// own cell is shown until the episode ends.
	Reveal bool
}

// LoadConfig reads configuration from the process environment.
func LoadConfig() (Config, error) {
	return loadConfig(os.LookupEnv)
}

func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	var cfg Config

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v, ok := lookup(EnvReveal); ok && v != "" {
		reveal, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvReveal, err)
		}
		cfg.Reveal = reveal
	}

	return cfg, nil
}
