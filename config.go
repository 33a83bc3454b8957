package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type Config struct {
	BoardSize   int    `json:"board_size"`
	Playouts    int    `json:"playouts"`
	Policy      string `json:"policy"`
	SimWorkers  int    `json:"sim_workers"`
	Seed        int64  `json:"seed"`
	LogSimStats bool   `json:"log_sim_stats"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		BoardSize: 7,

		// Trials per candidate; the primary strength/latency lever.
		Playouts: 10,

		Policy: "rule_based",

		// 1 keeps candidate scoring sequential.
		SimWorkers: 1,

		// 0 seeds from the wall clock.
		Seed: 0,

		LogSimStats: false,
	}
}

// LoadConfig reads a JSON config file and overlays it on the defaults, so a
// partial file only overrides the keys it names.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
