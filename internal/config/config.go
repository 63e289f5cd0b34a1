// Package config loads the summarizer's TOML configuration: recognizes
// max_hops, id_patterns, and ara_to_infores_map, plus a server table for
// the HTTP layer.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ServerConfig holds the HTTP listen address and response-cache size for
// internal/server.
type ServerConfig struct {
	ListenAddr string `toml:"listen_addr"`
	CacheSize  int    `toml:"cache_size"`
}

// Config is the summarizer's full configuration.
type Config struct {
	MaxHops         int               `toml:"max_hops"`
	IDPatterns      map[string]string `toml:"id_patterns"`
	AraToInforesMap map[string]string `toml:"ara_to_infores_map"`
	Server          ServerConfig      `toml:"server"`
}

// defaults mirrors the bare minimum a summarizer can run with when no
// config.toml is present: a conservative hop bound, the PMID/NCT patterns
// internal/publication's own default classifier already knows, and an
// empty infores translation map (server falls back to raw agent ids).
func defaults() Config {
	return Config{
		MaxHops: 3,
		IDPatterns: map[string]string{
			"PMID:": "pubmed",
			"NCT":   "clinicaltrial",
		},
		AraToInforesMap: map[string]string{},
		Server: ServerConfig{
			ListenAddr: ":8080",
			CacheSize:  256,
		},
	}
}

// Load reads and parses the TOML file at path, filling in defaults() for
// any key the file omits.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if cfg.MaxHops < 1 {
		cfg.MaxHops = 3
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Server.CacheSize <= 0 {
		cfg.Server.CacheSize = 256
	}

	return &cfg, nil
}
