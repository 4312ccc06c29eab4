package config

import (
	"github.com/BurntSushi/toml"

	"github.com/tradeforge/yobit/support/utils"
)

// Config holds the adapter's credentials and local state location
type Config struct {
	APIKey    string `valid:"-" toml:"API_KEY"`
	APISecret string `valid:"-" toml:"API_SECRET"`
	// NonceDir is where the per-key nonce files live; it must survive restarts
	NonceDir string `valid:"-" toml:"NONCE_DIR"`
}

// String impl., redacts the secret
func (c Config) String() string {
	return utils.StructString(c, map[string]func(interface{}) interface{}{
		"API_SECRET": utils.Hide,
	})
}

// Load parses the toml config file
func Load(filename string) (Config, error) {
	var cfg Config
	_, e := toml.DecodeFile(filename, &cfg)
	if cfg.NonceDir == "" {
		cfg.NonceDir = ".yobit"
	}
	return cfg, e
}
