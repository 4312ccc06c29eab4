package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/tradeforge/yobit/api"
	"github.com/tradeforge/yobit/config"
	"github.com/tradeforge/yobit/plugins"
	"github.com/tradeforge/yobit/support/nonce"
	"github.com/tradeforge/yobit/support/utils"
)

// makePublicExchange builds an exchange for unauthenticated commands
func makePublicExchange() api.Exchange {
	nonces := nonce.MakeFileStore(filepath.Join(os.TempDir(), "yobit-cli"), "public")
	exchange, e := plugins.MakeExchange("yobit", api.ExchangeAPIKey{}, nonces)
	if e != nil {
		log.Fatal(e)
	}
	return exchange
}

// makeTradingExchange builds an exchange from the config file for authenticated commands
func makeTradingExchange(configPath string) api.Exchange {
	cfg, e := config.Load(configPath)
	utils.CheckConfigError(cfg, e, configPath)
	log.Printf("loaded config:\n%s", cfg)

	apiKey := api.ExchangeAPIKey{Key: cfg.APIKey, Secret: cfg.APISecret}
	nonces := nonce.MakeFileStore(cfg.NonceDir, cfg.APIKey)

	exchange, e := plugins.MakeExchange("yobit", apiKey, nonces)
	if e != nil {
		log.Fatal(e)
	}
	return exchange
}
