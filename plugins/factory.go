package plugins

import (
	"fmt"

	"github.com/tradeforge/yobit/api"
)

// MakeExchange is a factory method to make an exchange based on a given type
func MakeExchange(exchangeType string, apiKey api.ExchangeAPIKey, nonces api.NonceStore) (api.Exchange, error) {
	switch exchangeType {
	case "yobit":
		return makeYobitExchange(apiKey, nonces)
	}
	return nil, fmt.Errorf("unrecognized exchange type: %s", exchangeType)
}
