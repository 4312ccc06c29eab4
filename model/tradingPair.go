package model

import (
	"fmt"
	"strings"
)

// pairDelimiter joins the two currency codes in a native pair identifier ("ltc_btc")
const pairDelimiter = "_"

// TradingPair lists the ordered currency pair behind a native pair identifier.
// For "ltc_btc" the Market currency is LTC and the Base currency is BTC.
type TradingPair struct {
	// Market is the currency being traded
	Market Asset
	// Base is the currency the market currency is priced in
	Base Asset
}

// MakeTradingPair is a factory method
func MakeTradingPair(market Asset, base Asset) *TradingPair {
	return &TradingPair{
		Market: market,
		Base:   base,
	}
}

// String is the stringer function
func (p TradingPair) String() string {
	return fmt.Sprintf("%s/%s", p.Market, p.Base)
}

// ToNative converts the trading pair back to the exchange's native identifier
func (p TradingPair) ToNative() string {
	return p.Market.Native() + pairDelimiter + p.Base.Native()
}

// TradingPairFromNative makes a TradingPair out of a native pair identifier by
// splitting on the delimiter. An identifier that does not yield exactly two
// non-empty tokens is malformed and is rejected, never truncated.
func TradingPairFromNative(symbol string) (*TradingPair, error) {
	tokens := strings.Split(symbol, pairDelimiter)
	if len(tokens) != 2 || tokens[0] == "" || tokens[1] == "" {
		return nil, fmt.Errorf("pair identifier '%s' did not split into exactly two tokens", symbol)
	}

	return &TradingPair{
		Market: AssetFromNative(tokens[0]),
		Base:   AssetFromNative(tokens[1]),
	}, nil
}
