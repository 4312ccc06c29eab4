package model

import "fmt"

// Market is the canonical metadata record for one tradable pair
type Market struct {
	// Symbol is the exchange's native pair identifier, unmodified
	Symbol string
	Pair   *TradingPair
	// Active is false when the exchange has hidden the pair from trading
	Active         bool
	MinPrice       *Number
	MaxPrice       *Number
	MinAmount      *Number
	PricePrecision int8
	// Fee is the taker/maker fee in percent where the exchange reports one
	Fee *Number
}

// String is the stringer function
func (m Market) String() string {
	return fmt.Sprintf("Market[symbol=%s, pair=%s, active=%v, minPrice=%s, maxPrice=%s, minAmount=%s]",
		m.Symbol,
		m.Pair,
		m.Active,
		m.MinPrice.AsString(),
		m.MaxPrice.AsString(),
		m.MinAmount.AsString(),
	)
}
