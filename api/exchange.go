package api

import (
	"time"

	"github.com/tradeforge/yobit/model"
)

// ExchangeAPIKey specifies API credentials for an exchange. The Secret is only
// ever read by the request signer and must never be logged or serialized.
type ExchangeAPIKey struct {
	Key    string
	Secret string
}

// TradeConsumer consumes a batch of historical trades
type TradeConsumer func(trades []model.Trade) error

// MarketAPI is the interface we use as a generic API for symbol discovery and metadata
type MarketAPI interface {
	// GetMarketSymbols returns the exchange's native pair identifiers, verbatim
	GetMarketSymbols() ([]string, error)

	// GetMarkets returns one metadata record per tradable pair
	GetMarkets() ([]model.Market, error)

	// GetCurrencies returns per-currency metadata where the exchange provides it
	GetCurrencies() ([]model.Currency, error)
}

// TickerAPI is the interface we use as a generic API for getting ticker data from any crypto exchange
type TickerAPI interface {
	// GetTicker returns (nil, nil) when the exchange has no data for the symbol
	GetTicker(symbol string) (*model.Ticker, error)

	// GetTickers returns the ticker for every known symbol. Implementations may
	// degrade to one remote call per symbol, so this can be very slow.
	GetTickers() (map[string]model.Ticker, error)
}

// MarketDataAPI is the interface we use as a generic API for market depth and trade data
type MarketDataAPI interface {
	GetOrderBook(symbol string, maxCount int32) (*model.OrderBook, error)

	GetRecentTrades(symbol string) ([]model.Trade, error)

	/*
		Input:
			symbol - native pair identifier to fetch trades for
			startTime - exclude trades before this time, nil for no lower bound
			endTime - accepted for interface compatibility; not all exchanges can apply it
			consumer - invoked once with the filtered batch
	*/
	GetTradeHistory(symbol string, startTime *time.Time, endTime *time.Time, consumer TradeConsumer) error

	GetCandles(symbol string, granularitySeconds int32) ([]model.Candle, error)
}

// Account allows you to access key account functions
type Account interface {
	// GetAccountBalances returns total balances including amounts reserved in open
	// orders, filtered to positive amounts
	GetAccountBalances() (map[model.Asset]model.Number, error)

	// GetTradableBalances returns the balances free to trade, filtered to positive amounts
	GetTradableBalances() (map[model.Asset]model.Number, error)
}

// TradeAPI is the interface we use as a generic API for trading on any crypto exchange
type TradeAPI interface {
	GetOrderDetails(orderID string) (*model.Order, error)

	// GetCompletedOrders requires a non-empty symbol; since is an optional lower bound
	GetCompletedOrders(symbol string, since *time.Time) ([]model.Order, error)

	// GetOpenOrders requires a non-empty symbol
	GetOpenOrders(symbol string) ([]model.Order, error)

	AddOrder(request *model.OrderRequest) (*model.Order, error)

	CancelOrder(orderID string) error
}

// FundingAPI is defined by anything that can move funds in and out of an exchange account
type FundingAPI interface {
	GetDepositHistory(symbol string) ([]model.FundingRecord, error)

	/*
		Input:
			symbol - currency code to get a deposit address for
			forceRegenerate - request a fresh address even if one already exists
		Output:
			DepositDetails - the address to send funds to
			error - any error
	*/
	GetDepositAddress(symbol string, forceRegenerate bool) (*model.DepositDetails, error)

	Withdraw(request *model.WithdrawRequest) (*model.WithdrawalResponse, error)
}

// Exchange is the interface we use as a generic API for all crypto exchanges
type Exchange interface {
	MarketAPI
	TickerAPI
	MarketDataAPI
	Account
	TradeAPI
	FundingAPI
}
