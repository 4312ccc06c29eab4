package plugins

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tradeforge/yobit/model"
)

func TestParseMarket(t *testing.T) {
	var info yobitPairInfo
	e := json.Unmarshal([]byte(`{
		"decimal_places": 8,
		"min_price": 0.00000001,
		"max_price": 10000,
		"min_amount": 0.0001,
		"hidden": 0,
		"fee": 0.2
	}`), &info)
	if !assert.NoError(t, e) {
		return
	}

	market, e := parseMarket("ltc_btc", info)
	if !assert.NoError(t, e) {
		return
	}

	assert.Equal(t, "ltc_btc", market.Symbol)
	assert.Equal(t, model.Asset("LTC"), market.Pair.Market)
	assert.Equal(t, model.Asset("BTC"), market.Pair.Base)
	assert.True(t, market.Active)
	assert.Equal(t, 0.00000001, market.MinPrice.AsFloat())
	assert.Equal(t, float64(10000), market.MaxPrice.AsFloat())
	assert.Equal(t, 0.0001, market.MinAmount.AsFloat())
	assert.Equal(t, int8(8), market.PricePrecision)
	assert.Equal(t, 0.2, market.Fee.AsFloat())
}

func TestParseMarketHidden(t *testing.T) {
	var info yobitPairInfo
	e := json.Unmarshal([]byte(`{"min_price": 1, "max_price": 2, "min_amount": 3, "hidden": 1}`), &info)
	if !assert.NoError(t, e) {
		return
	}

	market, e := parseMarket("ltc_btc", info)
	if !assert.NoError(t, e) {
		return
	}
	assert.False(t, market.Active)
}

func TestParseMarketMalformedPair(t *testing.T) {
	var info yobitPairInfo
	e := json.Unmarshal([]byte(`{"min_price": 1, "max_price": 2, "min_amount": 3}`), &info)
	if !assert.NoError(t, e) {
		return
	}

	// metadata parsing rejects a pair identifier that does not split cleanly
	_, e = parseMarket("ltcbtc", info)
	assert.Error(t, e)

	_, e = parseMarket("ltc_btc_usd", info)
	assert.Error(t, e)
}

func TestParseMarketMissingNumericField(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{
			name: "missing_min_price",
			body: `{"max_price": 2, "min_amount": 3}`,
		}, {
			name: "missing_max_price",
			body: `{"min_price": 1, "min_amount": 3}`,
		}, {
			name: "missing_min_amount",
			body: `{"min_price": 1, "max_price": 2}`,
		},
	}

	for _, kase := range testCases {
		t.Run(kase.name, func(t *testing.T) {
			var info yobitPairInfo
			e := json.Unmarshal([]byte(kase.body), &info)
			if !assert.NoError(t, e) {
				return
			}

			// absence is a parse failure, never a default to zero
			_, e = parseMarket("ltc_btc", info)
			assert.Error(t, e)
		})
	}
}

func TestParseTicker(t *testing.T) {
	var tk yobitTicker
	e := json.Unmarshal([]byte(`{
		"high": 0.0231,
		"low": 0.0221,
		"avg": 0.0226,
		"vol": 103.34,
		"vol_cur": 4567.5,
		"last": 0.0224,
		"buy": 0.0223,
		"sell": 0.0225,
		"updated": 1418654531
	}`), &tk)
	if !assert.NoError(t, e) {
		return
	}

	ticker, e := parseTicker("ltc_btc", tk)
	if !assert.NoError(t, e) {
		return
	}

	assert.Equal(t, 0.0225, ticker.Ask.AsFloat())
	assert.Equal(t, 0.0223, ticker.Bid.AsFloat())
	assert.Equal(t, 0.0224, ticker.Last.AsFloat())
	assert.Equal(t, 103.34, ticker.Volume.Base.AsFloat())
	assert.Equal(t, "BTC", ticker.Volume.BaseSymbol)
	assert.Equal(t, 4567.5, ticker.Volume.Converted.AsFloat())
	assert.Equal(t, "LTC", ticker.Volume.ConvertedSymbol)
	assert.Equal(t, int64(1418654531000), ticker.Volume.Timestamp.AsInt64())
}

func TestParseTickerDegradesOnBadPair(t *testing.T) {
	var tk yobitTicker
	e := json.Unmarshal([]byte(`{"vol": 1, "vol_cur": 2, "last": 3, "buy": 4, "sell": 5, "updated": 1}`), &tk)
	if !assert.NoError(t, e) {
		return
	}

	// a pair identifier that does not split leaves the symbols empty instead of failing
	ticker, e := parseTicker("weird", tk)
	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, "", ticker.Volume.BaseSymbol)
	assert.Equal(t, "", ticker.Volume.ConvertedSymbol)
	assert.Equal(t, float64(5), ticker.Ask.AsFloat())
}

func TestParseTickerMissingField(t *testing.T) {
	var tk yobitTicker
	e := json.Unmarshal([]byte(`{"vol": 1, "vol_cur": 2, "last": 3, "buy": 4, "updated": 1}`), &tk)
	if !assert.NoError(t, e) {
		return
	}

	_, e = parseTicker("ltc_btc", tk)
	assert.Error(t, e)
}

func TestParseTrade(t *testing.T) {
	var wire yobitTrade
	e := json.Unmarshal([]byte(`{
		"type": "ask",
		"price": 104.2,
		"amount": 0.101,
		"tid": 41234426,
		"timestamp": 1418654531
	}`), &wire)
	if !assert.NoError(t, e) {
		return
	}

	trade := parseTrade(wire)
	assert.Equal(t, int64(41234426), trade.ID)
	assert.Equal(t, 104.2, trade.Price.AsFloat())
	assert.Equal(t, 0.101, trade.Amount.AsFloat())
	// "ask" means a resting sell order was matched, which the exchange reports as a buy
	assert.True(t, trade.IsBuy)
	assert.Equal(t, time.Date(2014, 12, 15, 12, 42, 11, 0, time.UTC), trade.Timestamp.AsTime())
}

func TestParseTradeBid(t *testing.T) {
	var wire yobitTrade
	e := json.Unmarshal([]byte(`{"type": "bid", "price": 1, "amount": 1, "tid": 1, "timestamp": 1}`), &wire)
	if !assert.NoError(t, e) {
		return
	}

	assert.False(t, parseTrade(wire).IsBuy)
}

func TestParseSideLevels(t *testing.T) {
	var depth yobitDepth
	e := json.Unmarshal([]byte(`{
		"asks": [[103.4, 0.1], [103.6, 2.5]],
		"bids": [[103.2, 0.74]]
	}`), &depth)
	if !assert.NoError(t, e) {
		return
	}

	asks, e := parseSideLevels(depth.Asks)
	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, 2, len(asks))
	assert.Equal(t, 103.4, asks[0].Price.AsFloat())
	assert.Equal(t, 0.1, asks[0].Volume.AsFloat())

	bids, e := parseSideLevels(depth.Bids)
	if !assert.NoError(t, e) {
		return
	}
	assert.Equal(t, 1, len(bids))
	assert.Equal(t, 0.74, bids[0].Volume.AsFloat())
}

func TestParseSideLevelsMalformed(t *testing.T) {
	var depth yobitDepth
	e := json.Unmarshal([]byte(`{"asks": [[103.4]]}`), &depth)
	if !assert.NoError(t, e) {
		return
	}

	_, e = parseSideLevels(depth.Asks)
	assert.Error(t, e)
}

func TestParseOrderInfoWithStartAmount(t *testing.T) {
	var info yobitOrderInfo
	e := json.Unmarshal([]byte(`{
		"pair": "ltc_btc",
		"type": "sell",
		"start_amount": 5,
		"amount": 3,
		"rate": 0.022,
		"timestamp_created": 1418654530
	}`), &info)
	if !assert.NoError(t, e) {
		return
	}

	order, e := parseOrderInfo("100025362", info)
	if !assert.NoError(t, e) {
		return
	}

	assert.Equal(t, "100025362", order.ID)
	assert.Equal(t, "ltc_btc", order.Symbol)
	assert.True(t, order.Action.IsSell())
	assert.Equal(t, float64(5), order.Amount.AsFloat())
	assert.Equal(t, float64(2), order.AmountFilled.AsFloat())
	assert.Equal(t, model.OrderStatePartiallyFilled, order.State)
}

func TestParseOrderInfoActiveOrderIsPending(t *testing.T) {
	var info yobitOrderInfo
	e := json.Unmarshal([]byte(`{"pair": "ltc_btc", "type": "buy", "amount": 1.5, "rate": 0.022, "timestamp_created": 1}`), &info)
	if !assert.NoError(t, e) {
		return
	}

	order, e := parseOrderInfo("7", info)
	if !assert.NoError(t, e) {
		return
	}

	assert.Equal(t, float64(1.5), order.Amount.AsFloat())
	assert.Equal(t, float64(0), order.AmountFilled.AsFloat())
	assert.Equal(t, model.OrderStatePending, order.State)
}

func TestParseOrderInfoMissingAmount(t *testing.T) {
	var info yobitOrderInfo
	e := json.Unmarshal([]byte(`{"pair": "ltc_btc", "type": "buy"}`), &info)
	if !assert.NoError(t, e) {
		return
	}

	_, e = parseOrderInfo("7", info)
	assert.Error(t, e)
}

func TestParseCompletedOrder(t *testing.T) {
	var co yobitCompletedOrder
	e := json.Unmarshal([]byte(`{
		"pair": "ltc_btc",
		"type": "buy",
		"amount": 2.5,
		"rate": 0.021,
		"order_id": 5423,
		"timestamp": 1418654531
	}`), &co)
	if !assert.NoError(t, e) {
		return
	}

	order, e := parseCompletedOrder("166830", co)
	if !assert.NoError(t, e) {
		return
	}

	assert.Equal(t, "5423", order.ID)
	assert.Equal(t, 2.5, order.Amount.AsFloat())
	assert.Equal(t, 2.5, order.AmountFilled.AsFloat())
	assert.Equal(t, model.OrderStateFilled, order.State)
}
