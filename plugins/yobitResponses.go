package plugins

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tradeforge/yobit/model"
)

// Wire shapes for the yobit API. Each endpoint returns a slightly different
// loosely-typed JSON fragment, so every shape is decoded into an explicit
// struct here and normalized into the canonical model entities. Numeric fields
// decode through decimal.Decimal, which accepts both JSON numbers and strings
// and parses locale-invariantly. Required numerics are pointers so a missing
// field can be told apart from a legitimate zero.

// yobitInfoResponse is the shape of GET /info
type yobitInfoResponse struct {
	ServerTime int64                    `json:"server_time"`
	Pairs      map[string]yobitPairInfo `json:"pairs"`
}

type yobitPairInfo struct {
	DecimalPlaces int8             `json:"decimal_places"`
	MinPrice      *decimal.Decimal `json:"min_price"`
	MaxPrice      *decimal.Decimal `json:"max_price"`
	MinAmount     *decimal.Decimal `json:"min_amount"`
	Hidden        int              `json:"hidden"`
	Fee           *decimal.Decimal `json:"fee"`
}

// yobitTicker is the per-pair shape inside GET /ticker/{pair}
type yobitTicker struct {
	High    *decimal.Decimal `json:"high"`
	Low     *decimal.Decimal `json:"low"`
	Avg     *decimal.Decimal `json:"avg"`
	Vol     *decimal.Decimal `json:"vol"`
	VolCur  *decimal.Decimal `json:"vol_cur"`
	Last    *decimal.Decimal `json:"last"`
	Buy     *decimal.Decimal `json:"buy"`
	Sell    *decimal.Decimal `json:"sell"`
	Updated int64            `json:"updated"`
}

// yobitTrade is one entry inside GET /trades/{pair}
type yobitTrade struct {
	Type      string          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	Tid       int64           `json:"tid"`
	Timestamp int64           `json:"timestamp"`
}

// yobitDepth is the per-pair shape inside GET /depth/{pair}
type yobitDepth struct {
	Asks [][]decimal.Decimal `json:"asks"`
	Bids [][]decimal.Decimal `json:"bids"`
}

// tapiEnvelope wraps every authenticated response
type tapiEnvelope struct {
	Success int             `json:"success"`
	Return  json.RawMessage `json:"return"`
	Error   string          `json:"error"`
}

// yobitFundsResponse is the getInfo account payload
type yobitFundsResponse struct {
	Funds           map[string]decimal.Decimal `json:"funds"`
	FundsInclOrders map[string]decimal.Decimal `json:"funds_incl_orders"`
}

// yobitOrderInfo is the per-order shape shared by the order-details and
// active-orders payloads. The amount field holds the REMAINING amount; the
// details payload additionally carries start_amount with the original total.
// The status field is the exchange's legacy status code and is never read.
type yobitOrderInfo struct {
	Pair             string           `json:"pair"`
	Type             string           `json:"type"`
	StartAmount      *decimal.Decimal `json:"start_amount"`
	Amount           *decimal.Decimal `json:"amount"`
	Rate             *decimal.Decimal `json:"rate"`
	TimestampCreated int64            `json:"timestamp_created"`
}

// yobitCompletedOrder is one entry of the TradeHistory payload
type yobitCompletedOrder struct {
	Pair      string           `json:"pair"`
	Type      string           `json:"type"`
	Amount    *decimal.Decimal `json:"amount"`
	Rate      *decimal.Decimal `json:"rate"`
	OrderID   int64            `json:"order_id"`
	Timestamp int64            `json:"timestamp"`
}

// yobitTradeResult is the Trade (place order) payload
type yobitTradeResult struct {
	Received decimal.Decimal `json:"received"`
	Remains  decimal.Decimal `json:"remains"`
	OrderID  int64           `json:"order_id"`
}

// yobitDepositAddress is the GetDepositAddress payload
type yobitDepositAddress struct {
	Address string `json:"address"`
}

// parseMarket normalizes one /info pair entry. A pair identifier that does not
// split into exactly two tokens, or a missing numeric bound, is a hard parse
// failure here (unlike ticker parsing, which degrades).
func parseMarket(symbol string, info yobitPairInfo) (*model.Market, error) {
	pair, e := model.TradingPairFromNative(symbol)
	if e != nil {
		return nil, e
	}

	if info.MinPrice == nil {
		return nil, fmt.Errorf("pair '%s' is missing required numeric field 'min_price'", symbol)
	}
	if info.MaxPrice == nil {
		return nil, fmt.Errorf("pair '%s' is missing required numeric field 'max_price'", symbol)
	}
	if info.MinAmount == nil {
		return nil, fmt.Errorf("pair '%s' is missing required numeric field 'min_amount'", symbol)
	}

	m := &model.Market{
		Symbol:         symbol,
		Pair:           pair,
		Active:         info.Hidden == 0,
		MinPrice:       model.NumberFromFloat(info.MinPrice.InexactFloat64(), pricePrecision),
		MaxPrice:       model.NumberFromFloat(info.MaxPrice.InexactFloat64(), pricePrecision),
		MinAmount:      model.NumberFromFloat(info.MinAmount.InexactFloat64(), amountPrecision),
		PricePrecision: info.DecimalPlaces,
	}
	if info.Fee != nil {
		m.Fee = model.NumberFromFloat(info.Fee.InexactFloat64(), feePrecision)
	}
	return m, nil
}

// parseTicker normalizes one /ticker pair entry: sell->ask, buy->bid, vol->base
// volume, vol_cur->converted volume, updated (unix seconds)->timestamp. When
// the pair identifier does not split into exactly two tokens both volume
// symbols are left empty instead of failing; this is the one intentional
// soft-fail in the normalizer and must stay that way.
func parseTicker(symbol string, tk yobitTicker) (*model.Ticker, error) {
	for field, value := range map[string]*decimal.Decimal{
		"sell":    tk.Sell,
		"buy":     tk.Buy,
		"last":    tk.Last,
		"vol":     tk.Vol,
		"vol_cur": tk.VolCur,
	} {
		if value == nil {
			return nil, fmt.Errorf("pair '%s' ticker is missing required numeric field '%s'", symbol, field)
		}
	}

	baseSymbol := ""
	convertedSymbol := ""
	if pair, e := model.TradingPairFromNative(symbol); e == nil {
		baseSymbol = pair.Base.String()
		convertedSymbol = pair.Market.String()
	}

	ticker := &model.Ticker{
		Ask:  model.NumberFromFloat(tk.Sell.InexactFloat64(), pricePrecision),
		Bid:  model.NumberFromFloat(tk.Buy.InexactFloat64(), pricePrecision),
		Last: model.NumberFromFloat(tk.Last.InexactFloat64(), pricePrecision),
		Volume: &model.Volume{
			Base:            model.NumberFromFloat(tk.Vol.InexactFloat64(), amountPrecision),
			BaseSymbol:      baseSymbol,
			Converted:       model.NumberFromFloat(tk.VolCur.InexactFloat64(), amountPrecision),
			ConvertedSymbol: convertedSymbol,
			Timestamp:       model.MakeTimestampFromUnixSeconds(tk.Updated),
		},
	}
	if tk.High != nil {
		ticker.High = model.NumberFromFloat(tk.High.InexactFloat64(), pricePrecision)
	}
	if tk.Low != nil {
		ticker.Low = model.NumberFromFloat(tk.Low.InexactFloat64(), pricePrecision)
	}
	if tk.Avg != nil {
		ticker.Avg = model.NumberFromFloat(tk.Avg.InexactFloat64(), pricePrecision)
	}
	return ticker, nil
}

// parseTrade normalizes one /trades entry. The exchange reports a matched
// resting sell order as type "ask", so "ask" maps to a buy; this reads
// backwards but is the exchange's documented convention, keep it exactly.
func parseTrade(t yobitTrade) *model.Trade {
	return &model.Trade{
		ID:        t.Tid,
		Price:     model.NumberFromFloat(t.Price.InexactFloat64(), pricePrecision),
		Amount:    model.NumberFromFloat(t.Amount.InexactFloat64(), amountPrecision),
		IsBuy:     t.Type == "ask",
		Timestamp: model.MakeTimestampFromUnixSeconds(t.Timestamp),
	}
}

// parseSideLevels converts one side of a depth response from the generic
// array-of-arrays shape [[price, amount], ...]
func parseSideLevels(levels [][]decimal.Decimal) ([]model.OrderBookLevel, error) {
	parsed := []model.OrderBookLevel{}
	for i, level := range levels {
		if len(level) < 2 {
			return nil, fmt.Errorf("price level %d did not have two entries", i)
		}
		parsed = append(parsed, model.OrderBookLevel{
			Price:  model.NumberFromFloat(level[0].InexactFloat64(), pricePrecision),
			Volume: model.NumberFromFloat(level[1].InexactFloat64(), amountPrecision),
		})
	}
	return parsed, nil
}

// parseOrderInfo normalizes an order-details or active-orders entry. The total
// comes from start_amount when present (details payload); the active-orders
// payload only reports the remaining amount, which means zero filled.
func parseOrderInfo(orderID string, info yobitOrderInfo) (*model.Order, error) {
	if info.Amount == nil {
		return nil, fmt.Errorf("order '%s' is missing required numeric field 'amount'", orderID)
	}

	var amount, filled decimal.Decimal
	if info.StartAmount != nil {
		amount = *info.StartAmount
		filled = info.StartAmount.Sub(*info.Amount)
	} else {
		amount = *info.Amount
		filled = decimal.Zero
	}

	return &model.Order{
		ID:           orderID,
		Symbol:       info.Pair,
		Action:       model.OrderActionFromString(info.Type),
		Amount:       model.NumberFromFloat(amount.InexactFloat64(), amountPrecision),
		AmountFilled: model.NumberFromFloat(filled.InexactFloat64(), amountPrecision),
		Price:        rateAsNumber(info.Rate),
		OrderDate:    model.MakeTimestampFromUnixSeconds(info.TimestampCreated),
		State:        model.ResolveOrderState(amount.InexactFloat64(), filled.InexactFloat64()),
	}, nil
}

// parseCompletedOrder normalizes one TradeHistory entry. Completed orders are
// fully executed, so the filled amount equals the total.
func parseCompletedOrder(entryID string, co yobitCompletedOrder) (*model.Order, error) {
	if co.Amount == nil {
		return nil, fmt.Errorf("completed order '%s' is missing required numeric field 'amount'", entryID)
	}

	orderID := entryID
	if co.OrderID != 0 {
		orderID = fmt.Sprintf("%d", co.OrderID)
	}

	amount := co.Amount.InexactFloat64()
	return &model.Order{
		ID:           orderID,
		Symbol:       co.Pair,
		Action:       model.OrderActionFromString(co.Type),
		Amount:       model.NumberFromFloat(amount, amountPrecision),
		AmountFilled: model.NumberFromFloat(amount, amountPrecision),
		Price:        rateAsNumber(co.Rate),
		OrderDate:    model.MakeTimestampFromUnixSeconds(co.Timestamp),
		State:        model.ResolveOrderState(amount, amount),
	}, nil
}

func rateAsNumber(rate *decimal.Decimal) *model.Number {
	if rate == nil {
		return model.NumberFromFloat(0, pricePrecision)
	}
	return model.NumberFromFloat(rate.InexactFloat64(), pricePrecision)
}
