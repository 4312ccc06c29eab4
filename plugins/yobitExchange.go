package plugins

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tradeforge/yobit/api"
	"github.com/tradeforge/yobit/model"
	"github.com/tradeforge/yobit/support/networking"
)

// ensure that yobitExchange conforms to the Exchange interface
var _ api.Exchange = &yobitExchange{}

const yobitPublicAPIURL = "https://yobit.net/api/3"
const yobitTradeAPIURL = "https://yobit.net/tapi"

const pricePrecision = 8
const amountPrecision = 8
const balancePrecision = 8
const feePrecision = 4

// recentTradesLimit is fixed at a small count so results stay comparable across exchanges
const recentTradesLimit = 10

// tradeHistoryLimit is the largest window the exchange serves; it offers no server-side date filtering
const tradeHistoryLimit = 2000

// yobitExchange is the implementation for the Yobit Exchange
type yobitExchange struct {
	apiKey     api.ExchangeAPIKey
	httpClient *http.Client
	baseURL    string
	tradeURL   string
	signer     *requestSigner
	nonces     api.NonceStore
	l          *logrus.Entry

	// authMu guards the span from nonce reservation through request dispatch,
	// so at most one authenticated request holds an unsent nonce at a time.
	// Public calls carry no shared state and run without it.
	authMu sync.Mutex
}

// makeYobitExchange is a factory method to make the yobit exchange
func makeYobitExchange(apiKey api.ExchangeAPIKey, nonces api.NonceStore) (api.Exchange, error) {
	if nonces == nil {
		return nil, fmt.Errorf("yobit exchange requires a nonce store for authenticated requests")
	}

	return &yobitExchange{
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
		baseURL:    yobitPublicAPIURL,
		tradeURL:   yobitTradeAPIURL,
		signer:     makeRequestSigner(apiKey),
		nonces:     nonces,
		l:          logrus.WithField("exchange", "yobit"),
	}, nil
}

// queryPublic runs an unauthenticated GET against the public API
func (y *yobitExchange) queryPublic(operation string, path string, responseData interface{}, errorKey string) error {
	return y.convertError(operation, networking.JSONRequest(y.httpClient, http.MethodGet, y.baseURL+path, "", nil, responseData, errorKey))
}

// queryPrivate runs a signed POST against the trade API and unwraps the
// response envelope. The mutex spans nonce reservation, the durable persist
// inside the store, signing, and dispatch.
func (y *yobitExchange) queryPrivate(operation string, method string, params *payload) (json.RawMessage, error) {
	y.authMu.Lock()
	defer y.authMu.Unlock()

	n, e := y.nonces.Next()
	if e != nil {
		return nil, e
	}

	body := makePayload().add("method", method).add("nonce", strconv.FormatInt(n, 10))
	for _, f := range params.fields {
		body.add(f.key, f.value)
	}
	signed := y.signer.sign(body)

	y.l.WithField("method", method).Debug("submitting authenticated request")

	var envelope tapiEnvelope
	e = networking.JSONRequest(y.httpClient, http.MethodPost, y.tradeURL, signed.body, signed.headers, &envelope, "")
	if e != nil {
		return nil, y.convertError(operation, e)
	}

	if envelope.Success != 1 {
		return nil, api.MakeErrRemoteRejected(operation, http.StatusOK, envelope.Error)
	}
	return envelope.Return, nil
}

// convertError maps transport-level failures onto the adapter's error taxonomy
func (y *yobitExchange) convertError(operation string, e error) error {
	if e == nil {
		return nil
	}

	var remote *networking.ErrRemote
	if errors.As(e, &remote) {
		return api.MakeErrRemoteRejected(operation, remote.StatusCode, remote.Message)
	}

	var dec *networking.ErrDecode
	if errors.As(e, &dec) {
		return api.MakeErrMalformedResponse(operation, dec.Reason)
	}

	return fmt.Errorf("%s: %s", operation, e)
}

// GetMarketSymbols impl.
func (y *yobitExchange) GetMarketSymbols() ([]string, error) {
	var info yobitInfoResponse
	if e := y.queryPublic("GetMarketSymbols", "/info", &info, "error"); e != nil {
		return nil, e
	}

	symbols := make([]string, 0, len(info.Pairs))
	for symbol := range info.Pairs {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols, nil
}

// GetMarkets impl.
func (y *yobitExchange) GetMarkets() ([]model.Market, error) {
	var info yobitInfoResponse
	if e := y.queryPublic("GetMarkets", "/info", &info, "error"); e != nil {
		return nil, e
	}

	markets := make([]model.Market, 0, len(info.Pairs))
	for symbol, pairInfo := range info.Pairs {
		market, e := parseMarket(symbol, pairInfo)
		if e != nil {
			return nil, api.MakeErrMalformedResponse("GetMarkets", e.Error())
		}
		markets = append(markets, *market)
	}

	sort.Slice(markets, func(i, j int) bool { return markets[i].Symbol < markets[j].Symbol })
	return markets, nil
}

// GetCurrencies impl., the exchange has no currency metadata endpoint
func (y *yobitExchange) GetCurrencies() ([]model.Currency, error) {
	return nil, api.MakeErrNotSupported("GetCurrencies")
}

// GetTicker impl. Returns (nil, nil) when the response carries no entry for
// the symbol, which is the exchange's convention for an unknown or empty pair.
func (y *yobitExchange) GetTicker(symbol string) (*model.Ticker, error) {
	var raw map[string]json.RawMessage
	if e := y.queryPublic("GetTicker", "/ticker/"+symbol, &raw, ""); e != nil {
		return nil, e
	}

	data, ok := raw[symbol]
	if !ok {
		return nil, nil
	}

	var tk yobitTicker
	if e := json.Unmarshal(data, &tk); e != nil {
		return nil, api.MakeErrMalformedResponse("GetTicker", e.Error())
	}

	ticker, e := parseTicker(symbol, tk)
	if e != nil {
		return nil, api.MakeErrMalformedResponse("GetTicker", e.Error())
	}
	return ticker, nil
}

// GetTickers impl. The exchange's bulk ticker call stops fitting in a URL once
// the symbol universe grows, so this degrades to one remote call per symbol.
// For the full universe that is O(thousands) of calls and can take on the
// order of an hour; that is a documented limitation of the exchange, not
// something to paper over here.
func (y *yobitExchange) GetTickers() (map[string]model.Ticker, error) {
	symbols, e := y.GetMarketSymbols()
	if e != nil {
		return nil, e
	}

	y.l.Warnf("fetching tickers one symbol at a time for %d symbols; this can take on the order of an hour", len(symbols))

	tickers := map[string]model.Ticker{}
	for _, symbol := range symbols {
		ticker, e := y.GetTicker(symbol)
		if e != nil {
			return nil, e
		}
		if ticker == nil {
			continue
		}
		tickers[symbol] = *ticker
	}
	return tickers, nil
}

// GetOrderBook impl.
func (y *yobitExchange) GetOrderBook(symbol string, maxCount int32) (*model.OrderBook, error) {
	pair, e := model.TradingPairFromNative(symbol)
	if e != nil {
		return nil, api.MakeErrInvalidArgument("GetOrderBook", e.Error())
	}

	var raw map[string]yobitDepth
	path := fmt.Sprintf("/depth/%s?limit=%d", symbol, maxCount)
	if e := y.queryPublic("GetOrderBook", path, &raw, "error"); e != nil {
		return nil, e
	}

	depth, ok := raw[symbol]
	if !ok {
		return nil, api.MakeErrMalformedResponse("GetOrderBook", fmt.Sprintf("response carried no depth for pair '%s'", symbol))
	}

	asks, e := parseSideLevels(depth.Asks)
	if e != nil {
		return nil, api.MakeErrMalformedResponse("GetOrderBook", e.Error())
	}
	bids, e := parseSideLevels(depth.Bids)
	if e != nil {
		return nil, api.MakeErrMalformedResponse("GetOrderBook", e.Error())
	}
	return model.MakeOrderBook(pair, asks, bids), nil
}

// GetRecentTrades impl.
func (y *yobitExchange) GetRecentTrades(symbol string) ([]model.Trade, error) {
	return y.getTrades("GetRecentTrades", symbol, recentTradesLimit)
}

func (y *yobitExchange) getTrades(operation string, symbol string, limit int) ([]model.Trade, error) {
	var raw map[string][]yobitTrade
	path := fmt.Sprintf("/trades/%s?limit=%d", symbol, limit)
	if e := y.queryPublic(operation, path, &raw, "error"); e != nil {
		return nil, e
	}

	trades := []model.Trade{}
	for _, t := range raw[symbol] {
		trades = append(trades, *parseTrade(t))
	}
	return trades, nil
}

// GetTradeHistory impl. Fetches the maximum window the exchange serves and
// filters by startTime locally. endTime is accepted but not applied; the
// exchange cannot filter server-side and the upstream behavior never filtered
// the tail locally either, so that gap is kept and documented rather than
// silently changed.
func (y *yobitExchange) GetTradeHistory(symbol string, startTime *time.Time, endTime *time.Time, consumer api.TradeConsumer) error {
	if consumer == nil {
		return api.MakeErrInvalidArgument("GetTradeHistory", "a trade consumer is required")
	}

	trades, e := y.getTrades("GetTradeHistory", symbol, tradeHistoryLimit)
	if e != nil {
		return e
	}

	filtered := trades
	if startTime != nil {
		filtered = []model.Trade{}
		for _, t := range trades {
			if t.Timestamp.AsTime().Before(*startTime) {
				continue
			}
			filtered = append(filtered, t)
		}
	}
	return consumer(filtered)
}

// GetCandles impl., the exchange has no candle endpoint and no local aggregation is attempted
func (y *yobitExchange) GetCandles(symbol string, granularitySeconds int32) ([]model.Candle, error) {
	return nil, api.MakeErrNotSupported("GetCandles")
}

// GetAccountBalances impl.
func (y *yobitExchange) GetAccountBalances() (map[model.Asset]model.Number, error) {
	return y.getBalances("GetAccountBalances", true)
}

// GetTradableBalances impl.
func (y *yobitExchange) GetTradableBalances() (map[model.Asset]model.Number, error) {
	return y.getBalances("GetTradableBalances", false)
}

// getBalances reads one of the two balance maps getInfo returns: funds holds
// the amounts free to trade, funds_incl_orders additionally counts amounts
// reserved in open orders. Zero and negative entries are excluded by policy.
func (y *yobitExchange) getBalances(operation string, includeOrders bool) (map[model.Asset]model.Number, error) {
	ret, e := y.queryPrivate(operation, "getInfo", makePayload())
	if e != nil {
		return nil, e
	}

	var funds yobitFundsResponse
	if e := json.Unmarshal(ret, &funds); e != nil {
		return nil, api.MakeErrMalformedResponse(operation, e.Error())
	}

	source := funds.Funds
	if includeOrders {
		source = funds.FundsInclOrders
	}

	balances := map[model.Asset]model.Number{}
	for code, amount := range source {
		if amount.Sign() <= 0 {
			continue
		}
		balances[model.AssetFromNative(code)] = *model.NumberFromFloat(amount.InexactFloat64(), balancePrecision)
	}
	return balances, nil
}

// GetOrderDetails impl.
func (y *yobitExchange) GetOrderDetails(orderID string) (*model.Order, error) {
	if orderID == "" {
		return nil, api.MakeErrInvalidArgument("GetOrderDetails", "an order ID is required")
	}

	ret, e := y.queryPrivate("GetOrderDetails", "getInfo", makePayload().add("order_id", orderID))
	if e != nil {
		return nil, e
	}

	var raw map[string]yobitOrderInfo
	if e := json.Unmarshal(ret, &raw); e != nil {
		return nil, api.MakeErrMalformedResponse("GetOrderDetails", e.Error())
	}

	info, ok := raw[orderID]
	if !ok {
		return nil, api.MakeErrMalformedResponse("GetOrderDetails", fmt.Sprintf("response carried no order '%s'", orderID))
	}

	order, e := parseOrderInfo(orderID, info)
	if e != nil {
		return nil, api.MakeErrMalformedResponse("GetOrderDetails", e.Error())
	}
	return order, nil
}

// GetCompletedOrders impl. The exchange cannot query completed orders across
// all symbols in one call, so the symbol is required.
func (y *yobitExchange) GetCompletedOrders(symbol string, since *time.Time) ([]model.Order, error) {
	if symbol == "" {
		return nil, api.MakeErrInvalidArgument("GetCompletedOrders", "a symbol is required")
	}

	params := makePayload().add("pair", symbol)
	if since != nil {
		params.add("since", strconv.FormatInt(since.Unix(), 10))
	}

	ret, e := y.queryPrivate("GetCompletedOrders", "TradeHistory", params)
	if e != nil {
		return nil, e
	}

	var raw map[string]yobitCompletedOrder
	if e := json.Unmarshal(ret, &raw); e != nil {
		return nil, api.MakeErrMalformedResponse("GetCompletedOrders", e.Error())
	}

	orders := []model.Order{}
	for entryID, co := range raw {
		order, e := parseCompletedOrder(entryID, co)
		if e != nil {
			return nil, api.MakeErrMalformedResponse("GetCompletedOrders", e.Error())
		}
		orders = append(orders, *order)
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

// GetOpenOrders impl. Each exchange order maps to exactly one result entry.
func (y *yobitExchange) GetOpenOrders(symbol string) ([]model.Order, error) {
	if symbol == "" {
		return nil, api.MakeErrInvalidArgument("GetOpenOrders", "a symbol is required")
	}

	ret, e := y.queryPrivate("GetOpenOrders", "ActiveOrders", makePayload().add("pair", symbol))
	if e != nil {
		return nil, e
	}

	var raw map[string]yobitOrderInfo
	if e := json.Unmarshal(ret, &raw); e != nil {
		return nil, api.MakeErrMalformedResponse("GetOpenOrders", e.Error())
	}

	orders := []model.Order{}
	for orderID, info := range raw {
		order, e := parseOrderInfo(orderID, info)
		if e != nil {
			return nil, api.MakeErrMalformedResponse("GetOpenOrders", e.Error())
		}
		orders = append(orders, *order)
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

// AddOrder impl. The exchange does not echo a creation timestamp, so the order
// date is stamped locally at response time.
func (y *yobitExchange) AddOrder(request *model.OrderRequest) (*model.Order, error) {
	if request == nil {
		return nil, api.MakeErrInvalidArgument("AddOrder", "an order request is required")
	}
	if request.Symbol == "" {
		return nil, api.MakeErrInvalidArgument("AddOrder", "a symbol is required")
	}
	if request.Price == nil || request.Amount == nil {
		return nil, api.MakeErrInvalidArgument("AddOrder", "price and amount are required")
	}

	params := makePayload().
		add("pair", request.Symbol).
		add("type", request.Action.String()).
		add("rate", request.Price.AsString()).
		add("amount", request.Amount.AsString())

	// merge caller-supplied params in a stable order so the signature is deterministic
	extraKeys := make([]string, 0, len(request.ExtraParams))
	for k := range request.ExtraParams {
		extraKeys = append(extraKeys, k)
	}
	sort.Strings(extraKeys)
	for _, k := range extraKeys {
		params.add(k, request.ExtraParams[k])
	}

	ret, e := y.queryPrivate("AddOrder", "Trade", params)
	if e != nil {
		return nil, e
	}

	var result yobitTradeResult
	if e := json.Unmarshal(ret, &result); e != nil {
		return nil, api.MakeErrMalformedResponse("AddOrder", e.Error())
	}

	amount := result.Received.Add(result.Remains)
	filled := result.Received

	return &model.Order{
		ID:           strconv.FormatInt(result.OrderID, 10),
		Symbol:       request.Symbol,
		Action:       request.Action,
		Amount:       model.NumberFromFloat(amount.InexactFloat64(), amountPrecision),
		AmountFilled: model.NumberFromFloat(filled.InexactFloat64(), amountPrecision),
		Price:        request.Price,
		OrderDate:    model.MakeTimestampFromTime(time.Now()),
		State:        model.ResolveOrderState(amount.InexactFloat64(), filled.InexactFloat64()),
	}, nil
}

// CancelOrder impl. Fire-and-forget: nothing in the response is parsed beyond
// the envelope's success flag.
func (y *yobitExchange) CancelOrder(orderID string) error {
	if orderID == "" {
		return api.MakeErrInvalidArgument("CancelOrder", "an order ID is required")
	}

	_, e := y.queryPrivate("CancelOrder", "CancelOrder", makePayload().add("order_id", orderID))
	return e
}

// GetDepositHistory impl., the exchange has no deposit history endpoint
func (y *yobitExchange) GetDepositHistory(symbol string) ([]model.FundingRecord, error) {
	return nil, api.MakeErrNotSupported("GetDepositHistory")
}

// GetDepositAddress impl.
func (y *yobitExchange) GetDepositAddress(symbol string, forceRegenerate bool) (*model.DepositDetails, error) {
	if symbol == "" {
		return nil, api.MakeErrInvalidArgument("GetDepositAddress", "a symbol is required")
	}

	needNew := "0"
	if forceRegenerate {
		needNew = "1"
	}

	ret, e := y.queryPrivate("GetDepositAddress", "GetDepositAddress", makePayload().
		add("coinName", model.AssetFromNative(symbol).String()).
		add("need_new", needNew))
	if e != nil {
		return nil, e
	}

	var resp yobitDepositAddress
	if e := json.Unmarshal(ret, &resp); e != nil {
		return nil, api.MakeErrMalformedResponse("GetDepositAddress", e.Error())
	}
	if resp.Address == "" {
		return nil, api.MakeErrMalformedResponse("GetDepositAddress", "response carried no address")
	}

	return &model.DepositDetails{Address: resp.Address, Symbol: symbol}, nil
}

// Withdraw impl. The exchange's response body carries nothing worth
// validating, so success means the call itself did not fail at the transport
// or envelope level. Known limitation, kept as documented behavior.
func (y *yobitExchange) Withdraw(request *model.WithdrawRequest) (*model.WithdrawalResponse, error) {
	if request == nil {
		return nil, api.MakeErrInvalidArgument("Withdraw", "a withdraw request is required")
	}
	if request.Symbol == "" || request.Address == "" {
		return nil, api.MakeErrInvalidArgument("Withdraw", "a symbol and address are required")
	}
	if request.Amount == nil {
		return nil, api.MakeErrInvalidArgument("Withdraw", "an amount is required")
	}

	_, e := y.queryPrivate("Withdraw", "WithdrawCoinsToAddress", makePayload().
		add("coinName", model.AssetFromNative(request.Symbol).String()).
		add("amount", request.Amount.AsString()).
		add("address", request.Address))
	if e != nil {
		return nil, e
	}

	return &model.WithdrawalResponse{Success: true}, nil
}
