package api

import "math"

// MaxNonce is the largest nonce value the exchange accepts. The exchange treats
// the nonce as a signed 32-bit integer; exceeding this permanently invalidates
// the API key, so stores must fail with ErrNonceExhausted before crossing it.
const MaxNonce int64 = math.MaxInt32

// NonceStore hands out the strictly increasing integer nonce consumed by each
// authenticated request. Implementations must commit the new value to durable
// storage before returning it, so that a crash between Next and the network
// send can never lead to nonce reuse. Callers must serialize the span from
// Next through request dispatch: at most one authenticated request may hold an
// unsent nonce at a time.
type NonceStore interface {
	Next() (int64, error)
}
