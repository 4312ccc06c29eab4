package api

import "fmt"

// ErrNotSupported indicates an operation that has no equivalent on the exchange.
// It is surfaced immediately and should never be retried.
type ErrNotSupported struct {
	Operation string
}

// MakeErrNotSupported is a factory method
func MakeErrNotSupported(operation string) *ErrNotSupported {
	return &ErrNotSupported{Operation: operation}
}

// Error impl.
func (e *ErrNotSupported) Error() string {
	return fmt.Sprintf("%s: operation is not supported by this exchange", e.Operation)
}

// ErrInvalidArgument indicates a required parameter was missing or unusable for
// an operation the exchange cannot service without it.
type ErrInvalidArgument struct {
	Operation string
	Reason    string
}

// MakeErrInvalidArgument is a factory method
func MakeErrInvalidArgument(operation string, reason string) *ErrInvalidArgument {
	return &ErrInvalidArgument{Operation: operation, Reason: reason}
}

// Error impl.
func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("%s: invalid argument: %s", e.Operation, e.Reason)
}

// ErrNonceExhausted indicates the nonce would overflow the exchange's accepted
// range. This is fatal for the current credentials: the API key must be rotated,
// the nonce must never be wrapped or reset.
type ErrNonceExhausted struct{}

// MakeErrNonceExhausted is a factory method
func MakeErrNonceExhausted() *ErrNonceExhausted {
	return &ErrNonceExhausted{}
}

// Error impl.
func (e *ErrNonceExhausted) Error() string {
	return "nonce space exhausted for this API key, rotate to a new key"
}

// ErrMalformedResponse indicates an exchange response that is missing a required
// field, carries a non-numeric value where a number was required, or contains a
// pair identifier that does not split into exactly two tokens.
type ErrMalformedResponse struct {
	Operation string
	Reason    string
}

// MakeErrMalformedResponse is a factory method
func MakeErrMalformedResponse(operation string, reason string) *ErrMalformedResponse {
	return &ErrMalformedResponse{Operation: operation, Reason: reason}
}

// Error impl.
func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("%s: malformed response from exchange: %s", e.Operation, e.Reason)
}

// ErrRemoteRejected indicates a non-2xx status or an exchange-level error
// payload. Message carries the raw exchange error text where available.
type ErrRemoteRejected struct {
	Operation  string
	StatusCode int
	Message    string
}

// MakeErrRemoteRejected is a factory method
func MakeErrRemoteRejected(operation string, statusCode int, message string) *ErrRemoteRejected {
	return &ErrRemoteRejected{Operation: operation, StatusCode: statusCode, Message: message}
}

// Error impl.
func (e *ErrRemoteRejected) Error() string {
	return fmt.Sprintf("%s: rejected by exchange (status %d): %s", e.Operation, e.StatusCode, e.Message)
}
