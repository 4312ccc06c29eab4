package plugins

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/tradeforge/yobit/api"
)

// payload is an ordered field->value mapping destined for an authenticated
// request body. Insertion order is preserved through encoding because it
// changes the signature the exchange verifies; url.Values is unusable here
// since its Encode sorts keys.
type payload struct {
	fields []payloadField
}

type payloadField struct {
	key   string
	value string
}

// makePayload is a factory method
func makePayload() *payload {
	return &payload{}
}

func (p *payload) add(key string, value string) *payload {
	p.fields = append(p.fields, payloadField{key: key, value: value})
	return p
}

// encode renders the form-encoded body, fields in insertion order
func (p *payload) encode() string {
	var sb strings.Builder
	for i, f := range p.fields {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(f.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(f.value))
	}
	return sb.String()
}

// signedRequest is the authenticated request produced by the signer
type signedRequest struct {
	headers map[string]string
	body    string
}

// requestSigner builds signed trade-API requests. It holds the credentials for
// the adapter's lifetime and is otherwise stateless: signing mutates nothing
// and identical inputs always produce the identical signature.
type requestSigner struct {
	apiKey api.ExchangeAPIKey
}

// makeRequestSigner is a factory method
func makeRequestSigner(apiKey api.ExchangeAPIKey) *requestSigner {
	return &requestSigner{apiKey: apiKey}
}

// sign form-encodes the payload and signs it with HMAC-SHA512 keyed on the
// private key, rendered as lowercase hex in the Sign header. The payload must
// already include the method and nonce fields.
func (s *requestSigner) sign(p *payload) *signedRequest {
	body := p.encode()

	mac := hmac.New(sha512.New, []byte(s.apiKey.Secret))
	mac.Write([]byte(body))

	return &signedRequest{
		headers: map[string]string{
			"Key":          s.apiKey.Key,
			"Sign":         hex.EncodeToString(mac.Sum(nil)),
			"Content-Type": "application/x-www-form-urlencoded",
		},
		body: body,
	}
}
