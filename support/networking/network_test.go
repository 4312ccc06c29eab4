package networking

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONRequest_Ok(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value": 42}`))
	}))
	defer ts.Close()

	var response struct {
		Value int `json:"value"`
	}
	e := JSONRequest(http.DefaultClient, http.MethodGet, ts.URL, "", nil, &response, "")

	assert.NoError(t, e)
	assert.Equal(t, 42, response.Value)
}

func TestJSONRequest_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer ts.Close()

	e := JSONRequest(http.DefaultClient, http.MethodGet, ts.URL, "", nil, nil, "")

	var remote *ErrRemote
	if !assert.True(t, errors.As(e, &remote), "expected ErrRemote, got %v", e) {
		return
	}
	assert.Equal(t, http.StatusInternalServerError, remote.StatusCode)
	assert.Equal(t, "boom", remote.Message)
}

func TestJSONRequest_ErrorKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": 0, "error": "invalid pair name"}`))
	}))
	defer ts.Close()

	e := JSONRequest(http.DefaultClient, http.MethodGet, ts.URL, "", nil, nil, "error")

	var remote *ErrRemote
	if !assert.True(t, errors.As(e, &remote), "expected ErrRemote, got %v", e) {
		return
	}
	assert.Equal(t, "invalid pair name", remote.Message)
}

func TestJSONRequest_BadContentType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html></html>"))
	}))
	defer ts.Close()

	e := JSONRequest(http.DefaultClient, http.MethodGet, ts.URL, "", nil, nil, "")

	var dec *ErrDecode
	assert.True(t, errors.As(e, &dec), "expected ErrDecode, got %v", e)
}

func TestJSONRequest_BadBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not json`))
	}))
	defer ts.Close()

	var response map[string]interface{}
	e := JSONRequest(http.DefaultClient, http.MethodGet, ts.URL, "", nil, &response, "")

	var dec *ErrDecode
	assert.True(t, errors.As(e, &dec), "expected ErrDecode, got %v", e)
}

func TestJSONRequest_Headers(t *testing.T) {
	var gotKey, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Key")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	headers := map[string]string{
		"Key":          "public-key",
		"Content-Type": "application/x-www-form-urlencoded",
	}
	e := JSONRequest(http.DefaultClient, http.MethodPost, ts.URL, "method=getInfo&nonce=1", headers, nil, "")

	assert.NoError(t, e)
	assert.Equal(t, "public-key", gotKey)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
}
