package networking

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// ErrRemote is returned for a non-2xx status or an exchange-level error payload
type ErrRemote struct {
	StatusCode int
	Message    string
}

// Error impl.
func (e *ErrRemote) Error() string {
	return fmt.Sprintf("remote error (status %d): %s", e.StatusCode, e.Message)
}

// ErrDecode is returned when the response body could not be decoded as the expected JSON
type ErrDecode struct {
	Reason string
}

// Error impl.
func (e *ErrDecode) Error() string {
	return fmt.Sprintf("could not decode response: %s", e.Reason)
}

// JSONRequest submits an HTTP web request and parses the response into the responseData object as JSON
func JSONRequest(
	httpClient *http.Client,
	method string,
	reqURL string,
	data string,
	headers map[string]string,
	responseData interface{}, // the passed in responseData should be a pointer
	errorKey string,
) error {
	// create http request
	req, e := http.NewRequest(method, reqURL, strings.NewReader(data))
	if e != nil {
		return fmt.Errorf("could not create http request: %s", e)
	}

	// add headers
	for key, value := range headers {
		req.Header.Add(key, value)
	}

	// execute request
	resp, e := httpClient.Do(req)
	if e != nil {
		return fmt.Errorf("could not execute http request: %s", e)
	}
	defer resp.Body.Close()

	// read response
	body, e := io.ReadAll(resp.Body)
	if e != nil {
		return fmt.Errorf("could not read http response: %s", e)
	}
	bodyString := string(body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ErrRemote{StatusCode: resp.StatusCode, Message: bodyString}
	}

	// ensure Content-Type is json
	contentType, _, e := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if e != nil {
		return &ErrDecode{Reason: fmt.Sprintf("could not read 'Content-Type' header in http response: %s | response body: %s", e, bodyString)}
	}
	if contentType != "application/json" {
		return &ErrDecode{Reason: fmt.Sprintf("invalid 'Content-Type' header in http response ('%s'), expecting 'application/json', response body: %s", contentType, bodyString)}
	}

	if errorKey != "" {
		var errorResponse interface{}
		e = json.Unmarshal(body, &errorResponse)
		if e != nil {
			return &ErrDecode{Reason: fmt.Sprintf("could not unmarshal response body to check for an error response: %s | response body: %s", e, bodyString)}
		}

		switch er := errorResponse.(type) {
		case map[string]interface{}:
			if errValue, ok := er[errorKey]; ok {
				return &ErrRemote{StatusCode: resp.StatusCode, Message: fmt.Sprintf("%v", errValue)}
			}
		}
	}

	if responseData != nil {
		// parse response, the passed in responseData should be a pointer
		e = json.Unmarshal(body, responseData)
		if e != nil {
			return &ErrDecode{Reason: fmt.Sprintf("could not unmarshal response body into json: %s | response body: %s", e, bodyString)}
		}
	}

	return nil
}
