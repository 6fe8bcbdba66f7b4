package mockapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Transport is an http.RoundTripper that answers matched requests from the
// generators and hands everything else to the real transport, so an
// environment can mix mocked and real endpoints.
type Transport struct {
	router *Router
	next   http.RoundTripper
}

func NewTransport(api *API, base string, next http.RoundTripper) *Transport {
	return &Transport{
		router: NewRouter(base, api),
		next:   next,
	}
}

func (t *Transport) real() http.RoundTripper {
	if t.next != nil {
		return t.next
	}
	return http.DefaultTransport
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt, ok := t.router.Match(req.Method, req.URL.String())
	if !ok {
		return t.real().RoundTrip(req)
	}

	args, err := extractArgs(req, rt.mode)
	if err != nil {
		return synthesize(req, http.StatusBadRequest, map[string]any{"message": "malformed request body"})
	}

	payload, err := rt.gen(req.Context(), args...)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return synthesize(req, apiErr.Status, map[string]any{"message": apiErr.Message})
		}
		// Context cancellation and the like surface as transport errors,
		// exactly as a real aborted call would.
		return nil, err
	}

	return synthesize(req, http.StatusOK, map[string]any{"data": payload})
}

func extractArgs(req *http.Request, mode argMode) ([]any, error) {
	if mode == argNone {
		return nil, nil
	}

	body := map[string]any{}
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &body); err != nil {
				return nil, err
			}
		}
	}

	switch mode {
	case argCredentials:
		email, _ := body["email"].(string)
		password, _ := body["password"].(string)
		return []any{email, password}, nil
	default:
		return []any{body}, nil
	}
}

// synthesize builds a response indistinguishable from a decoded network
// reply: JSON content type, the given status, and a readable body.
func synthesize(req *http.Request, status int, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("mockapi: marshal response: %w", err)
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentLength: int64(len(data)),
		Request:       req,
	}, nil
}
