package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/mockapi"
	"github.com/CT070144/HostingWebsite-FE-sub001/internal/session"
)

type Config struct {
	// BaseURL is the API origin plus base path, e.g. http://host/api.
	BaseURL   string
	AssetHost string

	// UseMock swaps the network for the mock transport; unmatched routes
	// still fall through to the real transport.
	UseMock   bool
	MockDelay time.Duration

	Session   *session.Session
	Navigator Navigator

	// Transport overrides the underlying real transport (tests).
	Transport http.RoundTripper
	Timeout   time.Duration
}

// Client is the typed surface the screens call instead of touching HTTP.
type Client struct {
	baseURL   string
	assetHost string
	session   *session.Session
	http      *http.Client
}

func New(cfg Config) *Client {
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if cfg.UseMock {
		api := mockapi.NewAPI(cfg.Session, cfg.MockDelay)
		transport = mockapi.NewTransport(api, cfg.BaseURL, transport)
	}
	transport = &authTransport{next: transport, session: cfg.Session, nav: cfg.Navigator}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		assetHost: cfg.AssetHost,
		session:   cfg.Session,
		http:      &http.Client{Transport: transport, Timeout: timeout},
	}
}

// Session exposes the injected session context (route guards read it).
func (c *Client) Session() *session.Session { return c.session }

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("api: decode payload: %w", err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) putJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out)
}

func (c *Client) deleteJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

// sendMultipart posts form fields plus an optional image part, for the admin
// slide/banner upload endpoints.
func (c *Client) sendMultipart(ctx context.Context, method, path string, fields map[string]string, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("api: write field %s: %w", k, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile("image", filename)
		if err != nil {
			return fmt.Errorf("api: create file part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("api: copy file part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.do(ctx, method, path, &buf, w.FormDataContentType(), out)
}

type messagePayload struct {
	Message string `json:"message"`
}
