package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/session"
)

func newTestClient(t *testing.T, base string, next http.RoundTripper) (*http.Client, *session.Session) {
	t.Helper()
	sess := session.New(session.NewMemory())
	api := NewAPI(sess, time.Millisecond)
	return &http.Client{Transport: NewTransport(api, base, next)}, sess
}

func TestRoundTripMatchedSuccess(t *testing.T) {
	client, _ := newTestClient(t, "/api", nil)

	body, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	resp, err := client.Post("http://backend/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var envelope struct {
		Data struct {
			Token string   `json:"token"`
			User  MockUser `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotEmpty(t, envelope.Data.Token)
	require.Equal(t, "admin", envelope.Data.User.Role)
}

func TestRoundTripGeneratorFailure(t *testing.T) {
	client, _ := newTestClient(t, "/api", nil)

	body, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "nope",
	})
	resp, err := client.Post("http://backend/api/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err, "generator failures travel as HTTP responses, not transport errors")
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var payload struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "invalid credentials", payload.Message)
}

func TestRoundTripFallsThroughToRealTransport(t *testing.T) {
	hit := false
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"status":"real"}}`))
	}))
	defer backend.Close()

	client, _ := newTestClient(t, backend.URL+"/api", nil)

	// /admin/orders is not in the mock table, so the call reaches the server.
	resp, err := client.Get(backend.URL + "/api/admin/orders")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.True(t, hit)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoundTripMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, "/api", nil)

	resp, err := client.Post("http://backend/api/auth/login", "application/json",
		bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
