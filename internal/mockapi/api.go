package mockapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/session"
)

// DefaultDelay simulates network latency before every generator runs.
const DefaultDelay = 500 * time.Millisecond

// Generator is the shared contract of every mock endpoint: already-parsed
// positional arguments in, payload or *Error out.
type Generator func(ctx context.Context, args ...any) (any, error)

// API owns the seed data and the token registry the generators validate
// against. The session is the same store the interceptors read, so a token
// persisted after login is what Me and Dashboard check for.
type API struct {
	mu       sync.Mutex
	users    []seedUser
	sessions map[string]MockUser

	session *session.Session
	delay   time.Duration
}

func NewAPI(sess *session.Session, delay time.Duration) *API {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &API{
		users:    seedUsers(),
		sessions: make(map[string]MockUser),
		session:  sess,
		delay:    delay,
	}
}

func (a *API) wait(ctx context.Context) error {
	select {
	case <-time.After(a.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newToken() string {
	return "mock-token-" + uuid.NewString()
}

func argString(args []any, i int) string {
	if i < len(args) {
		if s, ok := args[i].(string); ok {
			return s
		}
	}
	return ""
}

func argMap(args []any) map[string]any {
	if len(args) > 0 {
		if m, ok := args[0].(map[string]any); ok {
			return m
		}
	}
	return map[string]any{}
}

// Login expects (email, password) and only accepts seeded pairs.
func (a *API) Login(ctx context.Context, args ...any) (any, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	email, password := argString(args, 0), argString(args, 1)

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, u := range a.users {
		if u.Email == email && u.Password == password {
			token := newToken()
			a.sessions[token] = u.MockUser
			return map[string]any{"token": token, "user": u.MockUser}, nil
		}
	}
	return nil, NewError(http.StatusUnauthorized, "invalid credentials")
}

// Register expects the full body and rejects already-seeded emails.
func (a *API) Register(ctx context.Context, args ...any) (any, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}

	var req struct {
		Name     string
		Email    string
		Phone    string
		Password string
	}
	if err := mapstructure.Decode(argMap(args), &req); err != nil {
		return nil, NewError(http.StatusBadRequest, "malformed request")
	}
	if req.Email == "" || req.Password == "" {
		return nil, NewError(http.StatusBadRequest, "email and password are required")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, u := range a.users {
		if u.Email == req.Email {
			return nil, NewError(http.StatusBadRequest, "email already registered")
		}
	}

	user := seedUser{
		MockUser: MockUser{
			ID:        uint(len(a.users) + 1),
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Role:      "user",
			CreatedAt: time.Now(),
		},
		Password: req.Password,
	}
	a.users = append(a.users, user)

	token := newToken()
	a.sessions[token] = user.MockUser
	return map[string]any{"token": token, "user": user.MockUser}, nil
}

// Me resolves the token currently persisted in the session store.
func (a *API) Me(ctx context.Context, args ...any) (any, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	token := a.session.Token()
	if token == "" {
		return nil, NewError(http.StatusUnauthorized, "missing token")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	user, ok := a.sessions[token]
	if !ok {
		return nil, NewError(http.StatusUnauthorized, "invalid token")
	}
	return map[string]any{"user": user}, nil
}

func (a *API) ForgotPassword(ctx context.Context, args ...any) (any, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	email, _ := argMap(args)["email"].(string)

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, u := range a.users {
		if u.Email == email {
			return map[string]any{"message": "password reset instructions sent"}, nil
		}
	}
	return nil, NewError(http.StatusNotFound, "email not found")
}

// Logout always succeeds; clearing the stored session is the caller's job.
func (a *API) Logout(ctx context.Context, args ...any) (any, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	return map[string]any{"message": "logged out"}, nil
}

func (a *API) Dashboard(ctx context.Context, args ...any) (any, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	if a.session.Token() == "" {
		return nil, NewError(http.StatusUnauthorized, "missing token")
	}
	return seedDashboard(), nil
}

func (a *API) Services(ctx context.Context, args ...any) (any, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	return seedServices(), nil
}

func (a *API) Pricing(ctx context.Context, args ...any) (any, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	return seedPricing(), nil
}

// Contact echoes a confirmation; the submitted content is not persisted.
func (a *API) Contact(ctx context.Context, args ...any) (any, error) {
	if err := a.wait(ctx); err != nil {
		return nil, err
	}
	return map[string]any{"message": "thank you for contacting us, we will reply shortly"}, nil
}
