package session

import (
	"encoding/json"
	"errors"
)

// Session is the explicit auth context injected into the HTTP layer and the
// route guards, instead of ambient storage reads scattered across call sites.
type Session struct {
	store Store
}

func New(store Store) *Session {
	return &Session{store: store}
}

func (s *Session) Store() Store { return s.store }

// Token returns the persisted bearer token, or "" when not signed in.
func (s *Session) Token() string {
	v, err := s.store.Get(KeyToken)
	if err != nil {
		return ""
	}
	return string(v)
}

func (s *Session) SetToken(token string) error {
	return s.store.Set(KeyToken, []byte(token))
}

// SetUser persists the serialized user record alongside the token.
func (s *Session) SetUser(user any) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.store.Set(KeyUser, data)
}

// User unmarshals the persisted user record into out; reports false when no
// record is stored.
func (s *Session) User(out any) (bool, error) {
	v, err := s.store.Get(KeyUser)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(v, out)
}

// Clear wipes the token and user record (logout or 401 policy). The cart
// entry is left alone.
func (s *Session) Clear() error {
	if err := s.store.Delete(KeyToken); err != nil {
		return err
	}
	return s.store.Delete(KeyUser)
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
