package apiclient

import (
	"context"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
)

type AuthResult struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	err := c.postJSON(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var out AuthResult
	if err := c.postJSON(ctx, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.getJSON(ctx, "/auth/me", &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out messagePayload
	err := c.postJSON(ctx, "/auth/forgot-password", map[string]string{"email": email}, &out)
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	return c.postJSON(ctx, "/auth/reset-password", map[string]string{
		"token":    token,
		"password": password,
	}, nil)
}

func (c *Client) ChangePassword(ctx context.Context, current, updated string) error {
	return c.putJSON(ctx, "/auth/change-password", map[string]string{
		"current_password": current,
		"new_password":     updated,
	}, nil)
}

func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	var out AuthResult
	err := c.postJSON(ctx, "/auth/refresh-token", map[string]string{
		"refresh_token": refreshToken,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout tells the backend, then the caller clears the session store.
func (c *Client) Logout(ctx context.Context) (string, error) {
	var out messagePayload
	if err := c.postJSON(ctx, "/auth/logout", nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
