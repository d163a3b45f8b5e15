package api

import (
	"context"
	"net/http"

	"github.com/mehmetcc/oseek/internal/person"
)

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me asks the backend "who am I" with the stored token. This is the
// authoritative session check; everything local is advisory.
func (c *Client) Me(ctx context.Context) (*person.Person, error) {
	var out person.Person
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/change-password", nil, req, nil)
}

func (c *Client) DeleteAccount(ctx context.Context, req DeleteAccountRequest) error {
	return c.do(ctx, http.MethodDelete, "/auth/delete-account", nil, req, nil)
}
