package api

import (
	"context"

	"github.com/povreview/povcli/internal/client/models"
)

// AuthResponse is the body of a successful login or register call.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend and persists the returned bearer
// token to durable storage. The login response does not carry the full
// profile; callers needing it follow up with GetProfile.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := c.creds.SetToken(ctx, resp.Token); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// Register creates an account and persists the returned bearer token.
// Unlike Login, the register response embeds the full user.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "auth/register", registerRequest{Name: name, Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := c.creds.SetToken(ctx, resp.Token); err != nil {
			return nil, err
		}
	}
	return &resp, nil
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.get(ctx, "users/profile", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Logout clears the durable bearer token. Local-only: no backend call.
func (c *Client) Logout(ctx context.Context) error {
	return c.creds.ClearToken(ctx)
}

// Token returns the durable bearer token, or "" when absent.
func (c *Client) Token(ctx context.Context) (string, error) {
	return c.creds.Token(ctx)
}

// IsAuthenticated reports whether a durable bearer token exists. It does
// not validate the token against the backend.
func (c *Client) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}
