package auth

import (
	"context"
	"fmt"
	"net/http"

	"minicart/gateway"
	"minicart/session"
)

// Client wraps the login and registration endpoints. Login calls carry the
// login-attempt marker so a wrong password surfaces as an error on the form
// instead of bouncing the user through the redirect policy.
type Client struct {
	gw       *gateway.Gateway
	sessions session.Store
}

func NewClient(gw *gateway.Gateway, sessions session.Store) *Client {
	return &Client{gw: gw, sessions: sessions}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login signs a shopper in and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.login(ctx, "/auth/login", email, password)
}

// AdminLogin signs an admin in through the admin endpoint. The token is the
// same opaque string either way; only the backend knows about roles.
func (c *Client) AdminLogin(ctx context.Context, email, password string) error {
	return c.login(ctx, "/admin/login", email, password)
}

func (c *Client) login(ctx context.Context, path, email, password string) error {
	if email == "" || password == "" {
		return gateway.ValidationError("email and password are required")
	}

	var resp tokenResponse
	err := c.gw.Do(ctx, gateway.Call{
		Method:       http.MethodPost,
		Path:         path,
		Body:         map[string]string{"email": email, "password": password},
		Out:          &resp,
		LoginAttempt: true,
	})
	if err != nil {
		return err
	}

	if resp.AccessToken == "" {
		return fmt.Errorf("login response contained no token")
	}
	if err := c.sessions.Set(resp.AccessToken); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	return nil
}

// Register creates an account. The backend does not sign the user in on
// registration; the UI sends them to the login form next.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return gateway.ValidationError("name, email and password are required")
	}

	return c.gw.Do(ctx, gateway.Call{
		Method:       http.MethodPost,
		Path:         "/auth/register",
		Body:         map[string]string{"name": name, "email": email, "password": password},
		LoginAttempt: true,
	})
}

// Logout discards the stored token. Purely local: the backend keeps no
// session state beyond the token itself.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

// SignedIn reports whether a token is currently stored.
func (c *Client) SignedIn() bool {
	_, ok := c.sessions.Get()
	return ok
}
