package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"nuclight.org/feedctl/pkg/entities"
)

type RegisterParams struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, params RegisterParams) (entities.User, error) {
	var user entities.User
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/register", nil, params, &user); err != nil {
		return entities.User{}, fmt.Errorf("registering: %w", err)
	}
	return user, nil
}

// Login exchanges credentials for a token. The endpoint expects a classic
// form-encoded body, not JSON.
func (c *Client) Login(ctx context.Context, username, password string) (entities.Token, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var token entities.Token
	err := c.do(
		ctx, http.MethodPost, "/auth/login", nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded",
		&token,
	)
	if err != nil {
		return entities.Token{}, fmt.Errorf("logging in: %w", err)
	}

	return token, nil
}

func (c *Client) Me(ctx context.Context) (entities.User, error) {
	var user entities.User
	if err := c.getJSON(ctx, "/auth/me", nil, &user); err != nil {
		return entities.User{}, fmt.Errorf("fetching current user: %w", err)
	}
	return user, nil
}
