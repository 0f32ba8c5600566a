// Package session decides whether the client is authenticated. The gate owns
// the session lifecycle: it exchanges stored credentials for a user profile on
// startup and tears local state down on logout or rejection.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"nuclight.org/feedctl/app/api"
	"nuclight.org/feedctl/pkg/entities"
	"nuclight.org/feedctl/pkg/logger"
)

type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
	ClearReactionMarks(ctx context.Context) error
}

type AuthAPI interface {
	Register(ctx context.Context, params api.RegisterParams) (entities.User, error)
	Login(ctx context.Context, username, password string) (entities.Token, error)
	Me(ctx context.Context) (entities.User, error)
}

type Gate struct {
	Log   logger.Logger
	Store Store
	API   AuthAPI
}

// Resolve exchanges the stored token for the current user profile. A nil user
// with a nil error means unauthenticated: no token, a token that is already
// expired, or one the server rejects. A rejected or expired token is cleared
// silently; only transport failures surface as errors.
func (g *Gate) Resolve(ctx context.Context) (*entities.User, error) {
	token, err := g.Store.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading stored token: %w", err)
	}

	if token == "" {
		return nil, nil
	}

	if expired(token) {
		g.Log.Debug("stored token is expired, clearing it")
		if err := g.Store.ClearToken(ctx); err != nil {
			return nil, fmt.Errorf("clearing expired token: %w", err)
		}
		return nil, nil
	}

	user, err := g.API.Me(ctx)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Unauthorized() {
			g.Log.Debug("stored token rejected, clearing it", "status", apiErr.StatusCode)
			if clearErr := g.Store.ClearToken(ctx); clearErr != nil {
				return nil, fmt.Errorf("clearing rejected token: %w", clearErr)
			}
			return nil, nil
		}

		return nil, fmt.Errorf("resolving session: %w", err)
	}

	return &user, nil
}

func (g *Gate) Login(ctx context.Context, username, password string) (entities.User, error) {
	token, err := g.API.Login(ctx, username, password)
	if err != nil {
		return entities.User{}, err
	}

	if err := g.Store.SetToken(ctx, token.AccessToken); err != nil {
		return entities.User{}, fmt.Errorf("storing token: %w", err)
	}

	user, err := g.API.Me(ctx)
	if err != nil {
		return entities.User{}, fmt.Errorf("fetching profile after login: %w", err)
	}

	g.Log.Info("logged in", "username", user.Username)
	return user, nil
}

func (g *Gate) Register(ctx context.Context, params api.RegisterParams) (entities.User, error) {
	if _, err := g.API.Register(ctx, params); err != nil {
		return entities.User{}, err
	}

	return g.Login(ctx, params.Username, params.Password)
}

// Logout clears the token and the reaction marks; the marks only make sense
// for the viewer whose session they were tracked in.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.Store.ClearToken(ctx); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}
	if err := g.Store.ClearReactionMarks(ctx); err != nil {
		return fmt.Errorf("clearing reaction marks: %w", err)
	}

	g.Log.Info("logged out")
	return nil
}

// expired checks the token's exp claim locally, without verifying the
// signature (the client has no key); a stale token is dropped before wasting
// a round trip on it. Tokens without a readable exp claim are left to the
// server to judge.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
