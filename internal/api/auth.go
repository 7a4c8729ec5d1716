package api

import (
	"context"
	"net/http"

	"gallery/cli/internal/models"
)

type SignupInput struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authTokenResponse struct {
	AuthToken string `json:"authToken"`
}

func (c *Client) Signup(ctx context.Context, input SignupInput) (string, error) {
	var resp authTokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", input, &resp); err != nil {
		return "", err
	}
	return resp.AuthToken, nil
}

func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	var resp authTokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return "", err
	}
	return resp.AuthToken, nil
}

// Verify asks the server whether the bearer token still stands and returns
// the resolved identity.
func (c *Client) Verify(ctx context.Context) (models.User, error) {
	var resp struct {
		CurrentLoggedInUser models.User `json:"currentLoggedInUser"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, &resp); err != nil {
		return models.User{}, err
	}
	return resp.CurrentLoggedInUser, nil
}
