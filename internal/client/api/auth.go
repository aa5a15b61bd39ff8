package api

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Register creates an account. The backend answers with a token and user
// like Login does; callers decide whether to use them.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for a token and user profile. The response is
// returned as decoded; checking that both fields are present is left to the
// caller.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.post(ctx, "/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
