package platform

import (
	"context"

	"github.com/studafishka/afishactl/internal/session"
)

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// IssueToken exchanges credentials for a token pair via POST /auth/token/.
// The caller stores the pair in the session; the client itself holds no
// token state.
func (c *Client) IssueToken(ctx context.Context, username, password string) (*TokenPair, error) {
	resp, err := c.doRequest(ctx, "POST", "/auth/token/", tokenRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var pair TokenPair
	if err := parseResponse(resp, &pair); err != nil {
		return nil, err
	}

	return &pair, nil
}

// CurrentUser retrieves the profile behind the attached bearer token via
// GET /users/me/. Used both by the startup bootstrap and after login.
func (c *Client) CurrentUser(ctx context.Context) (*session.User, error) {
	resp, err := c.doRequest(ctx, "GET", "/users/me/", nil)
	if err != nil {
		return nil, err
	}

	var user session.User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Register creates a new account via POST /auth/register/. The API does not
// log the account in; the caller follows up with IssueToken if desired.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*session.User, error) {
	resp, err := c.doRequest(ctx, "POST", "/auth/register/", req)
	if err != nil {
		return nil, err
	}

	var user session.User
	if err := parseResponse(resp, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
