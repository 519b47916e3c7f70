// Package githubauth obtains and stores the GitHub token used by the gist
// CLI. Login runs the GitHub OAuth device flow with the gist scope; the
// resulting token lives in the OS keyring.
package githubauth

import (
	"context"
	"errors"
)

// Provider abstracts the authentication flow.
type Provider interface {
	// Login initiates the authentication flow and stores the token.
	Login(ctx context.Context) error
	// GetToken retrieves the stored authentication token.
	GetToken(ctx context.Context) (string, error)
	// GetLogin retrieves the stored GitHub login name.
	GetLogin(ctx context.Context) (string, error)
	// Logout removes the stored token and login.
	Logout(ctx context.Context) error
}

// Config holds provider configuration.
type Config struct {
	// GithubClientID is the OAuth app client id used for the device flow.
	GithubClientID string
}

const (
	// ServiceName is the keyring service under which secrets are stored.
	ServiceName = "gist"
	// GithubToken is the keyring account name for the API token.
	GithubToken = "github-token"
	// GithubLogin is the keyring account name for the login name.
	GithubLogin = "github-login"
)

// ErrTokenNotFound is returned when no token is stored in the keyring.
var ErrTokenNotFound = errors.New("authentication token not found in keyring")
