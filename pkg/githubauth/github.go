package githubauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mscno/gist/pkg/oskeyring"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const userInfoURL = "https://api.github.com/user"

// GithubProvider implements Provider using the GitHub OAuth device flow.
type GithubProvider struct {
	Config  Config
	keyring oskeyring.Service
}

// NewGithubProvider creates a new GithubProvider.
func NewGithubProvider(cfg Config, keyring oskeyring.Service) *GithubProvider {
	return &GithubProvider{
		Config:  cfg,
		keyring: keyring,
	}
}

func (p *GithubProvider) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID: p.Config.GithubClientID,
		Scopes:   []string{"gist"},
		Endpoint: github.Endpoint,
	}
}

// Login runs the GitHub device flow and stores the resulting token in the
// keyring, along with the login name it resolves to.
func (p *GithubProvider) Login(ctx context.Context) error {
	if p.Config.GithubClientID == "" {
		return errors.New("GitHub Client ID is required for authentication")
	}

	oauthConfig := p.oauthConfig()

	deviceCode, err := oauthConfig.DeviceAuth(ctx)
	if err != nil {
		return fmt.Errorf("failed to request device code: %w", err)
	}

	fmt.Printf("Please visit %s and enter the code: %s\n", deviceCode.VerificationURI, deviceCode.UserCode)
	fmt.Println("Waiting for the authentication to complete...")

	token, err := oauthConfig.DeviceAccessToken(ctx, deviceCode)
	if err != nil {
		return fmt.Errorf("failed to get access token: %w", err)
	}

	if err := p.keyring.Set(ServiceName, GithubToken, token.AccessToken); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}

	// Resolve the login now so later commands can show who is signed in.
	// Login still succeeds if this lookup fails; the token is already stored.
	login, err := fetchGithubLogin(ctx, token.AccessToken)
	if err != nil {
		fmt.Printf("Warning: failed to fetch GitHub user info after login: %v\n", err)
		return nil
	}
	if err := p.keyring.Set(ServiceName, GithubLogin, login); err != nil {
		fmt.Printf("Warning: failed to store GitHub login in keyring: %v\n", err)
		return nil
	}

	fmt.Printf("Successfully authenticated as %s.\n", login)
	return nil
}

// fetchGithubLogin resolves the login name the token belongs to.
func fetchGithubLogin(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errors.New("token cannot be empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userInfoURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "token "+token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call GitHub API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var userInfo struct {
		Login string `json:"login"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return "", fmt.Errorf("failed to decode GitHub user info: %w", err)
	}
	if userInfo.Login == "" {
		return "", errors.New("GitHub user login not found in response")
	}
	return userInfo.Login, nil
}

// GetToken retrieves the stored GitHub token.
func (p *GithubProvider) GetToken(ctx context.Context) (string, error) {
	token, err := p.keyring.Get(ServiceName, GithubToken)
	if err != nil {
		if errors.Is(err, oskeyring.ErrNotFound) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("failed to get token from keyring: %w", err)
	}
	return token, nil
}

// GetLogin retrieves the stored GitHub login, fetching it from the API if a
// token is stored but the login is not.
func (p *GithubProvider) GetLogin(ctx context.Context) (string, error) {
	login, err := p.keyring.Get(ServiceName, GithubLogin)
	if err == nil && login != "" {
		return login, nil
	}
	if err != nil && !errors.Is(err, oskeyring.ErrNotFound) {
		return "", fmt.Errorf("failed to get login from keyring: %w", err)
	}

	token, err := p.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("cannot fetch login without token: %w", err)
	}
	login, err = fetchGithubLogin(ctx, token)
	if err != nil {
		return "", fmt.Errorf("failed to fetch user info from GitHub: %w", err)
	}
	if err := p.keyring.Set(ServiceName, GithubLogin, login); err != nil {
		fmt.Printf("Warning: failed to store fetched login in keyring: %v\n", err)
	}
	return login, nil
}

// Logout removes the stored token and login from the keyring.
func (p *GithubProvider) Logout(ctx context.Context) error {
	if err := p.keyring.Delete(ServiceName, GithubToken); err != nil {
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	if err := p.keyring.Delete(ServiceName, GithubLogin); err != nil {
		return fmt.Errorf("failed to delete login from keyring: %w", err)
	}
	return nil
}

var _ Provider = (*GithubProvider)(nil)
