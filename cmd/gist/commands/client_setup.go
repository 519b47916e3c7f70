package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mscno/gist"
	"github.com/mscno/gist/pkg/githubauth"
)

// resolveToken finds a GitHub token, in order: the --token flag or
// GITHUB_TOKEN env, a GITHUB_TOKEN entry in a .env file in the working
// directory, then the OS keyring populated by 'gist auth login'.
func resolveToken(ctx *cliCtx) (string, error) {
	if ctx.Token != "" {
		return ctx.Token, nil
	}

	if f, err := os.Open(".env"); err == nil {
		defer f.Close()
		envs, err := godotenv.Parse(f)
		if err != nil {
			return "", fmt.Errorf("failed to parse .env: %w", err)
		}
		if token := envs["GITHUB_TOKEN"]; token != "" {
			return token, nil
		}
	}

	provider := githubauth.NewGithubProvider(githubauth.Config{}, ctx.Keyring)
	token, err := provider.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("no GitHub token found: %w. Pass --token, set GITHUB_TOKEN, or run 'gist auth login'", err)
	}
	return token, nil
}

// setupClient handles the common logic of resolving the token and
// initializing the API client.
func setupClient(ctx *cliCtx) (*gist.Client, error) {
	token, err := resolveToken(ctx)
	if err != nil {
		return nil, err
	}
	ctx.Logger.Debug("initializing gist client", "apiURL", ctx.APIURL)
	return gist.NewClient(gist.Config{
		Token:   token,
		BaseURL: ctx.APIURL,
		Logger:  ctx.Logger,
	})
}
