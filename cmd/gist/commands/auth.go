package commands

import (
	"fmt"

	"github.com/mscno/gist/pkg/githubauth"
)

type AuthCmd struct {
	Login  AuthLoginCmd  `cmd:"" help:"Login to GitHub via the device flow"`
	Logout AuthLogoutCmd `cmd:"" help:"Remove the stored GitHub token"`
	Whoami AuthWhoamiCmd `cmd:"" help:"Show the stored GitHub login"`
}

type AuthLoginCmd struct {
	ClientID string `help:"GitHub OAuth app client id" env:"GIST_GITHUB_CLIENT_ID"`
}

func (c *AuthLoginCmd) Run(ctx *cliCtx) error {
	provider := githubauth.NewGithubProvider(githubauth.Config{GithubClientID: c.ClientID}, ctx.Keyring)
	return provider.Login(ctx)
}

type AuthLogoutCmd struct{}

func (c *AuthLogoutCmd) Run(ctx *cliCtx) error {
	provider := githubauth.NewGithubProvider(githubauth.Config{}, ctx.Keyring)
	if err := provider.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type AuthWhoamiCmd struct{}

func (c *AuthWhoamiCmd) Run(ctx *cliCtx) error {
	provider := githubauth.NewGithubProvider(githubauth.Config{}, ctx.Keyring)
	login, err := provider.GetLogin(ctx)
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	fmt.Println(login)
	return nil
}
