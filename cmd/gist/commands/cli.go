package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mscno/gist/pkg/oskeyring"
)

type cliCtx struct {
	context.Context
	Logger  *slog.Logger
	Keyring oskeyring.Service

	// Token and APIURL mirror the global flags so command Run methods and
	// tests can reach them without going through kong.
	Token  string
	APIURL string
}

type cli struct {
	Create   CreateCmd   `cmd:"" help:"Create a gist from local files"`
	Get      GetCmd      `cmd:"" help:"Fetch a gist"`
	Update   UpdateCmd   `cmd:"" help:"Update a gist's description and files"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a gist"`
	Star     StarCmd     `cmd:"" help:"Star a gist"`
	Unstar   UnstarCmd   `cmd:"" help:"Unstar a gist"`
	Fork     ForkCmd     `cmd:"" help:"Fork a gist"`
	Comments CommentsCmd `cmd:"" help:"Manage gist comments"`
	Auth     AuthCmd     `cmd:"" help:"Manage GitHub authentication"`

	Token   string           `help:"GitHub token. Falls back to GITHUB_TOKEN, a .env file, then the OS keyring." env:"GITHUB_TOKEN"`
	APIURL  string           `name:"api-url" hidden:"" help:"Override the Gists API base URL." env:"GIST_API_URL"`
	Debug   bool             `help:"Enable debug logging"`
	Version kong.VersionFlag `help:"Show version"`
}

func Execute(version string) {
	var cli cli
	ctx := kong.Parse(&cli,
		kong.UsageOnError(),
		kong.Name("gist"),
		kong.Description("gist manages GitHub gists from the command line"),
		kong.Vars{"version": version},
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	err := ctx.Run(&cliCtx{
		Context: context.Background(),
		Logger:  logger,
		Keyring: oskeyring.NewDefaultService(),
		Token:   cli.Token,
		APIURL:  cli.APIURL,
	})
	ctx.FatalIfErrorf(err)
}
