package commands

import (
	"fmt"
)

type ForkCmd struct {
	Gist string `arg:"" help:"Gist id or URL"`
}

func (c *ForkCmd) Run(ctx *cliCtx) error {
	client, err := setupClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	fork, err := client.Fork(ctx, c.Gist)
	if err != nil {
		return fmt.Errorf("failed to fork gist: %w", err)
	}
	fmt.Println(fork.HTMLURL)
	return nil
}
