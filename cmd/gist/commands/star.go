package commands

import (
	"fmt"
)

type StarCmd struct {
	Gist string `arg:"" help:"Gist id or URL"`
}

func (c *StarCmd) Run(ctx *cliCtx) error {
	client, err := setupClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Star(ctx, c.Gist); err != nil {
		return fmt.Errorf("failed to star gist: %w", err)
	}
	fmt.Println("Starred.")
	return nil
}

type UnstarCmd struct {
	Gist string `arg:"" help:"Gist id or URL"`
}

func (c *UnstarCmd) Run(ctx *cliCtx) error {
	client, err := setupClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Unstar(ctx, c.Gist); err != nil {
		return fmt.Errorf("failed to unstar gist: %w", err)
	}
	fmt.Println("Unstarred.")
	return nil
}
