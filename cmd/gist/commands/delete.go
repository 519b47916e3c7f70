package commands

import (
	"fmt"
)

type DeleteCmd struct {
	Gist string `arg:"" help:"Gist id or URL"`
}

func (c *DeleteCmd) Run(ctx *cliCtx) error {
	client, err := setupClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Delete(ctx, c.Gist); err != nil {
		return fmt.Errorf("failed to delete gist: %w", err)
	}
	fmt.Println("Deleted.")
	return nil
}
