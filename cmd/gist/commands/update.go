package commands

import (
	"fmt"
)

type UpdateCmd struct {
	Gist        string   `arg:"" help:"Gist id or URL"`
	Files       []string `arg:"" optional:"" help:"Files to add or replace in the gist"`
	Description string   `help:"New description of the gist" short:"d"`
}

func (c *UpdateCmd) Run(ctx *cliCtx) error {
	files, err := readFiles(c.Files)
	if err != nil {
		return err
	}

	client, err := setupClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	g, err := client.Update(ctx, c.Gist, c.Description, files...)
	if err != nil {
		return fmt.Errorf("failed to update gist: %w", err)
	}
	fmt.Println(g.HTMLURL)
	return nil
}
