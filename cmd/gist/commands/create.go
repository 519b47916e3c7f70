package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mscno/gist"
)

type CreateCmd struct {
	Files       []string `arg:"" help:"Files to include in the gist"`
	Description string   `help:"Description of the gist" short:"d"`
	Public      bool     `help:"Make the gist public" short:"p"`
}

func (c *CreateCmd) Run(ctx *cliCtx) error {
	files, err := readFiles(c.Files)
	if err != nil {
		return err
	}

	client, err := setupClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	g, err := client.Create(ctx, c.Description, c.Public, files...)
	if err != nil {
		return fmt.Errorf("failed to create gist: %w", err)
	}
	fmt.Println(g.HTMLURL)
	return nil
}

func readFiles(paths []string) ([]gist.File, error) {
	files := make([]gist.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		files = append(files, gist.NewFile(filepath.Base(p), string(data)))
	}
	return files, nil
}
