package commands

import (
	"fmt"
)

type GetCmd struct {
	Gist    string `arg:"" help:"Gist id or URL"`
	Content string `help:"Print the content of the named file instead of the summary" short:"c"`
}

func (c *GetCmd) Run(ctx *cliCtx) error {
	client, err := setupClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	g, err := client.Get(ctx, c.Gist)
	if err != nil {
		return fmt.Errorf("failed to fetch gist: %w", err)
	}

	if c.Content != "" {
		f, ok := g.FileNamed(c.Content)
		if !ok {
			return fmt.Errorf("gist has no file named %q", c.Content)
		}
		if f.Content == nil {
			return fmt.Errorf("file %q has no content in this response", c.Content)
		}
		fmt.Print(*f.Content)
		return nil
	}

	fmt.Printf("Gist %s\n", g.ID)
	fmt.Printf("  URL: %s\n", g.HTMLURL)
	if g.Description != "" {
		fmt.Printf("  Description: %s\n", g.Description)
	}
	if g.Owner != nil && g.Owner.Login != nil {
		fmt.Printf("  Owner: %s\n", *g.Owner.Login)
	}
	fmt.Printf("  Public: %t\n", g.Public)
	fmt.Printf("  Created: %s\n", g.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Files:\n")
	for _, f := range g.Files {
		line := "    " + f.Filename
		if f.Language != nil {
			line += " (" + *f.Language + ")"
		}
		if f.Size != nil {
			line += fmt.Sprintf(" %d bytes", *f.Size)
		}
		fmt.Println(line)
	}
	return nil
}
