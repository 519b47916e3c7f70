package commands

import (
	"fmt"
)

type CommentsCmd struct {
	List   ListCommentsCmd  `cmd:"" help:"List comments on a gist"`
	Add    AddCommentCmd    `cmd:"" help:"Post a comment on a gist"`
	Edit   EditCommentCmd   `cmd:"" help:"Edit a comment"`
	Delete DeleteCommentCmd `cmd:"" help:"Delete a comment"`
}

type ListCommentsCmd struct {
	Gist    string `arg:"" help:"Gist id or URL"`
	PerPage int    `help:"Results per page (max 100)" default:"30"`
	Page    int    `help:"Page number to fetch" default:"1"`
}

func (c *ListCommentsCmd) Run(ctx *cliCtx) error {
	client, err := setupClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	comments, err := client.Comments(ctx, c.Gist, c.PerPage, c.Page)
	if err != nil {
		return fmt.Errorf("failed to list comments: %w", err)
	}
	if len(comments) == 0 {
		fmt.Println("No comments.")
		return nil
	}
	for _, cm := range comments {
		author := "unknown"
		if cm.User != nil && cm.User.Login != nil {
			author = *cm.User.Login
		}
		fmt.Printf("#%d %s (%s)\n%s\n\n", cm.ID, author, cm.CreatedAt.Format("2006-01-02 15:04"), cm.Body)
	}
	return nil
}

type AddCommentCmd struct {
	Gist string `arg:"" help:"Gist id or URL"`
	Body string `arg:"" help:"Comment text"`
}

func (c *AddCommentCmd) Run(ctx *cliCtx) error {
	client, err := setupClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	cm, err := client.CreateComment(ctx, c.Gist, c.Body)
	if err != nil {
		return fmt.Errorf("failed to post comment: %w", err)
	}
	fmt.Printf("Posted comment #%d\n", cm.ID)
	return nil
}

type EditCommentCmd struct {
	Gist    string `arg:"" help:"Gist id or URL"`
	Comment int64  `arg:"" help:"Comment id"`
	Body    string `arg:"" help:"New comment text"`
}

func (c *EditCommentCmd) Run(ctx *cliCtx) error {
	client, err := setupClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	cm, err := client.UpdateComment(ctx, c.Gist, c.Comment, c.Body)
	if err != nil {
		return fmt.Errorf("failed to edit comment: %w", err)
	}
	fmt.Printf("Updated comment #%d\n", cm.ID)
	return nil
}

type DeleteCommentCmd struct {
	Gist    string `arg:"" help:"Gist id or URL"`
	Comment int64  `arg:"" help:"Comment id"`
}

func (c *DeleteCommentCmd) Run(ctx *cliCtx) error {
	client, err := setupClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.DeleteComment(ctx, c.Gist, c.Comment); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	fmt.Println("Deleted.")
	return nil
}
