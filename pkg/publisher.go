package nexttag

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Publisher creates tags locally and pushes them to a remote.
type Publisher struct {
	Repo   Repository
	Remote string
	Out    io.Writer
}

func (p *Publisher) remote() string {
	if p.Remote == "" {
		return DefaultRemote
	}
	return p.Remote
}

// CreateTag creates tag in the local repository.
func (p *Publisher) CreateTag(ctx context.Context, tag string) error {
	if err := p.Repo.CreateTag(ctx, tag); err != nil {
		color.New(color.FgRed).Fprintln(p.Out, "Failed to create tag")
		return fmt.Errorf("failed to create tag %s: %w", tag, err)
	}
	color.New(color.FgGreen).Fprintf(p.Out, "Tag %s created successfully\n", tag)
	return nil
}

// PushTag pushes an existing local tag to the remote.
func (p *Publisher) PushTag(ctx context.Context, tag string) error {
	remote := p.remote()
	if err := p.Repo.PushTag(ctx, remote, tag); err != nil {
		color.New(color.FgRed).Fprintln(p.Out, "Failed to push tag to remote")
		return fmt.Errorf("failed to push tag %s to %s: %w", tag, remote, err)
	}
	color.New(color.FgGreen).Fprintf(p.Out, "Tag %s pushed to remote successfully\n", tag)
	return nil
}

// Publish creates tag and then pushes it. Nothing is pushed if creation
// fails, and a created tag is left in place if the push fails.
func (p *Publisher) Publish(ctx context.Context, tag string) error {
	if err := p.CreateTag(ctx, tag); err != nil {
		return err
	}
	return p.PushTag(ctx, tag)
}
