package nexttag

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultRemote is the remote new tags are pushed to.
const DefaultRemote = "origin"

// Repository is the slice of version control the tool needs.
type Repository interface {
	// ListTagsDescending returns every tag, highest version first.
	ListTagsDescending(ctx context.Context) ([]string, error)
	CreateTag(ctx context.Context, name string) error
	PushTag(ctx context.Context, remote, name string) error
}

// CommandError reports a git invocation that exited unsuccessfully.
type CommandError struct {
	Args   []string
	Err    error
	Stderr string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("git %s failed: %v, detail: %s", strings.Join(e.Args, " "), e.Err, strings.TrimSpace(e.Stderr))
}

func (e *CommandError) Unwrap() error { return e.Err }

// GitCLI implements Repository by running the git binary.
type GitCLI struct {
	// Dir is the working directory for git; empty means the current one.
	Dir string
}

func (g GitCLI) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", &CommandError{Args: args, Err: err, Stderr: stderr.String()}
	}
	return stdout.String(), nil
}

// ListTagsDescending uses git's own version sort.
func (g GitCLI) ListTagsDescending(ctx context.Context) ([]string, error) {
	out, err := g.run(ctx, "tag", "--sort=-v:refname")
	if err != nil {
		return nil, err
	}
	var tags []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			tags = append(tags, line)
		}
	}
	return tags, nil
}

// CreateTag creates a lightweight tag at HEAD.
func (g GitCLI) CreateTag(ctx context.Context, name string) error {
	_, err := g.run(ctx, "tag", name)
	return err
}

// PushTag pushes the named tag to remote.
func (g GitCLI) PushTag(ctx context.Context, remote, name string) error {
	_, err := g.run(ctx, "push", remote, name)
	return err
}
