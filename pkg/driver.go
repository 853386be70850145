package nexttag

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// State is a step of the interactive run.
type State int

const (
	// StateStart is the initial state, before the next version is known.
	StateStart State = iota
	// StateResolved means the next version was computed and shown.
	StateResolved
	// StateConfirmed means the operator accepted and publishing began.
	StateConfirmed
	// StateCancelled means the operator declined; nothing was changed.
	StateCancelled
	// StateDone means the tag was created and pushed.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateResolved:
		return "resolved"
	case StateConfirmed:
		return "confirmed"
	case StateCancelled:
		return "cancelled"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Options configures Run.
type Options struct {
	Repo   Repository
	Remote string    // defaults to DefaultRemote
	In     io.Reader // operator answers
	Out    io.Writer // status lines and the prompt
}

// TagMeta describes what a run resolved and did.
type TagMeta struct {
	LatestTag string // "" when the repository had no tags
	NextTag   string
	State     State // last state reached
}

// Run resolves the next patch tag, asks the operator for confirmation and,
// if confirmed, creates and pushes it. A declined prompt is not an error.
func Run(ctx context.Context, opts Options) (TagMeta, error) {
	meta := TagMeta{State: StateStart}

	latest := LatestTag(ctx, opts.Repo)
	meta.LatestTag = latest
	shown := latest
	if shown == "" {
		shown = "none"
	}
	fmt.Fprintf(opts.Out, "Latest tag: %s\n", shown)

	next, err := NextVersion(latest)
	if err != nil {
		color.New(color.FgRed).Fprintf(opts.Out, "Error: Invalid version format: %s\n", latest)
		return meta, err
	}
	meta.NextTag = next
	meta.State = StateResolved
	fmt.Fprintf(opts.Out, "Next version: %s\n", next)

	fmt.Fprintf(opts.Out, "Do you want to create and push tag %s? (y/n): ", next)
	answer, err := readAnswer(opts.In)
	if err != nil {
		return meta, fmt.Errorf("failed to read confirmation: %w", err)
	}

	if !Confirmed(answer) {
		meta.State = StateCancelled
		color.New(color.FgYellow).Fprintln(opts.Out, "Tag creation cancelled")
		return meta, nil
	}
	meta.State = StateConfirmed

	pub := &Publisher{Repo: opts.Repo, Remote: opts.Remote, Out: opts.Out}
	if err := pub.Publish(ctx, next); err != nil {
		return meta, err
	}
	meta.State = StateDone
	return meta, nil
}

// Confirmed reports whether answer is an affirmative "y" or "yes",
// ignoring case. Surrounding whitespace is not trimmed.
func Confirmed(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

// readAnswer reads one line and strips its terminator. Input ending
// without a newline, including no input at all, is returned as is.
func readAnswer(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
