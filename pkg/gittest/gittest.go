// Package gittest provides an in-memory nexttag.Repository for tests.
package gittest

import (
	"context"
	"errors"
	"slices"
	"strings"

	"golang.org/x/mod/semver"
)

// Repo is a fake repository. The zero value has no tags and succeeds at
// everything.
type Repo struct {
	Tags []string

	// ListErr, CreateErr and PushErr, when set, are returned by the
	// corresponding method instead of doing any work.
	ListErr   error
	CreateErr error
	PushErr   error

	Created []string            // tags passed to CreateTag, in order
	Pushed  map[string][]string // remote -> tags pushed to it
}

// New returns a Repo holding tags.
func New(tags ...string) *Repo {
	return &Repo{Tags: tags}
}

// ListTagsDescending orders tags the way "git tag --sort=-v:refname" does for
// version-like names; other names sort after them.
func (r *Repo) ListTagsDescending(ctx context.Context) ([]string, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	tags := slices.Clone(r.Tags)
	slices.SortStableFunc(tags, func(a, b string) int {
		if c := semver.Compare(canonical(b), canonical(a)); c != 0 {
			return c
		}
		return strings.Compare(b, a)
	})
	return tags, nil
}

// CreateTag adds name to Tags, failing like git if it already exists.
func (r *Repo) CreateTag(ctx context.Context, name string) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	if slices.Contains(r.Tags, name) {
		return errors.New("tag '" + name + "' already exists")
	}
	r.Tags = append(r.Tags, name)
	r.Created = append(r.Created, name)
	return nil
}

// PushTag records name under remote in Pushed. The tag must exist locally.
func (r *Repo) PushTag(ctx context.Context, remote, name string) error {
	if r.PushErr != nil {
		return r.PushErr
	}
	if !slices.Contains(r.Tags, name) {
		return errors.New("src refspec " + name + " does not match any")
	}
	if r.Pushed == nil {
		r.Pushed = make(map[string][]string)
	}
	r.Pushed[remote] = append(r.Pushed[remote], name)
	return nil
}

func canonical(tag string) string {
	if strings.HasPrefix(tag, "v") {
		return tag
	}
	return "v" + tag
}
