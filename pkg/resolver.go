package nexttag

import (
	"context"
)

// LatestTag returns the highest tag in repo, or "" when it has none.
// A failed listing, e.g. outside a git repository, also yields "": the
// error surfaces later when the tag cannot be created.
func LatestTag(ctx context.Context, repo Repository) string {
	tags, err := repo.ListTagsDescending(ctx)
	if err != nil || len(tags) == 0 {
		return ""
	}
	return tags[0]
}

// NextVersion computes the tag that follows latest by bumping its patch
// component. An empty latest yields InitialVersion.
func NextVersion(latest string) (string, error) {
	if latest == "" {
		return InitialVersion.String(), nil
	}
	v, err := ParseVersion(latest)
	if err != nil {
		return "", err
	}
	next, err := v.NextPatch()
	if err != nil {
		return "", err
	}
	return next.String(), nil
}
