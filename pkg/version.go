package nexttag

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a tag does not have the strict
// v<major>.<minor>.<patch> shape.
var ErrInvalidFormat = errors.New("invalid version format")

// Version is a release version made of three non-negative integers.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// InitialVersion is the version proposed for a repository without tags.
var InitialVersion = Version{Major: 0, Minor: 1, Patch: 0}

// String renders the version with a "v" prefix, e.g. "v1.2.3".
func (v Version) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// NextPatch returns v with the patch component incremented. It fails
// rather than wrap around when Patch is already the largest uint64.
func (v Version) NextPatch() (Version, error) {
	if v.Patch == math.MaxUint64 {
		return Version{}, fmt.Errorf("%w: patch of %s cannot be incremented", ErrInvalidFormat, v)
	}
	v.Patch++
	return v, nil
}

// ParseVersion parses a tag of the form "v1.2.3" or "1.2.3".
// Pre-release and build suffixes are rejected, not ignored, as are
// components that do not fit in a uint64. Leading zeros are accepted but
// not kept: "v01.2.3" parses to the same Version as "v1.2.3".
func ParseVersion(tag string) (Version, error) {
	parts := strings.Split(strings.TrimPrefix(tag, "v"), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %s", ErrInvalidFormat, tag)
	}

	var nums [3]uint64
	for i, p := range parts {
		n, err := parseComponent(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %s", ErrInvalidFormat, tag)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// parseComponent accepts only plain ASCII digits; strconv alone would let
// a leading "+" through.
func parseComponent(s string) (uint64, error) {
	if s == "" {
		return 0, errors.New("empty component")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric component %q", s)
		}
	}
	return strconv.ParseUint(s, 10, 64)
}
