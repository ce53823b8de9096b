package engine

import (
	"context"
	"regexp"
	"strconv"

	"github.com/afard/VerticaPy/internal/domain"
)

// versionRe matches the triple in strings like
// "Vertica Analytic Database v10.1.1-0".
var versionRe = regexp.MustCompile(`v?(\d+)\.(\d+)\.(\d+)`)

// ParseVersion extracts the version triple from a SELECT version() banner.
func ParseVersion(banner string) (domain.Version, error) {
	m := versionRe.FindStringSubmatch(banner)
	if m == nil {
		return domain.Version{}, domain.ErrParameter("unrecognized engine version banner %q", banner)
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return domain.Version{Major: major, Minor: minor, Patch: patch}, nil
}

// RequireVersion fails with a VersionError when the connected engine does
// not meet min. It issues no query beyond the cached version fetch.
func RequireVersion(ctx context.Context, exec domain.Executor, min domain.Version) error {
	v, err := exec.Version(ctx)
	if err != nil {
		return err
	}
	if !v.AtLeast(min) {
		return &domain.VersionError{Required: min, Actual: v}
	}
	return nil
}
