package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afard/VerticaPy/internal/domain"
	"github.com/afard/VerticaPy/internal/engine"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		banner string
		want   domain.Version
	}{
		{"Vertica Analytic Database v10.1.1-0", domain.Version{Major: 10, Minor: 1, Patch: 1}},
		{"Vertica Analytic Database v12.0.4-21", domain.Version{Major: 12, Minor: 0, Patch: 4}},
		{"9.3.0", domain.Version{Major: 9, Minor: 3}},
	}
	for _, tt := range tests {
		v, err := engine.ParseVersion(tt.banner)
		require.NoError(t, err, "banner %q", tt.banner)
		assert.Equal(t, tt.want, v)
	}

	_, err := engine.ParseVersion("not a version")
	require.Error(t, err)
}

func TestVersionAtLeast(t *testing.T) {
	v := domain.Version{Major: 10, Minor: 1, Patch: 2}
	assert.True(t, v.AtLeast(domain.Version{Major: 10}))
	assert.True(t, v.AtLeast(domain.Version{Major: 10, Minor: 1, Patch: 2}))
	assert.True(t, v.AtLeast(domain.Version{Major: 9, Minor: 9, Patch: 9}))
	assert.False(t, v.AtLeast(domain.Version{Major: 10, Minor: 2}))
	assert.False(t, v.AtLeast(domain.Version{Major: 11}))
}

type staticExecutor struct {
	domain.Executor
	version domain.Version
}

func (s *staticExecutor) Version(context.Context) (domain.Version, error) {
	return s.version, nil
}

func TestRequireVersion(t *testing.T) {
	exec := &staticExecutor{version: domain.Version{Major: 9, Minor: 3}}

	err := engine.RequireVersion(context.Background(), exec, domain.Version{Major: 10})
	var verr *domain.VersionError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.Version{Major: 10}, verr.Required)
	assert.Equal(t, domain.Version{Major: 9, Minor: 3}, verr.Actual)

	exec.version = domain.Version{Major: 10}
	assert.NoError(t, engine.RequireVersion(context.Background(), exec, domain.Version{Major: 10}))
}
