package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "connections")
	assert.Contains(t, names, "dtypes")
	assert.Contains(t, names, "astype")
	assert.Contains(t, names, "version")

	require.NotNil(t, root.PersistentFlags().Lookup("dsn"))
	require.NotNil(t, root.PersistentFlags().Lookup("section"))
	require.NotNil(t, root.PersistentFlags().Lookup("lenient-env"))
}

func TestApplyFallback(t *testing.T) {
	root := newRootCmd()
	fs := root.PersistentFlags()

	var target string
	applyFallback(fs, "dsn", &target, "", "from-profile")
	assert.Equal(t, "from-profile", target)

	target = ""
	applyFallback(fs, "dsn", &target, "from-env", "from-profile")
	assert.Equal(t, "from-env", target)

	// An explicitly set flag is never overridden.
	require.NoError(t, fs.Set("dsn", "from-flag"))
	target = "from-flag"
	applyFallback(fs, "dsn", &target, "from-env", "from-profile")
	assert.Equal(t, "from-flag", target)
}

func TestActiveProfile(t *testing.T) {
	cfg := &UserConfig{
		CurrentProfile: "dev",
		Profiles: map[string]Profile{
			"dev":  {DSN: "/tmp/dev.ini", Section: "dev"},
			"prod": {DSN: "/tmp/prod.ini", Section: "prod"},
		},
	}
	assert.Equal(t, "dev", cfg.ActiveProfile("").Section)
	assert.Equal(t, "prod", cfg.ActiveProfile("prod").Section)
	assert.Equal(t, Profile{}, cfg.ActiveProfile("missing"))
}
