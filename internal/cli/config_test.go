package cli_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/config"
)

func TestConfigInit(t *testing.T) {
	cfgPath := setupEnv(t)

	res := execute(t, "config", "init")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Configuration initialized at "+cfgPath)

	loaded, err := config.Load(cfgPath)
	require.NoError(t, err)
	want := config.DefaultConfig()
	assert.Equal(t, want.API, loaded.API)
	assert.Equal(t, want.Catalog, loaded.Catalog)
	assert.Equal(t, want.Home, loaded.Home)
	assert.Empty(t, loaded.Auth.Users)

	res = execute(t, "config", "init")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "already exists")

	res = execute(t, "config", "init", "--force")
	require.NoError(t, res.err)
}

func TestConfigInit_ReplacesInvalidFile(t *testing.T) {
	cfgPath := setupEnv(t)
	writeConfig(t, cfgPath, "catalog:\n  default_mode: carousel\n")

	res := execute(t, "list", "--user", "ash")
	require.ErrorIs(t, res.err, config.ErrInvalidMode)

	res = execute(t, "config", "init", "--force")
	require.NoError(t, res.err)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_mode: grid")
}

func TestConfigShow(t *testing.T) {
	cfgPath := setupEnv(t)
	writeConfig(t, cfgPath, "catalog:\n  default_mode: table\n")
	t.Setenv(config.EnvAPIBaseURL, "http://mirror.local/api/v2")

	res := execute(t, "config", "show")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "default_mode: table")
	assert.Contains(t, res.stdout, "base_url: http://mirror.local/api/v2")
}
