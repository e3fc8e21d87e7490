package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/cli"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/config"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/session"
)

func TestRoot_Version(t *testing.T) {
	setupEnv(t)
	res := execute(t, "--version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, testVersion)
}

func TestRoot_BrowseNeedsTerminal(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "root", args: []string{"--plain"}},
		{name: "browse", args: []string{"browse", "--plain"}},
		{name: "browse with path", args: []string{"browse", "/pokedex/25", "--plain", "--user", "ash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t)
			res := execute(t, tt.args...)
			require.ErrorIs(t, res.err, cli.ErrNotInteractive)
		})
	}
}

func TestRoot_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "featured id beyond dataset",
			config:  "home:\n  featured: [1, 200]\n",
			args:    []string{"info", "--plain"},
			wantMsg: "home.featured: id 200 outside 1..151",
		},
		{
			name:    "invalid columns",
			config:  "catalog:\n  columns: {xs: 0, sm: 1, md: 1, lg: 1, xl: 1}\n",
			args:    []string{"info", "--plain"},
			wantErr: config.ErrInvalidColumns,
		},
		{
			name:    "unknown key",
			config:  "colour: blue\n",
			args:    []string{"info", "--plain"},
			wantMsg: "parsing config",
		},
		{
			name:    "user not on allow-list",
			config:  "auth:\n  users:\n    - name: misty\n",
			args:    []string{"list", "--user", "ash"},
			wantErr: session.ErrUserNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgPath := setupEnv(t)
			writeConfig(t, cfgPath, tt.config)

			res := execute(t, tt.args...)
			require.Error(t, res.err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, res.err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, res.err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRoot_ConfigFlag(t *testing.T) {
	setupEnv(t)
	other := t.TempDir() + "/other.yaml"
	writeConfig(t, other, "auth:\n  user: brock\n")

	res := execute(t, "list", "--config", other, "--plain", "--search", "onix")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Onix")
}

func TestInfo(t *testing.T) {
	setupEnv(t)
	res := execute(t, "info", "--plain")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "About This Pokédex")
	assert.Contains(t, res.stdout, testVersion)
}
