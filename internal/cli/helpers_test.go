package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/cli"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/config"
)

const testVersion = "1.2.3"

// setupEnv isolates HOME and the config path and returns the config path.
func setupEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	cfgPath := filepath.Join(home, "config.yaml")
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfigPath, cfgPath)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvAPIBaseURL, "")
	return cfgPath
}

// writeConfig writes a config file for the current test environment.
func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

type execResult struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command with args.
func execute(t *testing.T, args ...string) execResult {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd(testVersion)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return execResult{stdout: out.String(), stderr: errOut.String(), err: err}
}
