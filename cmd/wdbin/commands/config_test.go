package commands

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/wdbin/internal/config"
	"github.com/thoreinstein/wdbin/internal/errors"
)

func TestConfigCommand_Formats(t *testing.T) {
	tests := []struct {
		format string
		decode func([]byte, any) error
	}{
		{format: "yaml", decode: yaml.Unmarshal},
		{format: "toml", decode: toml.Unmarshal},
		{format: "json", decode: json.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			env := newCLIEnv(t)
			env.writeConfig("preset: geckodriver\n")

			out, err := env.execute("config", "--format", tt.format)
			require.NoError(t, err)

			var got struct {
				Preset    string `yaml:"preset" toml:"preset" json:"preset"`
				BinaryDir string `yaml:"binary_dir" toml:"binary_dir" json:"binary_dir"`
				Driver    struct {
					Name string `yaml:"name" toml:"name" json:"name"`
				} `yaml:"driver" toml:"driver" json:"driver"`
			}
			require.NoError(t, tt.decode([]byte(out), &got), "output:\n%s", out)
			assert.Equal(t, "geckodriver", got.Preset)
			assert.Equal(t, env.binDir, got.BinaryDir)
			assert.Equal(t, "geckodriver", got.Driver.Name, "preset values are merged in")
		})
	}
}

func TestConfigCommand_YAMLRoundTrips(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.execute("config")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "chromedriver", cfg.Driver.Name)
	require.NotEmpty(t, cfg.Driver.VersionMap)
	assert.Equal(t, "114", cfg.Driver.VersionMap[0].Browser)
	assert.Equal(t, config.DefaultPollDelay, cfg.Driver.Polling.Delay)
}

func TestConfigCommand_ShowsInvalidConfig(t *testing.T) {
	env := newCLIEnv(t)
	env.writeConfig(`driver:
  polling:
    pattern: "(["
`)

	out, err := env.execute("config")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "([", cfg.Driver.Polling.Pattern)
}

func TestConfigCommand_UnknownFormat(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.execute("config", "--format", "ini")
	require.Error(t, err)

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, errors.ExitUser, exitErr.Code)
}

func TestConfigPathCommand(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.execute("config", "path")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "config.yaml (not created)"), out)

	env.writeConfig("preset: chromedriver\n")
	out, err = env.execute("config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, "config.yaml")
	assert.NotContains(t, out, "not created")
}

func TestConfigEditCommand(t *testing.T) {
	env := newCLIEnv(t)
	env.writeConfig("preset: chromedriver\n")

	orig := openEditor
	t.Cleanup(func() { openEditor = orig })
	var edited string
	openEditor = func(_ *cobra.Command, path string) error {
		edited = path
		return nil
	}

	out, err := env.execute("config", "edit")
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(edited))
	assert.True(t, filepath.IsAbs(edited), edited)
	assert.Contains(t, out, "Location: "+edited)
}

func TestConfigEditCommand_NoConfigFile(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.execute("config", "edit")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, "Run: wdbin init", exitErr.Suggestion)
}
