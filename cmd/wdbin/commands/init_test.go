package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/wdbin/internal/errors"
	"github.com/thoreinstein/wdbin/internal/preset"
)

func stubTerminal(t *testing.T, tty bool, pick func([]*preset.Preset) (string, error)) {
	t.Helper()
	origTTY, origPick := stdinIsTerminal, pickPreset
	t.Cleanup(func() { stdinIsTerminal, pickPreset = origTTY, origPick })

	stdinIsTerminal = func() bool { return tty }
	pickPreset = func(presets []*preset.Preset) (string, error) {
		if pick == nil {
			t.Fatal("picker should not be shown")
		}
		return pick(presets)
	}
}

func readInitFile(t *testing.T, path string) initFile {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var f initFile
	require.NoError(t, yaml.Unmarshal(data, &f))
	return f
}

func TestInitCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		tty        bool
		pick       func([]*preset.Preset) (string, error)
		wantPreset string
	}{
		{
			name:       "default preset without a terminal",
			wantPreset: "chromedriver",
		},
		{
			name:       "preset flag",
			args:       []string{"--preset", "geckodriver"},
			tty:        true,
			wantPreset: "geckodriver",
		},
		{
			name:       "yes skips the picker",
			args:       []string{"--yes"},
			tty:        true,
			wantPreset: "chromedriver",
		},
		{
			name: "picker on a terminal",
			tty:  true,
			pick: func(presets []*preset.Preset) (string, error) {
				names := make([]string, len(presets))
				for i, p := range presets {
					names[i] = p.Name
				}
				if len(names) != 2 || names[0] != "chromedriver" || names[1] != "geckodriver" {
					return "", errors.Newf("unexpected presets %v", names)
				}
				return "geckodriver", nil
			},
			wantPreset: "geckodriver",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newCLIEnv(t)
			stubTerminal(t, tt.tty, tt.pick)
			path := filepath.Join(env.dir, "config", "config.yaml")

			out, err := env.execute(append([]string{"init"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, "Created "+path)

			f := readInitFile(t, path)
			assert.Equal(t, 1, f.Version)
			assert.Equal(t, tt.wantPreset, f.Preset)
			assert.NotEmpty(t, f.BinaryDir)
		})
	}
}

func TestInitCommand_PickerAborted(t *testing.T) {
	env := newCLIEnv(t)
	stubTerminal(t, true, func([]*preset.Preset) (string, error) { return "", nil })

	out, err := env.execute("init")
	require.NoError(t, err)
	assert.Equal(t, "Aborted\n", out)
	assert.NoFileExists(t, filepath.Join(env.dir, "config", "config.yaml"))
}

func TestInitCommand_ExistingConfig(t *testing.T) {
	env := newCLIEnv(t)
	stubTerminal(t, false, nil)
	path := filepath.Join(env.dir, "config", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("version: 1\npreset: geckodriver\n"), 0o644))

	out, err := env.execute("init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration already exists")
	assert.Equal(t, "geckodriver", readInitFile(t, path).Preset)

	out, err = env.execute("init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")
	assert.Equal(t, "chromedriver", readInitFile(t, path).Preset)
}

func TestInitCommand_ExplicitPathAndBinaryDir(t *testing.T) {
	env := newCLIEnv(t)
	stubTerminal(t, false, nil)
	path := filepath.Join(env.dir, "project", "wdbin.yaml")

	_, err := env.execute("init", "--config", path, "--binary-dir", env.binDir)
	require.NoError(t, err)

	f := readInitFile(t, path)
	assert.Equal(t, env.binDir, f.BinaryDir)
}

func TestInitCommand_UnknownPreset(t *testing.T) {
	env := newCLIEnv(t)
	stubTerminal(t, false, nil)

	_, err := env.execute("init", "--preset", "operadriver")
	require.Error(t, err)

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, errors.ExitUser, exitErr.Code)
	assert.Contains(t, exitErr.Suggestion, "chromedriver, geckodriver")
}

func TestInitCommand_WrittenConfigLoads(t *testing.T) {
	env := newCLIEnv(t)
	stubTerminal(t, false, nil)

	_, err := env.execute("init", "--preset", "geckodriver", "--binary-dir", env.binDir)
	require.NoError(t, err)

	out, err := env.execute("platform")
	require.NoError(t, err)
	assert.Contains(t, out, "geckodriver supported")
}
