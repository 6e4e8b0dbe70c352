package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thoreinstein/wdbin/internal/config"
	"github.com/thoreinstein/wdbin/internal/errors"
	"github.com/thoreinstein/wdbin/internal/paths"
	"github.com/thoreinstein/wdbin/internal/preset"
	"github.com/thoreinstein/wdbin/pkg/fileutil"
)

var (
	initYes   bool
	initForce bool
)

// Terminal seams, replaced in tests.
var (
	stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	pickPreset      = fuzzyPickPreset
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Non-interactive mode, accept all defaults")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize wdbin configuration",
	Long: `Create a config.yaml that selects a driver preset.

Without --preset, an interactive picker lists the embedded presets when
stdin is a terminal; otherwise the chromedriver preset is used.

The file is written to --config when given, else to
$XDG_CONFIG_HOME/wdbin/config.yaml.`,
	Example: `  # Pick a preset interactively
  wdbin init

  # Non-interactive
  wdbin init --preset geckodriver --yes

  # Force overwrite existing configuration
  wdbin init --force

  See Also: wdbin config, wdbin doctor`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

// initFile is the configuration written by init. Everything else comes from
// the preset.
type initFile struct {
	Version   int    `yaml:"version"`
	Preset    string `yaml:"preset"`
	BinaryDir string `yaml:"binary_dir"`
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	configPath := configFile
	if configPath == "" {
		configPath = paths.ConfigFile()
	}

	if _, err := appFs.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(out, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(out, "Use --force to overwrite")
		return nil
	}

	name, err := choosePreset(cmd)
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(out, "Aborted")
		return nil
	}
	if _, err := preset.Get(name); err != nil {
		return errors.NewUserError(err, "Available presets: "+presetList())
	}

	binaryDir := paths.DefaultBinaryDir()
	if f := cmd.Flags().Lookup("binary-dir"); f != nil && f.Changed {
		binaryDir = f.Value.String()
	}

	if err := appFs.MkdirAll(filepath.Dir(configPath), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	file := initFile{
		Version:   1,
		Preset:    name,
		BinaryDir: binaryDir,
	}
	if err := fileutil.AtomicWriteYAML(appFs, configPath, file, 0o644); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(out, "Created %s (preset %s)\n", configPath, name)
	return nil
}

// choosePreset returns the preset named by --preset, the interactive pick,
// or the default. An empty name means the user aborted the picker.
func choosePreset(cmd *cobra.Command) (string, error) {
	if f := cmd.Flags().Lookup("preset"); f != nil && f.Changed {
		return f.Value.String(), nil
	}
	if initYes || !stdinIsTerminal() {
		return config.DefaultPreset, nil
	}

	presets, err := preset.All()
	if err != nil {
		return "", err
	}
	return pickPreset(presets)
}

func fuzzyPickPreset(presets []*preset.Preset) (string, error) {
	idx, err := fuzzyfinder.Find(
		presets,
		func(i int) string {
			return presets[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			p := presets[i]
			return fmt.Sprintf("Driver: %s\nBrowser: %s\nPlatforms: %d\n\n%s",
				p.Driver.Name,
				p.Browser.Name,
				len(p.Driver.Executables),
				p.Description,
			)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "preset picker failed")
	}
	return presets[idx].Name, nil
}
