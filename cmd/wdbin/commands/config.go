package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/wdbin/internal/config"
	"github.com/thoreinstein/wdbin/internal/editor"
	"github.com/thoreinstein/wdbin/internal/errors"
	"github.com/thoreinstein/wdbin/internal/paths"
)

var configFormat string

func init() {
	configCmd.Flags().StringVar(&configFormat, "format", "yaml", "output format: yaml, toml, json")
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration wdbin uses after merging the config file,
WDBIN_* environment variables, flags and the selected preset.

The output is not validated, so it can be used to inspect a broken setup.`,
	Example: `  wdbin config
  wdbin config --format toml
  wdbin config --preset geckodriver --format json

See Also: wdbin init, wdbin doctor`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Long:  `Print the config file wdbin read, or where wdbin init would create one.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if used := config.UsedFile(); used != "" {
			fmt.Fprintln(out, used)
			return nil
		}
		fmt.Fprintf(out, "%s %s\n", paths.ConfigFile(), colorMuted.Sprint("(not created)"))
		return nil
	},
}

// openEditor is replaced in tests.
var openEditor = func(cmd *cobra.Command, path string) error {
	e := editor.New()
	e.Stdin = cmd.InOrStdin()
	e.Stdout = cmd.OutOrStdout()
	e.Stderr = cmd.ErrOrStderr()
	return e.Open(cmd.Context(), path)
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Long: `Open the config file wdbin reads in your editor.

Uses $EDITOR, then $VISUAL, then nano or vi. When no config file exists,
run 'wdbin init' first.`,
	Example: `  wdbin config edit
  EDITOR="code --wait" wdbin config edit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := config.UsedFile()
		if path == "" {
			err := errors.Wrap(errors.ErrNotFound, "no config file")
			return errors.NewUserError(err, "Run: wdbin init")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Location: %s\n", path)
		return openEditor(cmd, path)
	},
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), cfg, configFormat)
}

func writeConfig(w io.Writer, cfg *config.Config, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case "toml":
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(err, "encoding TOML")
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
		return nil
	default:
		err := errors.Newf("unknown format %q", format)
		return errors.NewUserError(err, "Use one of: yaml, toml, json")
	}
}
