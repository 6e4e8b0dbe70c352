package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wdbin/internal/errors"
)

func init() {
	rootCmd.AddCommand(platformCmd)
}

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Print the detected platform code",
	Long: `Print the platform code of this host (linux64, mac-arm64, win64, ...)
and whether the configured driver ships a binary for it.

Exits with status 1 when the driver does not support the platform.`,
	Example: `  wdbin platform
  wdbin platform --preset geckodriver`,
	Args: cobra.NoArgs,
	RunE: runPlatform,
}

func runPlatform(cmd *cobra.Command, _ []string) error {
	cfg, project, err := loadProject()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, project.Platform)

	if !project.ResolvePlatformSupport() {
		err := errors.Wrapf(errors.ErrPlatformUnsupported, "%s has no binary for %s", cfg.Driver.Name, project.Platform)
		return errors.NewUserError(err, "Download the driver manually or add an executable for this platform to config.yaml")
	}
	if !quiet {
		fmt.Fprintf(out, "%s %s supported\n", colorOK.Sprint("✓"), cfg.Driver.Name)
	}
	return nil
}
