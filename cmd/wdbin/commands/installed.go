package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wdbin/internal/errors"
)

func init() {
	rootCmd.AddCommand(installedCmd)
}

var installedCmd = &cobra.Command{
	Use:   "installed",
	Short: "Print the version of the installed driver binary",
	Long: `Run the driver binary in the binary directory and print the version it
reports. Versions listed in the version map are printed in their canonical
form.

Exits with status 1 when no working binary is found.`,
	Example: `  wdbin installed
  wdbin installed --binary-dir ./bin`,
	Args: cobra.NoArgs,
	RunE: runInstalled,
}

func runInstalled(cmd *cobra.Command, _ []string) error {
	cfg, project, err := loadProject()
	if err != nil {
		return err
	}

	v, err := project.ResolveInstalledDriverVersion(cmd.Context(), cfg.BinaryDir)
	if err != nil {
		return err
	}
	if v == "" {
		err := errors.Wrapf(errors.ErrNotFound, "no working %s binary in %s", cfg.Driver.Name, cfg.BinaryDir)
		return errors.NewUserError(err, "Install the driver there or point --binary-dir at it")
	}

	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
