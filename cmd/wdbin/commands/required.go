package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(requiredCmd)
}

var requiredCmd = &cobra.Command{
	Use:   "required",
	Short: "Print the driver version the installed browser needs",
	Long: `Print the driver version this project needs.

A pinned version (--driver-version, WDBIN_DRIVER_PREFERENCES_VERSION or
driver.preferences.version) wins. Otherwise the browser version is looked up
in the version map and refined through the configured version URLs; the
newest version map entry is the last resort.`,
	Example: `  wdbin required
  wdbin required --preset geckodriver
  wdbin required --driver-version 2.46`,
	Args: cobra.NoArgs,
	RunE: runRequired,
}

func runRequired(cmd *cobra.Command, _ []string) error {
	_, project, err := loadProject()
	if err != nil {
		return err
	}

	v, err := project.ResolveRequiredDriverVersion(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
