package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wdbin/internal/analyser"
	"github.com/thoreinstein/wdbin/internal/errors"
)

var statusJSON bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show platform, browser and driver versions",
	Long: `Show an overview of the driver setup: the platform code, the browser
version, the installed driver version and the version the browser needs.

Resolution failures are shown inline rather than failing the command.`,
	Example: `  # Human readable overview
  wdbin status

  # JSON output for scripting
  wdbin status --json`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, project, err := loadProject()
	if err != nil {
		return err
	}

	report := project.Status(cmd.Context(), cfg.BinaryDir)

	if statusJSON {
		return outputStatusJSON(cmd.OutOrStdout(), report)
	}
	outputStatusText(cmd.OutOrStdout(), report)
	return nil
}

func outputStatusJSON(w io.Writer, report analyser.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}

func outputStatusText(w io.Writer, r analyser.Report) {
	support := colorOK.Sprint("supported")
	if !r.Supported {
		support = colorError.Sprint("unsupported")
	}

	row := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", colorLabel.Sprintf("%-11s", label+":"), value)
	}

	row("platform", fmt.Sprintf("%s (%s)", r.Platform, support))
	row("driver", valueOr(r.Driver, "(none)"))
	row("binary dir", r.BinaryDir)
	row("browser", valueOr(r.BrowserVersion, "(not detected)"))
	row("installed", withError(r.Installed, r.InstalledError, "(not installed)"))
	row("required", withError(r.Required, r.RequiredError, "(unknown)"))

	fmt.Fprintln(w)
	switch {
	case r.UpToDate:
		fmt.Fprintf(w, "%s driver is up to date\n", colorOK.Sprint("✓"))
	case r.Installed == "":
		fmt.Fprintf(w, "%s driver %s is not installed\n", colorWarn.Sprint("⚠"), valueOr(r.Required, "(unknown)"))
	default:
		fmt.Fprintf(w, "%s installed %s, required %s\n", colorWarn.Sprint("⚠"), r.Installed, valueOr(r.Required, "(unknown)"))
	}
}

func withError(value, errMsg, placeholder string) string {
	if errMsg != "" {
		return colorError.Sprint(errMsg)
	}
	return valueOr(value, placeholder)
}
