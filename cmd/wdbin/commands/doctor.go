package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wdbin/internal/analyser"
	"github.com/thoreinstein/wdbin/internal/config"
	"github.com/thoreinstein/wdbin/internal/doctor"
	"github.com/thoreinstein/wdbin/internal/errors"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
	doctorFix     bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"repair fixable issues, then check again")
	doctorCmd.MarkFlagsMutuallyExclusive("json", "quiet", "verbose")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose driver setup issues",
	Long: `Run diagnostic checks on the wdbin configuration and driver setup.

Validates the configuration, checks platform support and the binary
directory, detects the browser and compares the installed driver with the
version the browser needs.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  wdbin doctor
  wdbin doctor --verbose
  wdbin doctor --fix`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	runner := newDoctorRunner(cfg)
	report := runner.Run(cmd.Context())

	if doctorFix {
		if applied := applyFixes(out, runner); applied > 0 {
			// The status source resolves once per runner.
			runner = newDoctorRunner(cfg)
			report = runner.Run(cmd.Context())
		}
	}

	if err := outputDoctorReport(out, report); err != nil {
		return err
	}

	if report.HasErrors() {
		return errDoctorErrors
	}
	if report.HasWarnings() {
		return errDoctorWarnings
	}
	return nil
}

// newDoctorRunner registers the checks in the order they are reported.
func newDoctorRunner(cfg *config.Config) *doctor.Runner {
	project := newProject(cfg)
	status := doctor.NewStatusSource(func(ctx context.Context) analyser.Report {
		return project.Status(ctx, cfg.BinaryDir)
	})

	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewConfigCheck(cfg, config.UsedFile()))
	runner.AddCheck(doctor.NewPlatformCheck(project.Platform, project.ResolvePlatformSupport(), cfg.Driver.Name))
	runner.AddCheck(doctor.NewBinaryDirCheck(appFs, cfg.BinaryDir))
	runner.AddCheck(doctor.NewBrowserCheck(status, cfg.Browser.Name))
	runner.AddCheck(doctor.NewDriverCheck(status))
	runner.AddCheck(doctor.NewDriftCheck(status))
	return runner
}

// applyFixes runs every fixer that reports fixable issues and returns how
// many fixes succeeded.
func applyFixes(w io.Writer, runner *doctor.Runner) int {
	applied := 0
	for _, check := range runner.Checks() {
		fixer, ok := check.(doctor.Fixer)
		if !ok || !fixer.CanFix() {
			continue
		}
		for _, res := range fixer.Fix() {
			if res.Fixed {
				applied++
			}
			if doctorQuiet || doctorJSON {
				continue
			}
			if res.Fixed {
				fmt.Fprintf(w, "%s fixed %s: %s\n", colorOK.Sprint("✓"), res.Path, res.Description)
			} else {
				fmt.Fprintf(w, "%s could not fix %s: %v\n", colorError.Sprint("✗"), res.Path, res.Error)
			}
		}
	}
	return applied
}

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		return outputDoctorJSON(w, report)
	}

	outputDoctorText(w, report)
	return nil
}

func outputDoctorJSON(w io.Writer, report *doctor.DoctorReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.DoctorReport) {
	// Normal mode shows only errors and warnings.
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  %s %s\n", colorMuted.Sprint("hint:"), result.FixHint)
		}
		if showAll {
			for _, line := range detailLines(result.Details) {
				fmt.Fprintf(w, "  %s\n", colorMuted.Sprint(line))
			}
		}
	}

	if hasOutput || showAll {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func detailLines(details map[string]any) []string {
	lines := make([]string, 0, len(details))
	for _, k := range slices.Sorted(maps.Keys(details)) {
		lines = append(lines, fmt.Sprintf("%s: %v", k, details[k]))
	}
	return lines
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return colorOK.Sprint("✓")
	case doctor.SeverityInfo:
		return colorInfo.Sprint("ℹ")
	case doctor.SeverityWarning:
		return colorWarn.Sprint("⚠")
	case doctor.SeverityError:
		return colorError.Sprint("✗")
	default:
		return "?"
	}
}

// errDoctorWarnings is a sentinel error for exit code 1.
var errDoctorWarnings = errors.New("warnings found")

// errDoctorErrors is a sentinel error for exit code 2.
var errDoctorErrors = errors.New("errors found")
