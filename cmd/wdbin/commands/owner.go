package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/wdbin/internal/pkgmeta"
)

// appFs is the filesystem commands read and write through.
var appFs = afero.NewOsFs()

var (
	ownerPackages  string
	ownerNamespace string
)

func init() {
	ownerCmd.Flags().StringVar(&ownerPackages, "packages", "",
		"package metadata file (installed.json or composer.lock; default: packages.path)")
	ownerCmd.Flags().StringVar(&ownerNamespace, "namespace", "",
		"namespace to look up (default: the driver namespace)")
	rootCmd.AddCommand(ownerCmd)
}

var ownerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Find the plugin package that owns a namespace",
	Long: `Scan package metadata for the first plugin package whose autoload
namespaces include the given namespace, and print it.

Only packages of the configured plugin type (packages.plugin_type) are
considered.`,
	Example: `  wdbin owner
  wdbin owner --packages composer.lock --namespace 'Vaimo\ChromeDriver\'`,
	Args: cobra.NoArgs,
	RunE: runOwner,
}

func runOwner(cmd *cobra.Command, _ []string) error {
	cfg, project, err := loadProject()
	if err != nil {
		return err
	}

	file := ownerPackages
	if file == "" {
		file = cfg.Packages.Path
	}
	namespace := ownerNamespace
	if namespace == "" {
		namespace = cfg.Driver.Namespace
	}

	packages, err := pkgmeta.Load(appFs, file)
	if err != nil {
		return err
	}

	pkg, err := project.ResolvePackageForNamespace(packages, namespace)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, pkg.Name)
	if !quiet {
		fmt.Fprintf(out, "  %s %s\n", colorMuted.Sprint("version:   "), valueOr(pkg.Version, "(unknown)"))
		fmt.Fprintf(out, "  %s %s\n", colorMuted.Sprint("type:      "), pkg.Type)
		fmt.Fprintf(out, "  %s %s\n", colorMuted.Sprint("namespaces:"), strings.Join(pkg.Namespaces, ", "))
	}
	return nil
}
