// Package cli provides the command-line interface for company-recover.
package cli

import (
	"log/slog"

	"github.com/companysim/company-recover/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose     bool
	projectsDir string
	storePath   string

	// Global config, logger, and output theme
	cfg        config.Config
	logger     *slog.Logger
	logCleanup func() error
	theme      Theme
)

// rootCmd runs the full recovery when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "company-recover",
	Short: "Rebuild company.json from the _projects folder",
	Long: `company-recover reconstructs the company.json store by scanning the
_projects folder of employee sheets and merging what it finds into the
existing document.

Projects, departments, and employees are matched by name, never by ID, and
existing records are never overwritten - re-running recovery is always safe.

Examples:
  company-recover
  company-recover --projects-dir ./datas/_projects --store ./datas/company.json
  company-recover scan`,
	Version: Version,
	RunE:    runRecover,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if projectsDir != "" {
			cfg.ProjectsDir = projectsDir
		}
		if storePath != "" {
			cfg.StorePath = storePath
		}
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}

		logger, logCleanup = config.SetupLogger(cfg)
		theme = newTheme()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			_ = logCleanup()
		}
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&projectsDir, "projects-dir", "", `projects folder to scan (default "_projects")`)
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", `company.json document to update (default "company.json")`)

	rootCmd.AddCommand(scanCmd)
}
