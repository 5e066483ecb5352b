package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/aboutlibs/internal/config"
	"github.com/rshade/aboutlibs/internal/library"
	"github.com/rshade/aboutlibs/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Set once per invocation in setupLogging.

// cliEnv is the state shared by every subcommand of one invocation.
type cliEnv struct {
	cfg       *config.Config
	loader    *library.Loader
	logResult *logging.LogPathResult

	// configPath is the --config value; empty means the default location.
	configPath string
	// projectDir is the resolved .aboutlibs overlay directory, if any.
	projectDir string
	// cfgErr holds a load failure tolerated for the config subcommands.
	cfgErr error
}

// NewRootCmd creates the root command for the aboutlibs CLI.
func NewRootCmd(ver string) *cobra.Command {
	cmd, _ := newRootCmd(ver)
	return cmd
}

func newRootCmd(ver string) (*cobra.Command, *cliEnv) {
	env := &cliEnv{cfg: config.New()}

	var projectDir string

	cmd := &cobra.Command{
		Use:           "aboutlibs",
		Short:         "Browse open-source library attributions",
		Long:          "aboutlibs renders library attribution descriptors (name, author, version, licenses) as a scrollable list.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(env.configPath)
			if err != nil {
				if !isConfigCommand(cmd) {
					return err
				}
				// Config commands must still run so a broken file can be inspected and fixed.
				env.cfgErr = err
				cfg = config.New()
			}

			cwd, err := os.Getwd()
			if err != nil {
				cwd = "."
			}
			env.projectDir = config.ResolveProjectDir(cmd.Context(), projectDir, cwd)
			env.cfg = config.WithProjectDir(cmd.Context(), cfg, env.projectDir)

			result := setupLogging(cmd, env.cfg)
			env.logResult = &result
			env.loader = library.NewLoader(library.WithLogger(logger))
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&env.configPath, "config", "", "config file (default ~/.aboutlibs/config.yaml)")
	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "project directory holding a .aboutlibs overlay")

	cmd.AddCommand(
		newShowCmd(env),
		newWindowCmd(env),
		newValidateCmd(env),
		newLicensesCmd(env),
		newConfigCmd(env),
	)
	closeLogAfterRun(cmd, env)

	return cmd, env
}

// closeLogAfterRun wraps every RunE so the log file is closed whether or not
// the command fails. cobra skips post-run hooks after an error.
func closeLogAfterRun(cmd *cobra.Command, env *cliEnv) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			err := run(c, args)
			return errors.Join(err, env.logResult.Close())
		}
	}
	for _, sub := range cmd.Commands() {
		closeLogAfterRun(sub, env)
	}
}

const rootCmdExample = `  # Browse the libraries in a descriptor
  aboutlibs show aboutlibraries.json

  # Print a plain table without versions
  aboutlibs show aboutlibraries.json --plain --no-version

  # Read the descriptor from stdin
  cat aboutlibraries.json | aboutlibs show -

  # Open a desktop window
  aboutlibs window aboutlibraries.json

  # Check a descriptor and list warnings
  aboutlibs validate aboutlibraries.json

  # Count libraries per license
  aboutlibs licenses aboutlibraries.json

  # Hide license badges by default
  aboutlibs config set display.show_license_badges false`

// newConfigCmd creates the config command group.
func newConfigCmd(env *cliEnv) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		newConfigInitCmd(env), newConfigGetCmd(env), newConfigSetCmd(env),
		newConfigListCmd(env), newConfigValidateCmd(env),
	)
	return cmd
}

// isConfigCommand reports whether cmd belongs to the config command group.
func isConfigCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" && c.HasParent() {
			return true
		}
	}
	return false
}

// sourceError annotates a failure with the descriptor it came from.
func sourceError(path string, err error) error {
	if path == stdinPath {
		return fmt.Errorf("reading descriptor from stdin: %w", err)
	}
	return fmt.Errorf("descriptor %s: %w", path, err)
}
