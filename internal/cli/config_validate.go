package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newConfigValidateCmd creates the config validate command for validating configuration.
func newConfigValidateCmd(env *cliEnv) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and value ranges: padding and
height must not be negative, and the log format must be console or json. A
project overlay, when present, is validated after merging.`,
		Example: `  # Validate current configuration
  aboutlibs config validate

  # Validate and show the effective settings
  aboutlibs config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if env.cfgErr != nil {
				return fmt.Errorf("configuration validation failed: %w", env.cfgErr)
			}
			if err := env.cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			cmd.Printf("✅ Configuration is valid\n")
			if verbose {
				cmd.Printf("\nConfiguration file: %s\n", env.cfg.FilePath())
				if env.projectDir != "" {
					cmd.Printf("Project directory:  %s\n", env.projectDir)
				}
				cmd.Println()
				printConfigValues(cmd, env)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the effective settings")

	return cmd
}
