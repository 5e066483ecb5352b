package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/aboutlibs/internal/config"
)

// newConfigInitCmd creates the config init command for initializing configuration.
// Inside a project (see --project-dir) it writes the project-local
// .aboutlibs/config.yaml and a .gitignore; otherwise the global file.
func newConfigInitCmd(env *cliEnv) *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

When a project directory is given with --project-dir or $ABOUTLIBS_PROJECT_DIR,
the file is written to $PROJECT/.aboutlibs/config.yaml together with a
.gitignore for log files. Use --global to write the global file instead.`,
		Example: `  # Create global configuration
  aboutlibs config init

  # Create project-local configuration
  aboutlibs config init --project-dir .

  # Overwrite an existing file
  aboutlibs config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if env.projectDir != "" && !global {
				return initProjectConfig(cmd, env.projectDir, force)
			}
			return initGlobalConfig(cmd, env.configPath, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "write the global file even when a project directory is set")

	return cmd
}

// initProjectConfig creates projectDir/config.yaml and projectDir/.gitignore.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, "config.yaml")
	if err := checkWritable(configPath, force); err != nil {
		return err
	}

	cfg := config.New()
	cfg.SetConfigPath(configPath)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	created, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore for project-local log files\n")
	}
	return nil
}

// initGlobalConfig creates the global config, or path when set.
func initGlobalConfig(cmd *cobra.Command, path string, force bool) error {
	cfg := config.New()
	if path != "" {
		cfg.SetConfigPath(path)
	}
	if err := checkWritable(cfg.FilePath(), force); err != nil {
		return err
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.FilePath())
	return nil
}

func checkWritable(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errors.New("configuration file already exists, use --force to overwrite")
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}
