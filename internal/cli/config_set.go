package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/aboutlibs/internal/config"
)

// newConfigSetCmd creates the config set command. It edits the file on disk,
// so environment overrides and project overlays are never persisted.
func newConfigSetCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration key in the config file",
		Example: `  aboutlibs config set display.show_license_badges false
  aboutlibs config set layout.padding 2`,
		Args:      cobra.ExactArgs(2), //nolint:mnd // Key and value.
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(env.configPath)
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			logger.Debug().Ctx(cmd.Context()).
				Str("key", args[0]).
				Str("path", cfg.FilePath()).
				Msg("config updated")
			cmd.Printf("%s = %s\n", args[0], args[1])
			return nil
		},
	}
}
