package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/aboutlibs/internal/config"
)

// newConfigGetCmd creates the config get command.
func newConfigGetCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:       "get KEY",
		Short:     "Print the effective value of a configuration key",
		Example:   `  aboutlibs config get display.show_version`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			warnConfigFallback(cmd, env)
			value, err := env.cfg.Get(args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

// newConfigListCmd creates the config list command.
func newConfigListCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every configuration key with its effective value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			warnConfigFallback(cmd, env)
			printConfigValues(cmd, env)
			return nil
		},
	}
}

func printConfigValues(cmd *cobra.Command, env *cliEnv) {
	for _, key := range config.Keys() {
		value, _ := env.cfg.Get(key)
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	}
}

func warnConfigFallback(cmd *cobra.Command, env *cliEnv) {
	if env.cfgErr != nil {
		cmd.PrintErrf("warning: %v; showing defaults\n", env.cfgErr)
	}
}
