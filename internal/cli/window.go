package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/aboutlibs/internal/gui"
	"github.com/rshade/aboutlibs/internal/library"
)

// newWindowCmd creates the window command, which opens a desktop list.
func newWindowCmd(env *cliEnv) *cobra.Command {
	var (
		flags displayFlags
		title string
	)

	cmd := &cobra.Command{
		Use:   "window FILE",
		Short: "Open the libraries in a desktop window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			gui.Run(ctx, env.loader.Load, data, gui.WindowOptions{
				Title:   title,
				Display: flags.displayOptions(env.cfg),
				OnSelect: func(lib library.Library) {
					logger.Info().Ctx(ctx).
						Str("library", lib.Name).
						Str("website", lib.Website).
						Msg("library selected")
				},
			})
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&title, "title", "", "window title")

	return cmd
}
