package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/aboutlibs/internal/library"
	"github.com/rshade/aboutlibs/internal/tui"
)

// newShowCmd creates the show command, which renders a descriptor in the terminal.
func newShowCmd(env *cliEnv) *cobra.Command {
	var (
		flags   displayFlags
		plain   bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Show the libraries in a descriptor",
		Long: `Renders every library in the descriptor as one row: name, author, version
and license badges. On a terminal the list is interactive and scrollable; when
output is piped a table is printed instead. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			opts := flags.displayOptions(env.cfg)
			layout, err := flags.layout(env.cfg)
			if err != nil {
				return err
			}

			mode := tui.DetectOutputMode(plain, noColor)
			logger.Debug().Ctx(cmd.Context()).Stringer("mode", mode).Msg("rendering libraries")

			if mode == tui.OutputModeInteractive {
				return runInteractive(cmd.Context(), cmd.OutOrStdout(), env.loader, data, opts, layout)
			}

			libs, err := env.loader.Load(cmd.Context(), data)
			if err != nil {
				return sourceError(args[0], err)
			}
			if mode == tui.OutputModeStyled {
				return tui.RenderStyled(cmd.OutOrStdout(), libs, opts, layout.Width)
			}
			return tui.RenderPlain(cmd.OutOrStdout(), libs, opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print a plain table even on a terminal")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colours (implies --plain)")

	return cmd
}

// runInteractive runs the scrollable list. The last library activated with
// enter is printed with its links after the program exits.
func runInteractive(
	ctx context.Context,
	out io.Writer,
	loader *library.Loader,
	data string,
	opts tui.DisplayOptions,
	layout tui.Layout,
) error {
	var picked *library.Library
	m := tui.NewLibrariesModel(ctx, data, loader.Load, opts, layout)
	m.OnSelect(func(lib library.Library) {
		picked = &lib
	})

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run interactive list: %w", err)
	}
	if err := m.Err(); err != nil {
		return err
	}
	if picked != nil {
		printLinks(out, *picked)
	}
	return nil
}

func printLinks(w io.Writer, lib library.Library) {
	_, _ = fmt.Fprintln(w, lib.Name)
	if lib.Website != "" {
		_, _ = fmt.Fprintf(w, "  website: %s\n", lib.Website)
	}
	if lib.SCM != "" {
		_, _ = fmt.Fprintf(w, "  source:  %s\n", lib.SCM)
	}
	if lib.Description != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", lib.Description)
	}
}
