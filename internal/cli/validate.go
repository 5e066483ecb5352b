package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/aboutlibs/internal/library"
)

// newValidateCmd creates the validate command.
func newValidateCmd(env *cliEnv) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a descriptor against the schema and report warnings",
		Long: `Loads the descriptor exactly as "show" would and reports the number of
libraries. Advisory warnings cover versions that are not semantic versions,
duplicate names and libraries without a license. With --strict, any warning
fails the command.`,
		Example: `  aboutlibs validate aboutlibraries.json
  aboutlibs validate --strict aboutlibraries.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			libs, err := env.loader.Load(cmd.Context(), data)
			if err != nil {
				return sourceError(args[0], err)
			}

			findings := library.Lint(libs)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s libraries loaded\n", formatCount(len(libs)))
			for _, f := range findings {
				_, _ = fmt.Fprintf(out, "warning: %s\n", f)
			}

			if strict && len(findings) > 0 {
				return fmt.Errorf("%d warnings in strict mode", len(findings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")

	return cmd
}
