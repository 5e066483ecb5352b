package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/aboutlibs/internal/library"
)

// printer formats counts with thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// newLicensesCmd creates the licenses command, which counts libraries per license.
func newLicensesCmd(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "licenses FILE",
		Short: "Count libraries per license",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			libs, err := env.loader.Load(cmd.Context(), data)
			if err != nil {
				return sourceError(args[0], err)
			}

			summary := library.LicenseSummary(libs)
			if len(summary) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No licenses declared.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint:mnd // Column padding.
			_, _ = fmt.Fprintln(tw, "LICENSE\tLIBRARIES")
			for _, lc := range summary {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", lc.License, formatCount(lc.Count))
			}
			return tw.Flush()
		},
	}
}
