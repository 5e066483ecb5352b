package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rshade/aboutlibs/internal/library"
)

// OutputMode selects how a library list reaches the terminal.
type OutputMode int

const (
	// OutputModePlain is an uncoloured table, for pipes and NO_COLOR.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints coloured rows once, without keyboard interaction.
	OutputModeStyled
	// OutputModeInteractive runs the scrollable Bubble Tea view.
	OutputModeInteractive
)

func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return fmt.Sprintf("OutputMode(%d)", int(m))
	}
}

// DetectOutputMode picks a mode from the flags, the environment and whether
// stdin/stdout are terminals.
func DetectOutputMode(forcePlain, noColor bool) OutputMode {
	return detectOutputMode(
		forcePlain,
		noColor,
		term.IsTerminal(int(os.Stdout.Fd())),
		term.IsTerminal(int(os.Stdin.Fd())),
		os.LookupEnv,
	)
}

func detectOutputMode(
	forcePlain, noColor, stdoutTTY, stdinTTY bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if forcePlain || !stdoutTTY {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok || noColor {
		return OutputModePlain
	}
	if termName, _ := lookupEnv("TERM"); termName == "dumb" {
		return OutputModePlain
	}
	if !stdinTTY {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalSize returns the stdout size, or the default layout size when unknown.
func TerminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// RenderPlain writes one table line per library. Columns whose toggle is off
// are omitted; empty values leave the cell blank.
func RenderPlain(w io.Writer, libs library.Libraries, opts DisplayOptions) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd // Column padding.

	header := []string{"NAME"}
	if opts.ShowAuthor {
		header = append(header, "AUTHOR")
	}
	if opts.ShowVersion {
		header = append(header, "VERSION")
	}
	if opts.ShowLicenseBadges {
		header = append(header, "LICENSES")
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}

	for _, lib := range libs {
		seg := Segments(lib, opts)
		cells := []string{lib.Name}
		if opts.ShowAuthor {
			cells = append(cells, cellIf(seg.Author, lib.Author()))
		}
		if opts.ShowVersion {
			cells = append(cells, cellIf(seg.Version, strings.TrimSpace(lib.Version)))
		}
		if opts.ShowLicenseBadges {
			cells = append(cells, cellIf(seg.Licenses, strings.Join(lib.LicenseIDs(), ", ")))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func cellIf(show bool, value string) string {
	if !show {
		return ""
	}
	return value
}

// RenderStyled writes a coloured header and every row, without interaction.
func RenderStyled(w io.Writer, libs library.Libraries, opts DisplayOptions, width int) error {
	if len(libs) == 0 {
		_, err := fmt.Fprintln(w, MutedStyle.Render("No libraries to display."))
		return err
	}

	row := lipgloss.NewStyle()
	if width > 0 {
		row = row.MaxWidth(width)
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render(fmt.Sprintf("OPEN SOURCE LIBRARIES (%d)", len(libs))))
	sb.WriteString("\n")
	for _, lib := range libs {
		sb.WriteString(row.Render(RenderRow(lib, opts, false)))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
