package cli

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ulikunitz/xz"

	"github.com/rshade/aboutlibs/internal/config"
	"github.com/rshade/aboutlibs/internal/tui"
)

// stdinPath reads the descriptor from standard input.
const stdinPath = "-"

// Compressed descriptor signatures.
//
//nolint:gochecknoglobals // Constant byte signatures.
var (
	xzMagic   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	gzipMagic = []byte{0x1F, 0x8B}
)

// readSource returns the descriptor text at path, or stdin for "-".
// xz and gzip compressed input is recognised by its signature.
func readSource(cmd *cobra.Command, path string) (string, error) {
	var r io.Reader
	if path == stdinPath {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", sourceError(path, err)
		}
		defer f.Close()
		r = f
	}

	r, err := decompress(r)
	if err != nil {
		return "", sourceError(path, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", sourceError(path, err)
	}
	return string(data), nil
}

// decompress wraps r in a decoder when it starts with a known signature.
func decompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(xzMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(head, xzMagic):
		logger.Debug().Msg("using xz decompression")
		xr, xerr := xz.NewReader(br)
		if xerr != nil {
			return nil, fmt.Errorf("creating xz reader: %w", xerr)
		}
		return xr, nil
	case bytes.HasPrefix(head, gzipMagic):
		logger.Debug().Msg("using gzip decompression")
		gr, gerr := gzip.NewReader(br)
		if gerr != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", gerr)
		}
		return gr, nil
	default:
		return br, nil
	}
}

// displayFlags are the per-invocation overrides of the display config.
type displayFlags struct {
	noAuthor  bool
	noVersion bool
	noBadges  bool
	padding   int
	height    int
}

func (f *displayFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noAuthor, "no-author", false, "hide authors")
	cmd.Flags().BoolVar(&f.noVersion, "no-version", false, "hide versions")
	cmd.Flags().BoolVar(&f.noBadges, "no-badges", false, "hide license badges")
	cmd.Flags().IntVar(&f.padding, "padding", -1, "content padding in cells (default from config)")
	cmd.Flags().IntVar(&f.height, "height", -1, "list height in rows (default from config, 0 = terminal height)")
}

// displayOptions merges the flags over the config. Flags can only hide segments.
func (f *displayFlags) displayOptions(cfg *config.Config) tui.DisplayOptions {
	return tui.DisplayOptions{
		ShowAuthor:        cfg.Display.ShowAuthor && !f.noAuthor,
		ShowVersion:       cfg.Display.ShowVersion && !f.noVersion,
		ShowLicenseBadges: cfg.Display.ShowLicenseBadges && !f.noBadges,
	}
}

// layout resolves padding and height against the config and terminal size.
func (f *displayFlags) layout(cfg *config.Config) (tui.Layout, error) {
	if f.padding < -1 || f.height < -1 {
		return tui.Layout{}, errors.New("--padding and --height must be >= 0")
	}

	padding := cfg.Layout.Padding
	if f.padding >= 0 {
		padding = f.padding
	}
	height := cfg.Layout.Height
	if f.height >= 0 {
		height = f.height
	}

	width, termHeight := tui.TerminalSize()
	if height == 0 || height > termHeight {
		height = termHeight
	}
	return tui.Layout{Width: width, Height: height, Padding: tui.UniformPadding(padding)}, nil
}
