package tui

import (
	"strings"

	"github.com/rshade/aboutlibs/internal/library"
)

// Row cursor markers.
const (
	cursorMarker   = "▸ "
	noCursorMarker = "  "
	segmentGap     = "  "
)

// RowSegments records which parts of a row are rendered. The name is always shown.
type RowSegments struct {
	Author   bool
	Version  bool
	Licenses bool
}

// Segments applies the display rule: a segment shows only when its toggle is
// on and the record has a non-empty value for it.
func Segments(lib library.Library, opts DisplayOptions) RowSegments {
	return RowSegments{
		Author:   opts.ShowAuthor && lib.HasAuthor(),
		Version:  opts.ShowVersion && lib.HasVersion(),
		Licenses: opts.ShowLicenseBadges && lib.HasLicenses(),
	}
}

// RenderRow renders one library as a single styled line.
func RenderRow(lib library.Library, opts DisplayOptions, selected bool) string {
	seg := Segments(lib, opts)

	var sb strings.Builder
	if selected {
		sb.WriteString(CursorStyle.Render(cursorMarker))
	} else {
		sb.WriteString(noCursorMarker)
	}
	sb.WriteString(NameStyle.Render(lib.Name))

	if seg.Author {
		sb.WriteString(segmentGap)
		sb.WriteString(AuthorStyle.Render(lib.Author()))
	}
	if seg.Version {
		sb.WriteString(segmentGap)
		sb.WriteString(VersionStyle.Render(strings.TrimSpace(lib.Version)))
	}
	if seg.Licenses {
		for _, id := range lib.LicenseIDs() {
			sb.WriteString(" ")
			sb.WriteString(BadgeStyle.Render(id))
		}
	}
	return sb.String()
}
