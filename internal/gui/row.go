package gui

import (
	"strings"

	"github.com/rshade/aboutlibs/internal/library"
	"github.com/rshade/aboutlibs/internal/tui"
)

// detailSeparator joins author and version on the second line of a row.
const detailSeparator = " · "

// RowText holds the label text for one row. Empty fields are hidden.
type RowText struct {
	Name   string
	Detail string
	Badges string
}

// NewRowText applies the display options to lib.
func NewRowText(lib library.Library, opts tui.DisplayOptions) RowText {
	seg := tui.Segments(lib, opts)

	var detail []string
	if seg.Author {
		detail = append(detail, lib.Author())
	}
	if seg.Version {
		detail = append(detail, strings.TrimSpace(lib.Version))
	}

	row := RowText{
		Name:   lib.Name,
		Detail: strings.Join(detail, detailSeparator),
	}
	if seg.Licenses {
		ids := lib.LicenseIDs()
		badges := make([]string, 0, len(ids))
		for _, id := range ids {
			badges = append(badges, "["+id+"]")
		}
		row.Badges = strings.Join(badges, " ")
	}
	return row
}
