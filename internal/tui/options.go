package tui

// DisplayOptions toggles the optional segments of each row. They never affect
// loading or ordering.
type DisplayOptions struct {
	ShowAuthor        bool
	ShowVersion       bool
	ShowLicenseBadges bool
}

// DefaultDisplayOptions shows every segment.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{
		ShowAuthor:        true,
		ShowVersion:       true,
		ShowLicenseBadges: true,
	}
}

// Padding is the content padding around the list, in terminal cells.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformPadding pads every side by n cells.
func UniformPadding(n int) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// Layout carries presentation geometry only.
type Layout struct {
	Width   int
	Height  int
	Padding Padding
}

// Default viewport used until the terminal reports its size.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// DefaultLayout is an 80x24 viewport with no padding.
func DefaultLayout() Layout {
	return Layout{Width: defaultWidth, Height: defaultHeight}
}

// innerHeight is the number of list rows left after vertical padding.
func (l Layout) innerHeight() int {
	return max(l.Height-l.Padding.Top-l.Padding.Bottom, 0)
}

// innerWidth is the width left after horizontal padding.
func (l Layout) innerWidth() int {
	return max(l.Width-l.Padding.Left-l.Padding.Right, 0)
}
