// Package list provides a virtually scrolled list for Bubble Tea views.
//
// Only the rows inside the viewport, plus a small buffer, are rendered on each
// View call, so render cost tracks the viewport height rather than the number of
// items. The model handles keyboard navigation (up/down, j/k, pgup/pgdn,
// home/end) and window resizes.
package list
