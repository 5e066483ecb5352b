// Package gui shows a library list in a fyne desktop window.
//
// The list is a fyne widget.List, which creates row widgets only for the
// visible viewport and recycles them while scrolling. Records are held behind
// an atomic pointer that is written once per load on the fyne goroutine.
package gui
