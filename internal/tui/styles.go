package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the list view and the styled text renderer.
const (
	ColorHeader    = lipgloss.Color("99")
	ColorName      = lipgloss.Color("255")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("86")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("212")
	ColorBadgeFg   = lipgloss.Color("230")
	ColorBadgeBg   = lipgloss.Color("62")
	ColorError     = lipgloss.Color("196")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	NameStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorName)
	AuthorStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	VersionStyle = lipgloss.NewStyle().Foreground(ColorValue)
	BadgeStyle   = lipgloss.NewStyle().Foreground(ColorBadgeFg).Background(ColorBadgeBg).Padding(0, 1)
	CursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
)
