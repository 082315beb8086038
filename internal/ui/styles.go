package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder = "240"
	ColorHeader = "252"
	ColorName   = "81"
	ColorPass   = "82"
	ColorFail   = "196"
	ColorSkip   = "214"
	ColorMuted  = "240"
	ColorDetail = "245"
)

// Shared styles
var (
	BorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	NameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorName))
	PassStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPass))
	FailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFail))
	SkipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSkip))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	DetailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDetail))
)

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}
