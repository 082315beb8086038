package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"stackcheck/internal/check"
)

// StatusLine formats a one-line progress entry for a completed check
func StatusLine(r check.Result) string {
	indicator, style := statusIndicator(r.Status)

	line := fmt.Sprintf("%s %s", style.Render(indicator+" "+r.Status.String()), NameStyle.Render(r.Name))
	if detail := resultDetail(r); detail != "" {
		line += "  " + DetailStyle.Render(detail)
	}
	return line
}

// PrintResultTable prints check results in a styled box table with a
// summary line
func PrintResultTable(results []check.Result) {
	headers := []string{"Check", "Status", "Detail"}

	// Name and detail columns grow with their content
	nameWidth := len(headers[0])
	detailWidth := 24
	for _, r := range results {
		if w := runewidth.StringWidth(r.Name); w > nameWidth {
			nameWidth = w
		}
		if w := runewidth.StringWidth(resultDetail(r)); w > detailWidth {
			detailWidth = w
		}
	}
	if detailWidth > 72 {
		detailWidth = 72
	}

	colWidths := []int{nameWidth, 8, detailWidth}

	var sb strings.Builder

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(TopT))
		}
	}
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range headers {
		cell := " " + padRight(h, colWidths[i]) + " "
		sb.WriteString(HeaderStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	sb.WriteString(BorderStyle.Render(LeftT))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(Cross))
		}
	}
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	// Data rows
	for _, r := range results {
		sb.WriteString(BorderStyle.Render(Vertical))

		cell := " " + padRight(r.Name, colWidths[0]) + " "
		sb.WriteString(NameStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		indicator, style := statusIndicator(r.Status)
		cell = " " + padRight(indicator+" "+r.Status.String(), colWidths[1]) + " "
		sb.WriteString(style.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(resultDetail(r), colWidths[2]) + " "
		sb.WriteString(DetailStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(BottomT))
		}
	}
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	fmt.Print(sb.String())

	fmt.Println(SummaryLine(check.Summarize(results)))
}

// SummaryLine formats the aggregate counts of a run
func SummaryLine(s check.Summary) string {
	parts := []string{
		PassStyle.Render(fmt.Sprintf("%d passed", s.Passed)),
	}
	if s.Failed > 0 {
		parts = append(parts, FailStyle.Render(fmt.Sprintf("%d failed", s.Failed)))
	}
	if s.Skipped > 0 {
		parts = append(parts, SkipStyle.Render(fmt.Sprintf("%d skipped", s.Skipped)))
	}
	return "  " + strings.Join(parts, ", ")
}

// resultDetail merges detail text and error into a single cell
func resultDetail(r check.Result) string {
	switch {
	case r.Detail != "" && r.Err != nil:
		return fmt.Sprintf("%s: %v", r.Detail, r.Err)
	case r.Err != nil:
		return r.Err.Error()
	default:
		return r.Detail
	}
}

func statusIndicator(s check.Status) (string, lipgloss.Style) {
	switch s {
	case check.StatusPass:
		return "●", PassStyle
	case check.StatusFail:
		return "●", FailStyle
	case check.StatusSkip:
		return "◌", SkipStyle
	default:
		return "○", MutedStyle
	}
}
