package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	// work with runes to handle multi-byte characters
	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

func renderDiffLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(line, "@@"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case trimmed == "":
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	return style.Render(truncateToWidth(line, width))
}

// renderTextBox draws text in a rounded box, keeping at most maxLines lines.
func renderTextBox(header, text string, accentColor lipgloss.Color, width, maxLines int, lineFn func(string, int) string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	truncated := false

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines-1]
		truncated = true
	}

	contentWidth := width - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	bodyLines := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		bodyLines = append(bodyLines, lineFn(line, contentWidth))
	}

	if truncated {
		bodyLines = append(bodyLines, truncateToWidth("…", contentWidth))
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(truncateToWidth(header, contentWidth)),
		lipgloss.JoinVertical(lipgloss.Left, bodyLines...),
	))
}

func plainLine(line string, width int) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Render(truncateToWidth(line, width))
}

func titleView(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2).
		Render(text)
}

func summaryView(format string, values ...int) string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	args := make([]any, 0, len(values))
	for _, v := range values {
		args = append(args, accentStyle.Render(fmt.Sprintf("%d", v)))
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2).
		Render(fmt.Sprintf(format, args...))
}

func footerView(text string, width int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(width).
		Render(text)
}
