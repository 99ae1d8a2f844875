package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func modalBodyWidth(width int) int {
	w := width - 8
	if w < 20 {
		w = 20
	}
	if w > 70 {
		w = 70
	}
	return w
}

func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}

	// Text inputs should always render as a single visual line inside modals.
	// If the view ever contains newlines (or overflows due to ANSI/cursor
	// styling), it can trigger wrapping behavior that looks like "newline
	// insertion" while typing.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Never exceed the modal body width; terminate ANSI styling to
		// prevent bleed.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)
	titleLine := lipgloss.NewStyle().Bold(true).Render(title)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Width(bodyW + 2).
		Render(titleLine + "\n" + content)
}
