package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so everything goes through lipgloss.AdaptiveColor and "faint" styling is
// only applied on dark backgrounds (faint text on light terminals often
// becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted  lipgloss.TerminalColor = ac("240", "243")
	colorAccent lipgloss.TerminalColor = ac("27", "62") // blue

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	// Panel borders: the focused panel gets the accent, the rest stay soft.
	colorPanelBorder   lipgloss.TerminalColor = ac("250", "243")
	colorFocusedBorder lipgloss.TerminalColor = ac("27", "62")

	colorInputBg lipgloss.TerminalColor = ac("254", "234")

	// Positive notices ("Copied").
	colorOK lipgloss.TerminalColor = ac("28", "35") // green
)

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI. termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE,
// which is useful for non-interactive output but can accidentally disable
// colors in a TUI, so the TUI only honors NO_COLOR.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
