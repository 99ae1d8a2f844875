package tui

import (
	"github.com/roosce/monday-question/internal/genai"
	"github.com/roosce/monday-question/internal/session"
	"github.com/roosce/monday-question/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive four-panel screen. A missing API key only
// disables live generation; everything else works the same.
func Run(st store.Store, sess *session.Session) error {
	applyColorProfilePreference()

	var gen session.QuestionGenerator
	if c, err := genai.NewClientFromEnv(); err == nil {
		gen = c
	}

	m := newAppModel(st, sess, gen)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
