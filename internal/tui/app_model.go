package tui

import (
	"github.com/roosce/monday-question/internal/session"
	"github.com/roosce/monday-question/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type appModel struct {
	store store.Store
	sess  *session.Session
	// generator may be nil (no API key); generation then falls back.
	generator session.QuestionGenerator

	width  int
	height int

	focus panel

	questionCursor int
	historyCursor  int
	teamCursor     int

	modal  modalKind
	input  textinput.Model // add-member and add-history question
	rating textinput.Model // add-history rating
	// modalFocus is the focused input inside the add-history modal (0=question 1=rating).
	modalFocus int

	editor *historyEditor

	copied    bool
	copiedSeq int

	generating bool
	genSeq     int

	notice string
}

func newAppModel(st store.Store, sess *session.Session, gen session.QuestionGenerator) appModel {
	m := appModel{
		store:     st,
		sess:      sess,
		generator: gen,
	}

	// Best-effort restore of the last focused panel.
	if ts, err := st.LoadTUIState(); err == nil {
		if p, ok := panelByName(ts.FocusedPanel); ok {
			m.focus = p
		}
	}
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Focus()
	return in
}

func (m *appModel) saveTUIState() {
	// Quitting must never fail on UI-state trouble.
	_ = m.store.SaveTUIState(&store.TUIState{FocusedPanel: m.focus.name()})
}
