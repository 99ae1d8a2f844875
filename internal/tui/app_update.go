package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/roosce/monday-question/internal/clipboard"
	"github.com/roosce/monday-question/internal/model"
	"github.com/roosce/monday-question/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

const copyFlashDuration = 2 * time.Second

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case copyFlashDoneMsg:
		if msg.seq == m.copiedSeq {
			m.copied = false
		}
		return m, nil

	case questionsGeneratedMsg:
		// Only the completion of the most recently issued request may
		// replace the candidate list (last-issued-wins).
		if msg.seq == m.genSeq {
			m.sess.ReplaceQuestions(msg.questions)
			m.generating = false
			if m.questionCursor >= len(m.sess.Questions) {
				m.questionCursor = 0
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		return m.updateKey(msg)
	}

	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Notices describe the previous action only; any new key retires them
	// so they never shadow the footer hints.
	m.notice = ""

	switch msg.String() {
	case "ctrl+c", "q":
		m.saveTUIState()
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % panelCount
		return m, nil
	case "shift+tab":
		m.focus = (m.focus + panelCount - 1) % panelCount
		return m, nil
	}

	switch m.focus {
	case panelQuestions:
		return m.updateQuestions(msg)
	case panelOrder:
		return m.updateOrder(msg)
	case panelHistory:
		return m.updateHistory(msg)
	case panelTeam:
		return m.updateTeam(msg)
	}
	return m, nil
}

func (m appModel) updateQuestions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.questionCursor < len(m.sess.Questions)-1 {
			m.questionCursor++
		}
	case "k", "up":
		if m.questionCursor > 0 {
			m.questionCursor--
		}
	case "enter", " ":
		if m.questionCursor < len(m.sess.Questions) {
			m.sess.Select(m.sess.Questions[m.questionCursor])
		}
	case "u":
		m.sess.ConfirmSelection()
	case "c":
		m.sess.ClearSelection()
	case "g":
		return m.startGeneration()
	}
	return m, nil
}

// startGeneration issues an asynchronous generation request. Requests are
// not cancelled when a new one is issued; instead stale completions are
// dropped by seq in Update.
func (m appModel) startGeneration() (tea.Model, tea.Cmd) {
	m.genSeq++
	m.generating = true

	seq := m.genSeq
	gen := m.generator
	seed := m.sess.SeedQuestions()
	return m, func() tea.Msg {
		return questionsGeneratedMsg{
			seq:       seq,
			questions: session.GenerateOrFallback(context.Background(), gen, seed),
		}
	}
}

func (m appModel) updateOrder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "r":
		m.sess.GenerateOrder()
	case "y":
		if err := clipboard.Copy(m.sess.Summary()); err != nil {
			// Diagnostic only; the indicator simply never appears.
			m.notice = "Clipboard error: " + err.Error()
			return m, nil
		}
		m.copied = true
		m.copiedSeq++
		seq := m.copiedSeq
		return m, tea.Tick(copyFlashDuration, func(time.Time) tea.Msg {
			return copyFlashDoneMsg{seq: seq}
		})
	}
	return m, nil
}

func (m appModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.historyCursor < len(m.sess.History)-1 {
			m.historyCursor++
		}
	case "k", "up":
		if m.historyCursor > 0 {
			m.historyCursor--
		}
	case "a":
		m.modal = modalAddHistory
		m.input = newInput("Enter previous question", 200)
		m.rating = newInput("1-10", 2)
		m.rating.SetValue("5")
		m.rating.Blur()
		m.modalFocus = 0
	case "e":
		if m.historyCursor < len(m.sess.History) {
			m.openHistoryEditor(m.historyCursor)
		}
	case "d":
		if len(m.sess.History) == 0 {
			return m, nil
		}
		if err := m.sess.RemoveHistory(context.Background(), m.historyCursor); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		if m.historyCursor >= len(m.sess.History) && m.historyCursor > 0 {
			m.historyCursor--
		}
	}
	return m, nil
}

// openHistoryEditor snapshots the entry at index into a fresh edit buffer.
// Opening an editor for another row replaces the buffer wholesale, which
// silently discards any unsaved draft.
func (m *appModel) openHistoryEditor(index int) {
	entry := m.sess.History[index]
	ed := &historyEditor{
		index:    index,
		date:     newInput("DD/MM/YYYY", 10),
		question: newInput("Question", 200),
		rating:   newInput("1-10", 2),
	}
	ed.date.SetValue(entry.Date)
	ed.question.SetValue(entry.Question)
	ed.rating.SetValue(strconv.Itoa(entry.Rating))
	ed.question.Blur()
	ed.rating.Blur()
	m.editor = ed
	m.modal = modalEditHistory
}

func (m appModel) updateTeam(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.teamCursor < len(m.sess.Roster)-1 {
			m.teamCursor++
		}
	case "k", "up":
		if m.teamCursor > 0 {
			m.teamCursor--
		}
	case "a":
		m.modal = modalAddMember
		m.input = newInput("Add team member name", 100)
	case "d":
		if len(m.sess.Roster) == 0 {
			return m, nil
		}
		if err := m.sess.RemoveMember(context.Background(), m.teamCursor); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		if m.teamCursor >= len(m.sess.Roster) && m.teamCursor > 0 {
			m.teamCursor--
		}
	}
	return m, nil
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		// Cancel: the draft is discarded, the entry (if any) is unchanged.
		m.closeModal()
		return m, nil
	case "tab", "shift+tab":
		m.cycleModalFocus(msg.String() == "shift+tab")
		return m, nil
	case "enter":
		return m.submitModal()
	}

	var cmd tea.Cmd
	switch m.modal {
	case modalAddMember:
		m.input, cmd = m.input.Update(msg)
	case modalAddHistory:
		if m.modalFocus == 0 {
			m.input, cmd = m.input.Update(msg)
		} else {
			m.rating, cmd = m.rating.Update(msg)
		}
	case modalEditHistory:
		if m.editor != nil {
			switch m.editor.focus {
			case 0:
				m.editor.date, cmd = m.editor.date.Update(msg)
			case 1:
				m.editor.question, cmd = m.editor.question.Update(msg)
			case 2:
				m.editor.rating, cmd = m.editor.rating.Update(msg)
			}
		}
	}
	return m, cmd
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.editor = nil
}

func (m *appModel) cycleModalFocus(backwards bool) {
	step := 1
	if backwards {
		step = -1
	}
	switch m.modal {
	case modalAddHistory:
		m.modalFocus = (m.modalFocus + 2 + step) % 2
		if m.modalFocus == 0 {
			m.input.Focus()
			m.rating.Blur()
		} else {
			m.input.Blur()
			m.rating.Focus()
		}
	case modalEditHistory:
		if m.editor == nil {
			return
		}
		m.editor.focus = (m.editor.focus + 3 + step) % 3
		m.editor.date.Blur()
		m.editor.question.Blur()
		m.editor.rating.Blur()
		switch m.editor.focus {
		case 0:
			m.editor.date.Focus()
		case 1:
			m.editor.question.Focus()
		case 2:
			m.editor.rating.Focus()
		}
	}
}

func (m appModel) submitModal() (tea.Model, tea.Cmd) {
	ctx := context.Background()
	switch m.modal {
	case modalAddMember:
		// Blank names are silently ignored (no state change).
		if _, err := m.sess.AddMember(ctx, m.input.Value()); err != nil {
			m.notice = err.Error()
		}
		m.closeModal()
	case modalAddHistory:
		if _, err := m.sess.AddHistory(ctx, m.input.Value(), clampRating(m.rating.Value())); err != nil {
			m.notice = err.Error()
		}
		m.closeModal()
	case modalEditHistory:
		if m.editor != nil {
			entry := model.HistoryEntry{
				Date:     strings.TrimSpace(m.editor.date.Value()),
				Question: strings.TrimSpace(m.editor.question.Value()),
				Rating:   clampRating(m.editor.rating.Value()),
			}
			if err := m.sess.EditHistory(ctx, m.editor.index, entry); err != nil {
				m.notice = err.Error()
			}
		}
		m.closeModal()
	}
	return m, nil
}

// clampRating parses the rating input, defaulting to 5 and clamping into 1-10.
func clampRating(s string) int {
	r, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 5
	}
	if r < 1 {
		return 1
	}
	if r > 10 {
		return 10
	}
	return r
}
