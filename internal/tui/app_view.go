package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	width := m.width
	if width < 60 {
		width = 60
	}

	header := lipgloss.NewStyle().Bold(true).Render("Monday Questions")

	panels := []string{
		m.viewQuestions(width),
		m.viewOrder(width),
		m.viewHistory(width),
		m.viewTeam(width),
	}
	body := strings.Join(panels, "\n")

	footer := styleMuted().Render(m.footerText())

	out := strings.Join([]string{header, body, footer}, "\n")
	if m.modal != modalNone {
		out += "\n" + m.viewModal(width)
	}
	return out
}

func (m appModel) footerText() string {
	if m.notice != "" {
		return m.notice
	}
	switch m.focus {
	case panelQuestions:
		return "j/k: move  enter: select  u: use selected  c: clear  g: generate new  tab: next panel  q: quit"
	case panelOrder:
		return "enter: shuffle  y: copy  tab: next panel  q: quit"
	case panelHistory:
		return "j/k: move  a: add  e: edit  d: delete  tab: next panel  q: quit"
	case panelTeam:
		return "j/k: move  a: add  d: delete  tab: next panel  q: quit"
	}
	return ""
}

func (m appModel) renderPanel(title, body string, focused bool, width int) string {
	border := colorPanelBorder
	if focused {
		border = colorFocusedBorder
	}
	titleStyle := lipgloss.NewStyle().Bold(true)
	if !focused {
		titleStyle = titleStyle.Foreground(colorMuted)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(width - 2).
		Render(titleStyle.Render(title) + "\n" + body)
}

func (m appModel) viewQuestions(width int) string {
	title := "Question Options"
	if m.generating {
		title += "  (generating…)"
	}

	var b strings.Builder
	for i, q := range m.sess.Questions {
		glyph := "( )"
		if q == m.sess.SelectedQuestion {
			glyph = "(•)"
		}
		line := fmt.Sprintf("%s %s", glyph, q)
		if m.focus == panelQuestions && i == m.questionCursor {
			line = styleSelected().Render(line)
		}
		b.WriteString(line + "\n")
	}
	if m.sess.ActiveQuestion != "" {
		b.WriteString(styleMuted().Render("Active: ") + m.sess.ActiveQuestion)
	} else {
		b.WriteString(styleMuted().Render("No active question yet"))
	}
	return m.renderPanel(title, b.String(), m.focus == panelQuestions, width)
}

func (m appModel) viewOrder(width int) string {
	title := "Answer Order"
	if m.copied {
		title += "  " + lipgloss.NewStyle().Foreground(colorOK).Render("Copied!")
	}

	var b strings.Builder
	if len(m.sess.Order) == 0 {
		b.WriteString(styleMuted().Render("Press enter to shuffle the roster"))
	} else {
		for i, name := range m.sess.Order {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, name))
		}
		b.WriteString(styleMuted().Render("y copies the question + order"))
	}
	return m.renderPanel(title, b.String(), m.focus == panelOrder, width)
}

func (m appModel) viewHistory(width int) string {
	var b strings.Builder
	for i, e := range m.sess.History {
		line := fmt.Sprintf("%-10s  %2d/10  %s", e.Date, e.Rating, e.Question)
		if m.focus == panelHistory && i == m.historyCursor {
			line = styleSelected().Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(m.sess.History) == 0 {
		b.WriteString(styleMuted().Render("No questions logged yet"))
	}
	return m.renderPanel("Question History", strings.TrimRight(b.String(), "\n"), m.focus == panelHistory, width)
}

func (m appModel) viewTeam(width int) string {
	var b strings.Builder
	for i, name := range m.sess.Roster {
		line := "• " + name
		if m.focus == panelTeam && i == m.teamCursor {
			line = styleSelected().Render(line)
		}
		b.WriteString(line + "\n")
	}
	if len(m.sess.Roster) == 0 {
		b.WriteString(styleMuted().Render("No team members yet (press a to add)"))
	}
	return m.renderPanel("Team Members", strings.TrimRight(b.String(), "\n"), m.focus == panelTeam, width)
}

func (m appModel) viewModal(width int) string {
	switch m.modal {
	case modalAddMember:
		return renderModalBox(width, "Add team member", renderInputLine(modalBodyWidth(width), m.input.View()))
	case modalAddHistory:
		content := strings.Join([]string{
			styleMuted().Render("Question"),
			renderInputLine(modalBodyWidth(width), m.input.View()),
			styleMuted().Render("Rating (1-10)"),
			renderInputLine(modalBodyWidth(width), m.rating.View()),
			"",
			styleMuted().Render("tab: next field   enter: add   esc: cancel"),
		}, "\n")
		return renderModalBox(width, "Add to history", content)
	case modalEditHistory:
		if m.editor == nil {
			return ""
		}
		content := strings.Join([]string{
			styleMuted().Render("Date"),
			renderInputLine(modalBodyWidth(width), m.editor.date.View()),
			styleMuted().Render("Question"),
			renderInputLine(modalBodyWidth(width), m.editor.question.View()),
			styleMuted().Render("Rating (1-10)"),
			renderInputLine(modalBodyWidth(width), m.editor.rating.View()),
			"",
			styleMuted().Render("tab: next field   enter: save   esc: cancel"),
		}, "\n")
		return renderModalBox(width, "Edit history entry", content)
	}
	return ""
}
