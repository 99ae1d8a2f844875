package tui

import "github.com/charmbracelet/bubbles/textinput"

type panel int

const (
	panelQuestions panel = iota
	panelOrder
	panelHistory
	panelTeam

	panelCount
)

func (p panel) name() string {
	switch p {
	case panelQuestions:
		return "questions"
	case panelOrder:
		return "order"
	case panelHistory:
		return "history"
	case panelTeam:
		return "team"
	}
	return ""
}

func panelByName(name string) (panel, bool) {
	for p := panelQuestions; p < panelCount; p++ {
		if p.name() == name {
			return p, true
		}
	}
	return panelQuestions, false
}

type modalKind int

const (
	modalNone modalKind = iota
	modalAddMember
	modalAddHistory
	modalEditHistory
)

// historyEditor is the single in-flight edit buffer: at most one history
// entry is editable at a time, enforced by there being exactly one of these.
type historyEditor struct {
	index    int
	date     textinput.Model
	question textinput.Model
	rating   textinput.Model
	focus    int // 0=date 1=question 2=rating
}

// copyFlashDoneMsg clears the "Copied" indicator. seq guards against a stale
// timer clearing a newer flash: only the latest copy's timer wins.
type copyFlashDoneMsg struct{ seq int }

// questionsGeneratedMsg delivers a finished generation request. seq is the
// monotonic request counter; stale completions are dropped so the candidate
// list always reflects the last request issued, not the last to finish.
type questionsGeneratedMsg struct {
	seq       int
	questions []string
}
