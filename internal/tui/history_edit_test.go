package tui

import (
	"context"
	"testing"
)

func TestEditHistory_SnapshotAndSave(t *testing.T) {
	m := newTestModel(t)
	m.focus = panelHistory

	// The fresh store seeds the placeholder entry at row 0.
	m = press(t, m, "e")
	if m.modal != modalEditHistory || m.editor == nil {
		t.Fatal("expected edit modal with a draft buffer")
	}
	if m.editor.question.Value() != "test question" || m.editor.date.Value() != "30/12/2024" {
		t.Fatalf("draft did not snapshot the entry: %q %q", m.editor.question.Value(), m.editor.date.Value())
	}

	// tab tab moves focus to the rating field; replace its value.
	m = press(t, m, "tab", "tab")
	m.editor.rating.SetValue("9")
	m = press(t, m, "enter")

	if m.modal != modalNone || m.editor != nil {
		t.Fatal("modal should close and drop the buffer on save")
	}
	if m.sess.History[0].Rating != 9 {
		t.Fatalf("rating not saved: %+v", m.sess.History[0])
	}
	if m.sess.History[0].Question != "test question" {
		t.Fatalf("untouched field changed: %+v", m.sess.History[0])
	}
}

func TestEditHistory_CancelDiscardsDraft(t *testing.T) {
	m := newTestModel(t)
	m.focus = panelHistory

	m = press(t, m, "e")
	m.editor.question.SetValue("scribbled over")
	m = press(t, m, "esc")

	if m.modal != modalNone || m.editor != nil {
		t.Fatal("esc should close the modal and drop the buffer")
	}
	if m.sess.History[0].Question != "test question" {
		t.Fatalf("cancel changed the entry: %+v", m.sess.History[0])
	}
}

func TestEditHistory_ReopenReplacesDraft(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.sess.AddHistory(context.Background(), "second question", 6); err != nil {
		t.Fatalf("add: %v", err)
	}
	m.focus = panelHistory

	// Draft for row 0, abandoned without saving.
	m = press(t, m, "e")
	m.editor.question.SetValue("unsaved draft")
	m = press(t, m, "esc")

	// Opening row 1 builds a fresh buffer; the old draft is gone silently.
	m = press(t, m, "j", "e")
	if m.editor.index != 1 || m.editor.question.Value() != "second question" {
		t.Fatalf("unexpected draft: index=%d question=%q", m.editor.index, m.editor.question.Value())
	}
}

func TestDeleteHistoryRow(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.sess.AddHistory(context.Background(), "second question", 6); err != nil {
		t.Fatalf("add: %v", err)
	}
	m.focus = panelHistory

	m = press(t, m, "d")
	if len(m.sess.History) != 1 || m.sess.History[0].Question != "second question" {
		t.Fatalf("unexpected history after delete: %+v", m.sess.History)
	}

	// Deleting the last row clamps the cursor.
	m = press(t, m, "d")
	if len(m.sess.History) != 0 {
		t.Fatalf("history should be empty, got %+v", m.sess.History)
	}
	if m.historyCursor != 0 {
		t.Fatalf("cursor not clamped: %d", m.historyCursor)
	}
}
