package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTUIState_MissingIsFresh(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	st, err := s.LoadTUIState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.Version != 1 || st.FocusedPanel != "" {
		t.Fatalf("expected fresh state, got %+v", st)
	}
}

func TestTUIState_RoundTrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	if err := s.SaveTUIState(&TUIState{FocusedPanel: "history"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	st, err := s.LoadTUIState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.FocusedPanel != "history" {
		t.Fatalf("expected focused panel 'history', got %+v", st)
	}
}

func TestTUIState_CorruptIsFresh(t *testing.T) {
	dir := t.TempDir()
	s := Store{Dir: dir}
	if err := os.WriteFile(filepath.Join(dir, tuiStateFileName), []byte("{nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	st, err := s.LoadTUIState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.FocusedPanel != "" {
		t.Fatalf("expected fresh state for corrupt file, got %+v", st)
	}
}
