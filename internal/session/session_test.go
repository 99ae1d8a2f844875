package session

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/roosce/monday-question/internal/model"
)

// memStore is an in-memory Persister so session tests skip SQLite.
type memStore struct {
	roster  []string
	history []model.HistoryEntry

	rosterSaves  int
	historySaves int
}

func (m *memStore) LoadRoster(context.Context) ([]string, error) { return m.roster, nil }
func (m *memStore) SaveRoster(_ context.Context, roster []string) error {
	m.roster = append([]string(nil), roster...)
	m.rosterSaves++
	return nil
}
func (m *memStore) LoadHistory(context.Context) ([]model.HistoryEntry, error) {
	if len(m.history) == 0 {
		m.history = []model.HistoryEntry{model.PlaceholderEntry()}
	}
	return m.history, nil
}
func (m *memStore) SaveHistory(_ context.Context, history []model.HistoryEntry) error {
	m.history = append([]model.HistoryEntry(nil), history...)
	m.historySaves++
	return nil
}

func newTestSession(t *testing.T) (*Session, *memStore) {
	t.Helper()
	st := &memStore{}
	s, err := New(context.Background(), st)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s, st
}

func TestAddMember_TrimsAndPersists(t *testing.T) {
	s, st := newTestSession(t)
	ctx := context.Background()

	ok, err := s.AddMember(ctx, "  Ana  ")
	if err != nil || !ok {
		t.Fatalf("add: ok=%v err=%v", ok, err)
	}
	if len(s.Roster) != 1 || s.Roster[0] != "Ana" {
		t.Fatalf("unexpected roster: %v", s.Roster)
	}
	if st.rosterSaves != 1 {
		t.Fatalf("expected 1 roster save, got %d", st.rosterSaves)
	}
}

func TestAddMember_BlankRejected(t *testing.T) {
	s, st := newTestSession(t)
	ctx := context.Background()

	for _, blank := range []string{"", "  ", "\t"} {
		ok, err := s.AddMember(ctx, blank)
		if err != nil {
			t.Fatalf("add %q: %v", blank, err)
		}
		if ok {
			t.Fatalf("blank name %q accepted", blank)
		}
	}
	if len(s.Roster) != 0 || st.rosterSaves != 0 {
		t.Fatalf("roster changed on blank input: %v (saves=%d)", s.Roster, st.rosterSaves)
	}
}

func TestRemoveMember_KeepsRelativeOrder(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()
	for _, n := range []string{"Ana", "Bo", "Cy"} {
		if _, err := s.AddMember(ctx, n); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if err := s.RemoveMember(ctx, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !reflect.DeepEqual(s.Roster, []string{"Ana", "Cy"}) {
		t.Fatalf("unexpected roster after remove: %v", s.Roster)
	}

	err := s.RemoveMember(ctx, 5)
	if err == nil || !IsOutOfRange(err) {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
}

func TestAddHistory_DatesEntryToday(t *testing.T) {
	s, st := newTestSession(t)
	ctx := context.Background()

	before := len(s.History)
	ok, err := s.AddHistory(ctx, "  what's your hidden talent?  ", 7)
	if err != nil || !ok {
		t.Fatalf("add: ok=%v err=%v", ok, err)
	}
	if len(s.History) != before+1 {
		t.Fatalf("expected length %d, got %d", before+1, len(s.History))
	}
	got := s.History[len(s.History)-1]
	if got.Question != "what's your hidden talent?" || got.Rating != 7 {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if got.Date != model.Today() {
		t.Fatalf("entry date %q is not today's", got.Date)
	}
	if st.historySaves != 1 {
		t.Fatalf("expected 1 history save, got %d", st.historySaves)
	}

	if ok, _ := s.AddHistory(ctx, "   ", 5); ok || len(s.History) != before+1 {
		t.Fatalf("blank question mutated history")
	}
}

func TestEditHistory_ReplacesInPlace(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()
	if _, err := s.AddHistory(ctx, "original", 4); err != nil {
		t.Fatalf("add: %v", err)
	}

	edited := model.HistoryEntry{Date: "15/08/2025", Question: "edited", Rating: 9}
	if err := s.EditHistory(ctx, 1, edited); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if s.History[1] != edited {
		t.Fatalf("entry not replaced: %+v", s.History[1])
	}
	// The placeholder at position 0 is untouched and order is preserved.
	if s.History[0] != model.PlaceholderEntry() {
		t.Fatalf("neighbor entry changed: %+v", s.History[0])
	}

	if err := s.EditHistory(ctx, 9, edited); !IsOutOfRange(err) {
		t.Fatalf("expected out-of-range error, got %v", err)
	}
}

func TestRemoveHistory(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()
	if _, err := s.AddHistory(ctx, "second", 6); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.RemoveHistory(ctx, 0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(s.History) != 1 || s.History[0].Question != "second" {
		t.Fatalf("unexpected history: %+v", s.History)
	}
}

func TestConfirmSelection(t *testing.T) {
	s, _ := newTestSession(t)

	s.ConfirmSelection()
	if s.ActiveQuestion != "" {
		t.Fatalf("confirm with no selection set active %q", s.ActiveQuestion)
	}

	s.Select("Q")
	s.ConfirmSelection()
	if s.ActiveQuestion != "Q" {
		t.Fatalf("active = %q, want Q", s.ActiveQuestion)
	}
}

func TestClearSelection(t *testing.T) {
	s, _ := newTestSession(t)

	s.Select("Q")
	s.ConfirmSelection()
	s.ClearSelection()

	if s.SelectedQuestion != "" || s.ActiveQuestion != "" {
		t.Fatalf("selection not reset: selected=%q active=%q", s.SelectedQuestion, s.ActiveQuestion)
	}
}

func TestGenerateOrder_IsPermutation(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()
	names := []string{"Ana", "Bo", "Cy"}
	for _, n := range names {
		if _, err := s.AddMember(ctx, n); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	order := s.GenerateOrder()
	if len(order) != len(names) {
		t.Fatalf("order length %d, want %d", len(order), len(names))
	}
	sorted := append([]string(nil), order...)
	sort.Strings(sorted)
	if !reflect.DeepEqual(sorted, []string{"Ana", "Bo", "Cy"}) {
		t.Fatalf("order %v is not a permutation of %v", order, names)
	}
	// Shuffling must not clobber the roster itself.
	if !reflect.DeepEqual(s.Roster, names) {
		t.Fatalf("roster mutated by shuffle: %v", s.Roster)
	}
}

func TestGenerateOrder_EmptyRoster(t *testing.T) {
	s, _ := newTestSession(t)
	if order := s.GenerateOrder(); len(order) != 0 {
		t.Fatalf("expected empty order, got %v", order)
	}
}

func TestSummary_ExactFormat(t *testing.T) {
	s, _ := newTestSession(t)
	s.ActiveQuestion = "Q"
	s.Order = []string{"Ana", "Bo"}

	want := "- - - Monday's Question - - -\nQ\n\nAna\nBo"
	if got := s.Summary(); got != want {
		t.Fatalf("summary = %q, want %q", got, want)
	}
}

// failingGenerator always errors, standing in for a dead or misconfigured
// generation endpoint.
type failingGenerator struct{}

func (failingGenerator) GenerateQuestions(context.Context, []model.HistoryEntry) ([]string, error) {
	return nil, errors.New("boom")
}

type fixedGenerator struct{ qs []string }

func (g fixedGenerator) GenerateQuestions(context.Context, []model.HistoryEntry) ([]string, error) {
	return g.qs, nil
}

func TestGenerateOrFallback(t *testing.T) {
	ctx := context.Background()

	got := GenerateOrFallback(ctx, failingGenerator{}, nil)
	if !reflect.DeepEqual(got, model.FallbackQuestions()) {
		t.Fatalf("failure path: got %v", got)
	}

	if got := GenerateOrFallback(ctx, nil, nil); !reflect.DeepEqual(got, model.FallbackQuestions()) {
		t.Fatalf("nil generator path: got %v", got)
	}

	want := []string{"a?", "b?", "c?"}
	if got := GenerateOrFallback(ctx, fixedGenerator{qs: want}, nil); !reflect.DeepEqual(got, want) {
		t.Fatalf("success path: got %v", got)
	}
}

func TestSeedQuestions_TopThree(t *testing.T) {
	s, _ := newTestSession(t)
	s.History = []model.HistoryEntry{
		{Date: "01/01/2025", Question: "low", Rating: 2},
		{Date: "02/01/2025", Question: "high", Rating: 10},
		{Date: "03/01/2025", Question: "mid", Rating: 5},
		{Date: "04/01/2025", Question: "mid2", Rating: 5},
	}

	seed := s.SeedQuestions()
	if len(seed) != 3 {
		t.Fatalf("seed length %d", len(seed))
	}
	if seed[0].Question != "high" || seed[1].Question != "mid" || seed[2].Question != "mid2" {
		t.Fatalf("unexpected seed order: %+v", seed)
	}
}
