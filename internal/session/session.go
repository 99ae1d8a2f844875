// Package session holds the in-memory state shared by the four panels and
// the discrete actions that mutate it. Every roster or history mutation
// commits synchronously through the persister, so callers never need a
// separate "save" step.
package session

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/roosce/monday-question/internal/model"
)

// SummaryHeader is the first line of the copy-to-clipboard block.
const SummaryHeader = "- - - Monday's Question - - -"

// seedSize is how many top-rated history entries seed the generation prompt.
const seedSize = 3

// Persister is the slice of the store the session needs.
type Persister interface {
	LoadRoster(ctx context.Context) ([]string, error)
	SaveRoster(ctx context.Context, roster []string) error
	LoadHistory(ctx context.Context) ([]model.HistoryEntry, error)
	SaveHistory(ctx context.Context, history []model.HistoryEntry) error
}

// QuestionGenerator produces new candidate questions from past favorites.
// genai.Client satisfies this; tests inject fakes.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, seed []model.HistoryEntry) ([]string, error)
}

// Session is the state-store object behind all four panels.
//
// Questions, SelectedQuestion, ActiveQuestion and Order are ephemeral;
// Roster and History mirror the persistent store.
type Session struct {
	store Persister

	Questions        []string
	SelectedQuestion string
	ActiveQuestion   string
	Roster           []string
	History          []model.HistoryEntry
	Order            []string
}

// New loads persisted state and starts with the built-in candidate list.
func New(ctx context.Context, store Persister) (*Session, error) {
	roster, err := store.LoadRoster(ctx)
	if err != nil {
		return nil, err
	}
	history, err := store.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{
		store:     store,
		Questions: model.DefaultQuestions(),
		Roster:    roster,
		History:   history,
	}, nil
}

// Select records the radio choice. Any string is accepted; membership in the
// candidate list is not enforced.
func (s *Session) Select(question string) {
	s.SelectedQuestion = question
}

// ConfirmSelection promotes the selected question to the active one.
// No-op when nothing is selected.
func (s *Session) ConfirmSelection() {
	if strings.TrimSpace(s.SelectedQuestion) == "" {
		return
	}
	s.ActiveQuestion = s.SelectedQuestion
}

// ClearSelection resets both the radio choice and the active question.
func (s *Session) ClearSelection() {
	s.SelectedQuestion = ""
	s.ActiveQuestion = ""
}

// SeedQuestions returns the history entries that seed the generation prompt.
func (s *Session) SeedQuestions() []model.HistoryEntry {
	return model.TopRated(s.History, seedSize)
}

// GenerateOrFallback asks gen for new candidates and degrades to the fixed
// fallback list on any failure, including a nil generator (no API key).
func GenerateOrFallback(ctx context.Context, gen QuestionGenerator, seed []model.HistoryEntry) []string {
	if gen == nil {
		return model.FallbackQuestions()
	}
	questions, err := gen.GenerateQuestions(ctx, seed)
	if err != nil {
		return model.FallbackQuestions()
	}
	return questions
}

// ReplaceQuestions swaps in a new candidate list atomically. The current
// selection is left alone; it stays meaningful as a free-form choice even if
// the new list no longer contains it.
func (s *Session) ReplaceQuestions(questions []string) {
	s.Questions = questions
}

// GenerateOrder reshuffles the roster into a fresh answer order.
// An empty roster yields an empty order, not an error.
func (s *Session) GenerateOrder() []string {
	order := make([]string, len(s.Roster))
	copy(order, s.Roster)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	s.Order = order
	return order
}

// Summary builds the text block that goes on the clipboard: header line,
// the active question, a blank line, then one name per line in order.
func (s *Session) Summary() string {
	return SummaryHeader + "\n" + s.ActiveQuestion + "\n\n" + strings.Join(s.Order, "\n")
}

// AddMember appends a trimmed name to the roster and persists. Blank names
// are rejected (reported as false, no state change).
func (s *Session) AddMember(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	s.Roster = append(s.Roster, name)
	return true, s.store.SaveRoster(ctx, s.Roster)
}

// RemoveMember deletes the roster entry at index and persists.
func (s *Session) RemoveMember(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.Roster) {
		return errOutOfRange("team member", index, len(s.Roster))
	}
	s.Roster = append(s.Roster[:index], s.Roster[index+1:]...)
	return s.store.SaveRoster(ctx, s.Roster)
}

// AddHistory appends a dated entry and persists. Blank questions are
// rejected (reported as false, no state change).
func (s *Session) AddHistory(ctx context.Context, question string, rating int) (bool, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return false, nil
	}
	s.History = append(s.History, model.HistoryEntry{
		Date:     model.Today(),
		Question: question,
		Rating:   rating,
	})
	return true, s.store.SaveHistory(ctx, s.History)
}

// EditHistory replaces the entry at index wholesale and persists.
func (s *Session) EditHistory(ctx context.Context, index int, entry model.HistoryEntry) error {
	if index < 0 || index >= len(s.History) {
		return errOutOfRange("history entry", index, len(s.History))
	}
	s.History[index] = entry
	return s.store.SaveHistory(ctx, s.History)
}

// RemoveHistory deletes the entry at index and persists.
func (s *Session) RemoveHistory(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.History) {
		return errOutOfRange("history entry", index, len(s.History))
	}
	s.History = append(s.History[:index], s.History[index+1:]...)
	return s.store.SaveHistory(ctx, s.History)
}
