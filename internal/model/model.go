package model

import (
	"sort"
	"strings"
	"time"
)

// HistoryEntry is one logged question from a past meeting.
type HistoryEntry struct {
	Date     string `json:"date"` // DD/MM/YYYY
	Question string `json:"question"`
	Rating   int    `json:"rating"` // 1..10
}

// DefaultQuestions is the candidate list shown before any generation happens.
func DefaultQuestions() []string {
	return []string{
		"What's the most ridiculous thing you believed as a child?",
		"If you could have dinner with any historical figure, who would it be and why?",
		"What's the strangest talent you have?",
	}
}

// FallbackQuestions replaces the candidate list when generation fails.
// Kept separate from DefaultQuestions so the fallback can drift independently.
func FallbackQuestions() []string {
	return []string{
		"What's a small thing that made your week better?",
		"What skill would you master overnight if you could?",
		"What's the best piece of advice you've ever ignored?",
	}
}

// TopRated returns up to n entries ordered by rating descending.
// The sort is stable: equally rated entries keep their insertion order.
func TopRated(history []HistoryEntry, n int) []HistoryEntry {
	out := make([]HistoryEntry, len(history))
	copy(out, history)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	if n < 0 {
		n = 0
	}
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Today formats the current date the way history entries store it.
func Today() string {
	return time.Now().Format("02/01/2006")
}

// PlaceholderEntry seeds an otherwise empty history on first load so the
// history panel never starts blank.
func PlaceholderEntry() HistoryEntry {
	return HistoryEntry{Date: "30/12/2024", Question: "test question", Rating: 5}
}

// ValidQuestion reports whether q is usable after trimming.
func ValidQuestion(q string) bool {
	return strings.TrimSpace(q) != ""
}
