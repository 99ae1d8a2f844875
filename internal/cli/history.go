package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/roosce/monday-question/internal/model"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the rated log of past questions",
	}
	cmd.AddCommand(newHistoryListCmd(app))
	cmd.AddCommand(newHistoryAddCmd(app))
	cmd.AddCommand(newHistoryEditCmd(app))
	cmd.AddCommand(newHistoryRemoveCmd(app))
	return cmd
}

func validRating(r int) error {
	if r < 1 || r > 10 {
		return fmt.Errorf("rating must be between 1 and 10, got %d", r)
	}
	return nil
}

func newHistoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List past questions in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"history": sess.History}})
		},
	}
}

func newHistoryAddCmd(app *App) *cobra.Command {
	var rating int

	cmd := &cobra.Command{
		Use:   "add <question>",
		Short: "Log a question with today's date and a rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validRating(rating); err != nil {
				return writeErr(cmd, err)
			}
			sess, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ok, err := sess.AddHistory(cmd.Context(), args[0], rating)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, errors.New("question is empty after trimming"))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"added": sess.History[len(sess.History)-1],
				"index": len(sess.History) - 1,
			}})
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 5, "Rating 1-10")
	return cmd
}

func newHistoryEditCmd(app *App) *cobra.Command {
	var (
		question string
		date     string
		rating   int
	)

	cmd := &cobra.Command{
		Use:   "edit <index>",
		Short: "Replace fields of the entry at a zero-based position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, errors.New("index must be an integer"))
			}
			sess, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if index < 0 || index >= len(sess.History) {
				return writeErr(cmd, fmt.Errorf("history entry index out of range: %d (have %d)", index, len(sess.History)))
			}

			// Unset flags keep the stored value; the replacement is wholesale.
			entry := sess.History[index]
			if cmd.Flags().Changed("question") {
				entry.Question = question
			}
			if cmd.Flags().Changed("date") {
				entry.Date = date
			}
			if cmd.Flags().Changed("rating") {
				if err := validRating(rating); err != nil {
					return writeErr(cmd, err)
				}
				entry.Rating = rating
			}
			if !model.ValidQuestion(entry.Question) {
				return writeErr(cmd, errors.New("question is empty after trimming"))
			}

			if err := sess.EditHistory(cmd.Context(), index, entry); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"edited": entry, "index": index}})
		},
	}

	cmd.Flags().StringVar(&question, "question", "", "New question text")
	cmd.Flags().StringVar(&date, "date", "", "New date (DD/MM/YYYY)")
	cmd.Flags().IntVar(&rating, "rating", 0, "New rating 1-10")
	return cmd
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove the entry at a zero-based position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, errors.New("index must be an integer"))
			}
			sess, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sess.RemoveHistory(cmd.Context(), index); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"history": sess.History}})
		},
	}
}
