package cli

import (
	"github.com/roosce/monday-question/internal/genai"
	"github.com/roosce/monday-question/internal/model"

	"github.com/spf13/cobra"
)

func newQuestionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Show or generate candidate questions",
	}
	cmd.AddCommand(newQuestionsListCmd(app))
	cmd.AddCommand(newQuestionsGenerateCmd(app))
	return cmd
}

func newQuestionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in candidate questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"questions": model.DefaultQuestions()}})
		},
	}
}

func newQuestionsGenerateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate new candidate questions from your top-rated history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}

			// A missing key or a dead endpoint degrades to the fallback
			// list; generation failure is never an error for the user.
			questions := model.FallbackQuestions()
			source := "fallback"
			if gen, err := genai.NewClientFromEnv(); err == nil {
				if qs, err := gen.GenerateQuestions(cmd.Context(), sess.SeedQuestions()); err == nil {
					questions = qs
					source = "generated"
				}
			}

			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"questions": questions,
				"source":    source,
			}})
		},
	}
}
