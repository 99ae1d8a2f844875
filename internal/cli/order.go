package cli

import (
	"fmt"

	"github.com/roosce/monday-question/internal/clipboard"

	"github.com/spf13/cobra"
)

func newOrderCmd(app *App) *cobra.Command {
	var (
		question string
		copyFlag bool
	)

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Shuffle the roster into an answer order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}

			sess.Select(question)
			sess.ConfirmSelection()
			order := sess.GenerateOrder()

			if copyFlag {
				// Clipboard trouble is a notice, not an error; the shuffle
				// already happened and is still printed.
				if err := clipboard.Copy(sess.Summary()); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "clipboard: "+err.Error())
				}
			}

			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"question": sess.ActiveQuestion,
				"order":    order,
			}})
		},
	}

	cmd.Flags().StringVar(&question, "question", "", "Question to show above the order")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the question + order block to the clipboard")
	return cmd
}
