package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/roosce/monday-question/internal/format"
	"github.com/roosce/monday-question/internal/session"
	"github.com/roosce/monday-question/internal/store"
	"github.com/roosce/monday-question/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "mondayq",
		Short:        "Monday icebreaker questions: pick, shuffle, log, repeat",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  mondayq

  # Scriptable commands
  mondayq roster add "Ana"
  mondayq questions generate
  mondayq order --question "What's the strangest talent you have?" --copy
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("MONDAYQ_DIR", ""), "Path to the state dir (default: ~/.mondayq)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newRosterCmd(app))
	cmd.AddCommand(newHistoryCmd(app))
	cmd.AddCommand(newQuestionsCmd(app))
	cmd.AddCommand(newOrderCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	st, err := resolveStore(app)
	if err != nil {
		return err
	}
	sess, err := session.New(context.Background(), st)
	if err != nil {
		return err
	}
	return tui.Run(st, sess)
}

func resolveStore(app *App) (store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	return store.Store{Dir: dir}, nil
}

func loadSession(cmd *cobra.Command, app *App) (*session.Session, error) {
	st, err := resolveStore(app)
	if err != nil {
		return nil, err
	}
	return session.New(cmd.Context(), st)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
