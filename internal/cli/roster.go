package cli

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"
)

func newRosterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the team roster",
	}
	cmd.AddCommand(newRosterListCmd(app))
	cmd.AddCommand(newRosterAddCmd(app))
	cmd.AddCommand(newRosterRemoveCmd(app))
	return cmd
}

func newRosterListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List team members in roster order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"teamMembers": sess.Roster}})
		},
	}
}

func newRosterAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a team member (appended at the end)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadSession(cmd, app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ok, err := sess.AddMember(cmd.Context(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				return writeErr(cmd, errors.New("name is empty after trimming"))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"added": sess.Roster[len(sess.Roster)-1],
				"index": len(sess.Roster) - 1,
			}})
		},
	}
}

func newRosterRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove the team member at a zero-based position",
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
			if err := sess.RemoveMember(cmd.Context(), index); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"teamMembers": sess.Roster}})
		},
	}
}
