package cli

import (
	"github.com/spf13/cobra"

	"github.com/wrathitsfinest/notes/internal/model"
)

func newGroupsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Group commands",
	}
	cmd.AddCommand(newGroupsListCmd(app))
	cmd.AddCommand(newGroupsCreateCmd(app))
	cmd.AddCommand(newGroupsRenameCmd(app))
	cmd.AddCommand(newGroupsDeleteCmd(app))
	return cmd
}

func newGroupsListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := r.Load(cmd.Context())
			return writeOut(cmd, app, map[string]any{"data": st.Groups})
		},
	}
	return cmd
}

func newGroupsCreateCmd(app *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := r.Load(cmd.Context())
			g, err := r.CreateGroup(cmd.Context(), st, name, model.Color(color))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": g})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Group name")
	cmd.Flags().StringVar(&color, "color", "", "Group color")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newGroupsRenameCmd(app *App) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "rename <group-id>",
		Short: "Rename a group (and optionally recolor it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := r.Load(cmd.Context())
			if _, ok := st.FindGroup(args[0]); !ok && args[0] != model.DefaultGroupID {
				return writeErr(cmd, errNotFound("group", args[0]))
			}
			if err := r.RenameGroup(cmd.Context(), st, args[0], name, model.Color(color)); err != nil {
				return writeErr(cmd, err)
			}
			g, _ := st.FindGroup(args[0])
			return writeOut(cmd, app, map[string]any{"data": g})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&color, "color", "", "New color")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newGroupsDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <group-id>",
		Short: "Delete a group, moving its notes to the default bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := r.Load(cmd.Context())
			if _, ok := st.FindGroup(args[0]); !ok && args[0] != model.DefaultGroupID {
				return writeErr(cmd, errNotFound("group", args[0]))
			}
			res, err := r.DeleteGroup(cmd.Context(), st, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"deleted":    res.Deleted,
				"reassigned": res.Reassigned,
			}})
		},
	}
	return cmd
}
