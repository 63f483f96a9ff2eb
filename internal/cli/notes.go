package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wrathitsfinest/notes/internal/model"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Note commands",
	}
	cmd.AddCommand(newNotesListCmd(app))
	cmd.AddCommand(newNotesCreateCmd(app))
	cmd.AddCommand(newNotesShowCmd(app))
	cmd.AddCommand(newNotesSetCmd(app))
	cmd.AddCommand(newNotesColorCmd(app))
	cmd.AddCommand(newNotesMoveCmd(app))
	cmd.AddCommand(newNotesDeleteCmd(app))
	return cmd
}

func parseNoteID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad note id: %s", arg)
	}
	return id, nil
}

func newNotesListCmd(app *App) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := r.Load(cmd.Context())
			notes := st.Notes
			if group != "" {
				notes = st.NotesInGroup(group)
			}
			return writeOut(cmd, app, map[string]any{"data": notes})
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Only notes in this group")
	return cmd
}

func newNotesCreateCmd(app *App) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an empty note",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := r.Load(cmd.Context())
			n := r.CreateNote(cmd.Context(), st, group)
			return writeOut(cmd, app, map[string]any{"data": n})
		},
	}

	cmd.Flags().StringVar(&group, "group", model.DefaultGroupID, "Group for the new note")
	return cmd
}

func newNotesShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <note-id>",
		Short: "Show one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := r.Load(cmd.Context())
			n, ok := st.FindNote(id)
			if !ok {
				return writeErr(cmd, errNotFound("note", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": n})
		},
	}
	return cmd
}

func newNotesSetCmd(app *App) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:   "set <note-id>",
		Short: "Set a note's title and content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := r.Load(cmd.Context())
			n, ok := st.FindNote(id)
			if !ok {
				return writeErr(cmd, errNotFound("note", args[0]))
			}
			if !cmd.Flags().Changed("title") {
				title = n.Title
			}
			if !cmd.Flags().Changed("content") {
				content = n.Content
			}
			res := r.UpdateNoteContent(cmd.Context(), st, id, title, content)
			return writeOut(cmd, app, map[string]any{"data": res.Note})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&content, "content", "", "New content markup")
	return cmd
}

func newNotesColorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color <note-id> <color>",
		Short: "Tag a note with a palette color",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			color := model.Color(args[1])
			if !color.Valid() {
				return writeErr(cmd, fmt.Errorf("unknown color: %s", args[1]))
			}
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := r.Load(cmd.Context())
			res := r.SetNoteColor(cmd.Context(), st, id, color)
			if !res.Changed {
				return writeErr(cmd, errNotFound("note", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": res.Note})
		},
	}
	return cmd
}

func newNotesMoveCmd(app *App) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "move <note-id>",
		Short: "Move a note to another group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := r.Load(cmd.Context())
			if _, ok := st.FindNote(id); !ok {
				return writeErr(cmd, errNotFound("note", args[0]))
			}
			res := r.MoveNote(cmd.Context(), st, id, group)
			if !res.Changed {
				return writeErr(cmd, errNotFound("group", group))
			}
			return writeOut(cmd, app, map[string]any{"data": res.Note})
		},
	}

	cmd.Flags().StringVar(&group, "group", model.DefaultGroupID, "Target group id")
	return cmd
}

func newNotesDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNoteID(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			st := r.Load(cmd.Context())
			if !r.DeleteNote(cmd.Context(), st, id) {
				return writeErr(cmd, errNotFound("note", args[0]))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"deleted": true, "id": id}})
		},
	}
	return cmd
}
