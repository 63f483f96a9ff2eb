package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wrathitsfinest/notes/internal/format"
	"github.com/wrathitsfinest/notes/internal/repo"
	"github.com/wrathitsfinest/notes/internal/storage"
	"github.com/wrathitsfinest/notes/internal/tui"
)

type App struct {
	Dir        string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "notes",
		Short:        "Personal notes (local-first) CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  notes

  # Scriptable commands
  notes notes list
  notes groups create --name Work --color blue
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("NOTES_DIR", ""), "Path to store dir (default: discovered .notes dir or the per-user config dir)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("NOTES_FORMAT", "json"), "Output format (json)")

	cmd.AddCommand(newNotesCmd(app))
	cmd.AddCommand(newGroupsCmd(app))
	cmd.AddCommand(newPrefsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	s, err := resolveStore(app)
	if err != nil {
		return err
	}
	return tui.Run(s, newLogger(s))
}

func resolveStore(app *App) (storage.Store, error) {
	dir := app.Dir
	if dir == "" {
		d, err := storage.DefaultDir()
		if err != nil {
			return storage.Store{}, err
		}
		dir = d
		app.Dir = dir
	}
	return storage.Store{Dir: dir}, nil
}

// newLogger routes structured logs to a file inside the store dir. Stderr
// stays clean for command output and the TUI. Failing to open the log file
// degrades to a no-op logger.
func newLogger(s storage.Store) zerolog.Logger {
	if err := s.Ensure(); err != nil {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(s.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

func openRepo(app *App) (*repo.Repository, error) {
	s, err := resolveStore(app)
	if err != nil {
		return nil, err
	}
	return repo.New(s, newLogger(s)), nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
