package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wrathitsfinest/notes/internal/i18n"
	"github.com/wrathitsfinest/notes/internal/storage"
	"github.com/wrathitsfinest/notes/internal/tui"
)

// The scriptable surface for the same preferences the TUI toggles. Each key
// validates its value set; unknown keys are rejected rather than stored.
var prefDefs = []struct {
	key      string
	fallback string
	valid    func(string) bool
}{
	{storage.KeyTheme, "auto", func(v string) bool {
		return v == "auto" || v == "light" || v == "dark"
	}},
	{storage.KeyColorTheme, tui.DefaultColorTheme, tui.ValidColorTheme},
	{storage.KeyLanguage, i18n.Default, i18n.Supported},
}

func prefDef(key string) (fallback string, valid func(string) bool, ok bool) {
	for _, d := range prefDefs {
		if d.key == key {
			return d.fallback, d.valid, true
		}
	}
	return "", nil, false
}

func prefKeys() string {
	keys := make([]string, len(prefDefs))
	for i, d := range prefDefs {
		keys[i] = d.key
	}
	return strings.Join(keys, "|")
}

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Preference commands",
	}
	cmd.AddCommand(newPrefsGetCmd(app))
	cmd.AddCommand(newPrefsSetCmd(app))
	return cmd
}

func newPrefsGetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <" + prefKeys() + ">",
		Short: "Read a preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fallback, _, ok := prefDef(args[0])
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown preference: %s (expected %s)", args[0], prefKeys()))
			}
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			v := r.Pref(cmd.Context(), args[0], fallback)
			return writeOut(cmd, app, map[string]any{"data": map[string]string{args[0]: v}})
		},
	}
	return cmd
}

func newPrefsSetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <" + prefKeys() + "> <value>",
		Short: "Write a preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			_, valid, ok := prefDef(key)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown preference: %s (expected %s)", key, prefKeys()))
			}
			if !valid(value) {
				return writeErr(cmd, fmt.Errorf("bad value for %s: %s", key, value))
			}
			r, err := openRepo(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			r.SetPref(cmd.Context(), key, value)
			return writeOut(cmd, app, map[string]any{"data": map[string]string{key: value}})
		},
	}
	return cmd
}
