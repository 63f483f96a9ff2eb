package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/wrathitsfinest/notes/internal/repo"
	"github.com/wrathitsfinest/notes/internal/storage"
)

func Run(s storage.Store, log zerolog.Logger) error {
	applyColorProfilePreference()
	applyGlyphPreference()

	// Persisted appearance preferences apply before the first render.
	r := repo.New(s, log)
	ctx := context.Background()
	applyThemePreference(r.Pref(ctx, storage.KeyTheme, "auto"))
	applyColorTheme(r.Pref(ctx, storage.KeyColorTheme, DefaultColorTheme))

	m := newAppModel(s, log)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
