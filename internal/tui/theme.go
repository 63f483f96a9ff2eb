package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/wrathitsfinest/notes/internal/model"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor where possible and only apply "faint" styling
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

// Common semantic colors used across the TUI.
var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorSurfaceBg lipgloss.TerminalColor = ac("255", "235")
	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")

	// Slightly elevated surface for controls/inputs so they remain visible on light terminals.
	colorControlBg lipgloss.TerminalColor = ac("252", "235")
	colorInputBg   lipgloss.TerminalColor = ac("254", "234")

	colorAccent lipgloss.TerminalColor = ac("27", "62") // blue
	// Foreground for text rendered on top of colorAccent backgrounds.
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// Accent profiles selectable via the colorTheme preference.
const DefaultColorTheme = "blue"

var colorThemes = map[string]lipgloss.AdaptiveColor{
	"blue":   ac("27", "62"),
	"purple": ac("91", "135"),
	"green":  ac("28", "71"),
	"orange": ac("166", "208"),
	"red":    ac("124", "167"),
}

func ColorThemes() []string {
	return []string{"blue", "purple", "green", "orange", "red"}
}

func ValidColorTheme(name string) bool {
	_, ok := colorThemes[name]
	return ok
}

func applyColorTheme(name string) {
	if c, ok := colorThemes[name]; ok {
		colorAccent = c
	}
}

// Palette colors used for group and note badges.
var paletteColors = map[model.Color]lipgloss.AdaptiveColor{
	model.ColorRed:    ac("160", "203"),
	model.ColorOrange: ac("166", "215"),
	model.ColorYellow: ac("136", "222"),
	model.ColorGreen:  ac("28", "114"),
	model.ColorBlue:   ac("27", "75"),
	model.ColorPurple: ac("91", "141"),
}

func paletteStyle(c model.Color) lipgloss.Style {
	if tc, ok := paletteColors[c]; ok {
		return lipgloss.NewStyle().Foreground(tc)
	}
	return styleMuted()
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
//
// Note: termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful for
// non-interactive CLI output but can accidentally disable colors in a TUI. For the TUI,
// we only honor NO_COLOR and otherwise follow the terminal's capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If TERM/COLORTERM indicate stronger support than the detector reports,
	// trust the env. Color probing under-reports on some terminals.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Some terminals don't reliably report their background, which can cause
// lipgloss.AdaptiveColor to pick the wrong variant.
//
// Priority:
// 1) NOTES_TUI_THEME=light|dark|auto
// 2) the persisted theme preference
// 3) COLORFGBG heuristic (common in terminals; format like "15;0" = fg;bg)
func applyThemePreference(pref string) {
	if v := strings.TrimSpace(os.Getenv("NOTES_TUI_THEME")); v != "" {
		if applyThemeName(v) {
			return
		}
	}
	if applyThemeName(pref) {
		return
	}

	// Heuristic: COLORFGBG is often "fg;bg" (sometimes more segments). Use last segment as bg.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}

func applyThemeName(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return true
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return true
	default:
		// auto or unknown: fall through to heuristics.
		return false
	}
}
