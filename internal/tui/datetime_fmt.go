package tui

import (
	"strconv"
	"time"

	"github.com/wrathitsfinest/notes/internal/i18n"
)

// formatRelative renders a note timestamp the way the note cards show it:
// relative within the last week, then a short absolute date (with the year
// only when it differs from the current one).
func formatRelative(t time.Time, now time.Time, tr i18n.Translator) string {
	diff := now.Sub(t)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 1:
		return tr.T("just_now")
	case mins < 60:
		key := "mins_ago"
		if mins == 1 {
			key = "min_ago"
		}
		return tr.T(key, "count", strconv.Itoa(mins))
	case hours < 24:
		key := "hours_ago"
		if hours == 1 {
			key = "hour_ago"
		}
		return tr.T(key, "count", strconv.Itoa(hours))
	case days < 7:
		key := "days_ago"
		if days == 1 {
			key = "day_ago"
		}
		return tr.T(key, "count", strconv.Itoa(days))
	}

	if t.Year() != now.Year() {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("Jan 2")
}
