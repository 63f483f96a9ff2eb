package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/wrathitsfinest/notes/internal/i18n"
	"github.com/wrathitsfinest/notes/internal/model"
)

func TestNotePreviewTruncates(t *testing.T) {
	tr := i18n.New("en")
	long := strings.Repeat("a", 150)
	n := model.Note{Content: "<div>" + long + "</div>"}

	got := notePreview(n, tr)
	if len([]rune(got)) != previewMaxChars {
		t.Fatalf("preview length = %d", len([]rune(got)))
	}
}

func TestNotePreviewEmptyContent(t *testing.T) {
	tr := i18n.New("en")
	if got := notePreview(model.Note{}, tr); got != "No content" {
		t.Fatalf("preview = %q", got)
	}
}

func TestNotePreviewFlattensChecklist(t *testing.T) {
	tr := i18n.New("en")
	n := model.Note{Content: `<div>Top</div><div class="checklist-item"><span class="checkbox"></span><span class="checklist-content">Task</span></div>`}
	got := notePreview(n, tr)
	if got != "Top Task" {
		t.Fatalf("preview = %q", got)
	}
}

func TestNoteItemShowsRelativeDate(t *testing.T) {
	tr := i18n.New("en")
	now := time.Now().UTC()
	n := model.Note{Title: "Plan", UpdatedAt: now.Add(-5 * time.Minute)}

	it := newNoteItem(n, now, tr)
	if !strings.Contains(it.Description(), "5 mins ago") {
		t.Fatalf("description = %q", it.Description())
	}
}

func TestColorThemes(t *testing.T) {
	if !ValidColorTheme(DefaultColorTheme) {
		t.Fatalf("default accent must be valid")
	}
	if ValidColorTheme("magenta") {
		t.Fatalf("unknown accent accepted")
	}
	for _, name := range ColorThemes() {
		if !ValidColorTheme(name) {
			t.Errorf("listed accent %q not valid", name)
		}
	}
}
