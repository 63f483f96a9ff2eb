package i18n

import "testing"

func TestTranslate(t *testing.T) {
	tr := New("en")
	if got := tr.T("new_note"); got != "New Note" {
		t.Fatalf("got %q", got)
	}
	if got := tr.T("mins_ago", "count", "5"); got != "5 mins ago" {
		t.Fatalf("got %q", got)
	}
}

func TestRussianTable(t *testing.T) {
	tr := New("ru")
	if got := tr.T("new_note"); got != "Новая заметка" {
		t.Fatalf("got %q", got)
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	tr := New("de")
	if tr.Lang() != Default {
		t.Fatalf("lang = %q", tr.Lang())
	}
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	tr := New("en")
	if got := tr.T("no_such_key"); got != "no_such_key" {
		t.Fatalf("got %q", got)
	}
}

func TestTablesCoverSameKeys(t *testing.T) {
	en, ru := tables["en"], tables["ru"]
	for k := range en {
		if _, ok := ru[k]; !ok {
			t.Errorf("key %q missing from ru", k)
		}
	}
	for k := range ru {
		if _, ok := en[k]; !ok {
			t.Errorf("key %q missing from en", k)
		}
	}
}
