// Package doc holds the note document model: an ordered sequence of lines,
// each plain or a checklist item, plus the edit operations the editor invokes
// on it. The model is transient; it decodes from and encodes to the markup
// stored in a note's content field.
package doc

import "strings"

// Placeholder is the zero-width space used to represent an empty editable
// region. An empty checklist content region keeps this character so a cursor
// can still be addressed inside it; it is stripped before persisting previews
// and before emptiness checks.
const Placeholder = "\u200b"

type Kind int

const (
	KindPlain Kind = iota
	KindChecklist
)

type Line struct {
	Kind    Kind
	Checked bool

	// Text is the line's editable inline content, as runes of text only
	// (markup boundaries do not exist at this level). For checklist lines an
	// empty region is stored as Placeholder.
	Text string

	// ContentMissing marks a checklist line whose editable content region was
	// destroyed by a structural edit. Text then holds whatever remnant the
	// edit left behind (checkbox marker excluded). Repair rebuilds the region
	// before the next operation is accepted.
	ContentMissing bool
}

// Plain returns a plain line with the given text.
func Plain(text string) Line {
	return Line{Kind: KindPlain, Text: text}
}

// Checklist returns a checklist line, substituting the placeholder when the
// text is empty so the content region stays addressable.
func Checklist(text string, checked bool) Line {
	if text == "" {
		text = Placeholder
	}
	return Line{Kind: KindChecklist, Checked: checked, Text: text}
}

// PlainText returns the line's text with placeholder characters stripped.
func (l Line) PlainText() string {
	return StripPlaceholder(l.Text)
}

// Empty reports whether the line has no content beyond placeholder characters
// and whitespace.
func (l Line) Empty() bool {
	return strings.TrimSpace(StripPlaceholder(l.Text)) == ""
}

// Document is an ordered sequence of lines. A document always holds at least
// one line; the empty document is a single empty plain line.
type Document struct {
	Lines []Line
}

// Cursor addresses a position in a document by line index and rune offset
// into that line's editable text. Offsets never point into markup.
type Cursor struct {
	Line int
	Col  int
}

// New returns the empty document.
func New() Document {
	return Document{Lines: []Line{Plain("")}}
}

// PlainText renders the document as plain text, one line per document line,
// placeholders stripped. Used for previews and title fallbacks.
func (d Document) PlainText() string {
	parts := make([]string, 0, len(d.Lines))
	for _, l := range d.Lines {
		parts = append(parts, l.PlainText())
	}
	return strings.Join(parts, "\n")
}

// StripPlaceholder removes every placeholder character from s.
func StripPlaceholder(s string) string {
	return strings.ReplaceAll(s, Placeholder, "")
}

// Clamp returns cur constrained to a valid position inside d.
func (d Document) Clamp(cur Cursor) Cursor {
	if len(d.Lines) == 0 {
		return Cursor{}
	}
	if cur.Line < 0 {
		cur.Line = 0
	}
	if cur.Line >= len(d.Lines) {
		cur.Line = len(d.Lines) - 1
	}
	n := len([]rune(d.Lines[cur.Line].Text))
	if cur.Col < 0 {
		cur.Col = 0
	}
	if cur.Col > n {
		cur.Col = n
	}
	return cur
}
