package doc

// Edit operations. Each takes the current cursor, mutates the document, and
// returns the new cursor. Operations that may decline (so the caller falls
// back to default key behavior) also return handled=false.
//
// The operations preserve the checklist-line invariant by construction;
// Repair is the reactive pass that restores it after structural edits the
// forward operations never saw.

// ToggleChecklistAt converts the cursor's line between plain and checklist,
// preserving inline content and the cursor's character offset within it.
// Converting an empty checklist line back to plain puts the cursor at the
// line start, since there is no content to keep the offset stable against.
func ToggleChecklistAt(d *Document, cur Cursor) Cursor {
	cur = d.Clamp(cur)
	l := d.Lines[cur.Line]

	switch l.Kind {
	case KindChecklist:
		if l.Empty() {
			d.Lines[cur.Line] = Plain("")
			return Cursor{Line: cur.Line, Col: 0}
		}
		text := l.PlainText()
		col := offsetExcludingPlaceholder(l.Text, cur.Col)
		d.Lines[cur.Line] = Plain(text)
		return d.Clamp(Cursor{Line: cur.Line, Col: col})
	default:
		col := cur.Col
		d.Lines[cur.Line] = Checklist(l.Text, false)
		return d.Clamp(Cursor{Line: cur.Line, Col: col})
	}
}

// Enter handles the Enter key inside a checklist line. On an empty line it
// un-toggles back to plain ("I'm done adding items") with the cursor at the
// line's end; otherwise it splits at the cursor, moving the tail into a new
// unchecked checklist line and placing the cursor at its start. Returns
// handled=false on plain lines, where default line-break behavior applies.
func Enter(d *Document, cur Cursor) (Cursor, bool) {
	cur = d.Clamp(cur)
	l := d.Lines[cur.Line]
	if l.Kind != KindChecklist {
		return cur, false
	}

	if l.Empty() {
		text := l.PlainText()
		d.Lines[cur.Line] = Plain(text)
		return Cursor{Line: cur.Line, Col: len([]rune(text))}, true
	}

	runes := []rune(l.Text)
	before := StripPlaceholder(string(runes[:cur.Col]))
	after := StripPlaceholder(string(runes[cur.Col:]))

	d.Lines[cur.Line] = Checklist(before, l.Checked)
	tail := Checklist(after, false)
	d.Lines = append(d.Lines, Line{})
	copy(d.Lines[cur.Line+2:], d.Lines[cur.Line+1:])
	d.Lines[cur.Line+1] = tail

	return Cursor{Line: cur.Line + 1, Col: 0}, true
}

// Backspace handles Backspace at offset 0 of a checklist line's content: an
// empty line converts back to plain with the cursor at its start. Anything
// else (non-empty content, cursor not at the start) is left to default
// backspace behavior and reported as handled=false.
func Backspace(d *Document, cur Cursor) (Cursor, bool) {
	cur = d.Clamp(cur)
	l := d.Lines[cur.Line]
	if l.Kind != KindChecklist {
		return cur, false
	}
	if offsetExcludingPlaceholder(l.Text, cur.Col) != 0 {
		return cur, false
	}
	if !l.Empty() {
		return cur, false
	}

	d.Lines[cur.Line] = Plain(l.PlainText())
	return Cursor{Line: cur.Line, Col: 0}, true
}

// ToggleChecked flips the checked state of the checklist line at index i.
// No structural change, no cursor movement.
func ToggleChecked(d *Document, i int) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	if d.Lines[i].Kind != KindChecklist {
		return
	}
	d.Lines[i].Checked = !d.Lines[i].Checked
}

// Repair restores the checklist-line invariant after arbitrary structural
// edits: any checklist line missing its content region gets one rebuilt from
// the remnant text (placeholder if nothing remains), and empty checklist
// content is re-seeded with the placeholder. The cursor is relocated into the
// rebuilt region when it was anchored on a repaired line. Idempotent.
func Repair(d *Document, cur Cursor) Cursor {
	if len(d.Lines) == 0 {
		d.Lines = []Line{Plain("")}
	}
	for i := range d.Lines {
		l := &d.Lines[i]
		if l.Kind != KindChecklist {
			continue
		}
		if l.ContentMissing {
			text := StripPlaceholder(l.Text)
			if text == "" {
				text = Placeholder
			}
			l.Text = text
			l.ContentMissing = false
			if cur.Line == i {
				cur.Col = min(cur.Col, len([]rune(l.Text)))
			}
			continue
		}
		if l.Text == "" {
			l.Text = Placeholder
		}
	}
	return d.Clamp(cur)
}

// offsetExcludingPlaceholder maps a rune offset in text to the offset among
// non-placeholder runes only.
func offsetExcludingPlaceholder(text string, col int) int {
	runes := []rune(text)
	if col > len(runes) {
		col = len(runes)
	}
	n := 0
	for _, r := range runes[:col] {
		if string(r) != Placeholder {
			n++
		}
	}
	return n
}
