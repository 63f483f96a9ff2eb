package doc

import (
	"html"
	"strings"
)

// The persisted content format is the line markup the app has always used:
//
//	<div>plain text</div>
//	<div class="checklist-item checked"><span class="checkbox"></span><span class="checklist-content">text</span></div>
//
// Legacy notes written before line markup existed are bare text; they are
// upgraded on decode by treating line breaks as plain-line separators.

const (
	classChecklistItem    = "checklist-item"
	classChecked          = "checked"
	classCheckbox         = "checkbox"
	classChecklistContent = "checklist-content"
)

// Decode parses serialized note content into a document. It never fails:
// unrecognized markup degrades to text, and a checklist line whose content
// region is missing is flagged for Repair rather than rejected.
func Decode(content string) Document {
	if !strings.Contains(content, "<div") {
		return decodeLegacy(content)
	}

	var lines []Line
	rest := content
	for {
		open := strings.Index(rest, "<div")
		if open < 0 {
			break
		}
		openEnd := strings.Index(rest[open:], ">")
		if openEnd < 0 {
			break
		}
		openEnd += open
		closeIdx := strings.Index(rest[openEnd:], "</div>")
		if closeIdx < 0 {
			break
		}
		closeIdx += openEnd
		tag := rest[open : openEnd+1]
		inner := rest[openEnd+1 : closeIdx]
		rest = rest[closeIdx+len("</div>"):]

		lines = append(lines, decodeLine(tag, inner))
	}

	if len(lines) == 0 {
		return New()
	}
	return Document{Lines: lines}
}

func decodeLegacy(content string) Document {
	if strings.TrimSpace(content) == "" {
		return New()
	}
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		lines = append(lines, Plain(r))
	}
	return Document{Lines: lines}
}

func decodeLine(openTag, inner string) Line {
	class := attrValue(openTag, "class")
	if !hasClass(class, classChecklistItem) {
		return Plain(innerText(inner))
	}

	checked := hasClass(class, classChecked)
	if span, ok := spanInner(inner, classChecklistContent); ok {
		text := innerText(span)
		if text == "" {
			text = Placeholder
		}
		return Line{Kind: KindChecklist, Checked: checked, Text: text}
	}

	// The editable region is gone (structural delete across lines). Keep the
	// remnant text minus the checkbox marker and let Repair rebuild the line.
	remnant := inner
	if span, ok := spanOuter(inner, classCheckbox); ok {
		remnant = strings.Replace(remnant, span, "", 1)
	}
	return Line{
		Kind:           KindChecklist,
		Checked:        checked,
		Text:           innerText(remnant),
		ContentMissing: true,
	}
}

// Encode serializes the document back to line markup. The empty document
// encodes to the empty string.
func Encode(d Document) string {
	if len(d.Lines) == 0 || (len(d.Lines) == 1 && d.Lines[0].Kind == KindPlain && d.Lines[0].Text == "") {
		return ""
	}

	var b strings.Builder
	for _, l := range d.Lines {
		switch l.Kind {
		case KindChecklist:
			b.WriteString(`<div class="`)
			b.WriteString(classChecklistItem)
			if l.Checked {
				b.WriteString(" " + classChecked)
			}
			b.WriteString(`"><span class="` + classCheckbox + `"></span><span class="` + classChecklistContent + `">`)
			b.WriteString(escapeText(l.Text))
			b.WriteString(`</span></div>`)
		default:
			if l.Text == "" {
				b.WriteString("<div><br></div>")
			} else {
				b.WriteString("<div>" + escapeText(l.Text) + "</div>")
			}
		}
	}
	return b.String()
}

func escapeText(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "\n") {
		if b.Len() > 0 {
			b.WriteString("<br>")
		}
		b.WriteString(html.EscapeString(part))
	}
	return b.String()
}

// innerText strips tags from a markup fragment, keeping text content.
// Lone <br> is an empty line; embedded <br> become newlines within the line.
func innerText(s string) string {
	s = strings.ReplaceAll(s, "<br/>", "<br>")
	s = strings.ReplaceAll(s, "<br />", "<br>")
	if strings.TrimSpace(s) == "<br>" {
		return ""
	}
	s = strings.ReplaceAll(s, "<br>", "\n")

	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return html.UnescapeString(b.String())
}

func attrValue(tag, name string) string {
	idx := strings.Index(tag, name+`="`)
	if idx < 0 {
		return ""
	}
	rest := tag[idx+len(name)+2:]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return ""
	}
	return rest[:end]
}

func hasClass(classAttr, class string) bool {
	for _, c := range strings.Fields(classAttr) {
		if c == class {
			return true
		}
	}
	return false
}

// spanInner returns the inner markup of the first <span> carrying class.
func spanInner(s, class string) (string, bool) {
	outer, ok := spanOuter(s, class)
	if !ok {
		return "", false
	}
	openEnd := strings.Index(outer, ">")
	return outer[openEnd+1 : len(outer)-len("</span>")], true
}

// spanOuter returns the full markup of the first <span> carrying class,
// including its tags.
func spanOuter(s, class string) (string, bool) {
	rest := s
	base := 0
	for {
		open := strings.Index(rest, "<span")
		if open < 0 {
			return "", false
		}
		openEnd := strings.Index(rest[open:], ">")
		if openEnd < 0 {
			return "", false
		}
		openEnd += open
		closeIdx := strings.Index(rest[openEnd:], "</span>")
		if closeIdx < 0 {
			return "", false
		}
		closeIdx += openEnd

		tag := rest[open : openEnd+1]
		if hasClass(attrValue(tag, "class"), class) {
			start := base + open
			end := base + closeIdx + len("</span>")
			return s[start:end], true
		}
		base += closeIdx + len("</span>")
		rest = rest[closeIdx+len("</span>"):]
	}
}
