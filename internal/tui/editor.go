package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// editor is a single-line text buffer fed by key messages.
type editor struct {
	value   []rune
	limit   int // in runes; 0 means unlimited
	touched bool
}

func newEditor(limit int) editor { return editor{limit: limit} }

func (e *editor) Value() string { return string(e.value) }

func (e *editor) Blank() bool { return strings.TrimSpace(string(e.value)) == "" }

// handle applies an editing key and reports whether it was one. touched is
// set only once the value has actually changed.
func (e *editor) handle(m tea.KeyMsg) bool {
	changed := false
	switch m.Type {
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(e.value) > 0 {
			e.value = e.value[:len(e.value)-1]
			changed = true
		}
	case tea.KeyCtrlU:
		changed = len(e.value) > 0
		e.value = e.value[:0]
	case tea.KeySpace:
		changed = e.insert([]rune{' '})
	case tea.KeyRunes:
		changed = e.insert(m.Runes)
	default:
		return false
	}
	if changed {
		e.touched = true
	}
	return true
}

// insert appends rs up to the limit and reports whether anything was added.
func (e *editor) insert(rs []rune) bool {
	added := false
	for _, r := range rs {
		if r == '\n' || r == '\r' {
			continue
		}
		if e.limit > 0 && len(e.value) >= e.limit {
			break
		}
		e.value = append(e.value, r)
		added = true
	}
	return added
}

func (e *editor) render(st *styles, placeholder string, disabled bool) string {
	if len(e.value) == 0 {
		if disabled {
			return "> " + st.placeholder.Render(placeholder)
		}
		return "> " + st.cursor.Render("█") + st.placeholder.Render(placeholder)
	}
	out := "> " + st.input.Render(string(e.value))
	if !disabled {
		out += st.cursor.Render("█")
	}
	return out
}
