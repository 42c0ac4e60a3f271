package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chibuka/leetcode-cli/ui/theme"
)

// LabelWidth is the column at which values start in label/value lines.
const LabelWidth = 25

// styles resolves keys of one theme section and remembers the first failure,
// so renderers can build their output and report the error once at the end.
type styles struct {
	bundle  *theme.Bundle
	section string
	err     error
}

func newStyles(b *theme.Bundle, section string) *styles {
	return &styles{bundle: b, section: section}
}

func (s *styles) get(key string) theme.Style {
	style, err := s.bundle.Styling(s.section, key)
	if err != nil && s.err == nil {
		s.err = err
	}
	return style
}

func (s *styles) render(key, text string) string {
	return s.get(key).Render(text)
}

// LabelValue formats "  <label><padding>: <value>" followed by a newline.
// Continuation lines of a multi-line value are indented to the value column.
func LabelValue(label, value string, labelStyle, valueStyle theme.Style) string {
	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(labelStyle.Render(label))
	sb.WriteString(strings.Repeat(" ", max(LabelWidth-lipgloss.Width(label), 0)))
	sb.WriteString(": ")

	indent := strings.Repeat(" ", 2+max(LabelWidth, lipgloss.Width(label))+2)
	for i, line := range strings.Split(value, "\n") {
		if i > 0 {
			sb.WriteString("\n")
			sb.WriteString(indent)
		}
		sb.WriteString(valueStyle.Render(line))
	}
	sb.WriteString("\n")
	return sb.String()
}

// padRight pads s with spaces to the given visible width.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
