package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/chibuka/leetcode-cli/ui/messages"
)

var (
	green = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	red   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	gray  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cyan  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

// Progress prints judge state transitions, one line per change of the
// remote state. It is meant for stderr so results on stdout stay clean.
type Progress struct {
	w     io.Writer
	state string
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w}
}

// Observe is passed to client.WithObserver.
func (p *Progress) Observe(msg messages.Msg) {
	switch msg := msg.(type) {
	case messages.SubmittingMsg:
		p.state = ""
		verb := "Submitting"
		if msg.Kind == messages.KindRun {
			verb = "Running"
		}
		fmt.Fprintln(p.w, cyan.Render("● ")+fmt.Sprintf("%s %s (%s)", verb, msg.Slug, msg.Language))

	case messages.PollingMsg:
		if msg.State == p.state {
			return
		}
		p.state = msg.State
		fmt.Fprintln(p.w, "  ├─ "+gray.Render(fmt.Sprintf("%s %s", msg.ID, msg.State)))

	case messages.DoneMsg:
		fmt.Fprintln(p.w, "  └─ "+green.Render("✓ judged")+gray.Render(fmt.Sprintf(" after %d checks", msg.Polls)))

	case messages.FailedMsg:
		fmt.Fprintln(p.w, "  └─ "+red.Render("✗ "+msg.Err.Error()))
	}
}

// Success and Failure format the one-line outcome of a command.
func Success(text string) string {
	return green.Render("✓ ") + text
}

func Failure(text string) string {
	return red.Render("✗ " + text)
}
