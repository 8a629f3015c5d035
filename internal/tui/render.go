package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carson-networks/budgetwise/internal/settings"
)

// Renderer turns view states into terminal text.
type Renderer struct {
	title   lipgloss.Style
	errText lipgloss.Style
	muted   lipgloss.Style
	pending lipgloss.Style
	button  lipgloss.Style
}

func NewRenderer() Renderer {
	return Renderer{
		title:   lipgloss.NewStyle().Bold(true).MarginBottom(1),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		pending: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		button:  lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.NormalBorder()),
	}
}

// RenderList draws the read-only account list.
func (r Renderer) RenderList(s settings.State) string {
	switch s.Phase {
	case settings.PhaseLoading:
		return r.muted.Render("Loading…")
	case settings.PhaseFailed:
		return r.errText.Render("Error: " + s.Err)
	}
	return r.rows(s.Entries, false)
}

// RenderSettings draws the list with its delete markers, any error and the add button.
func (r Renderer) RenderSettings(s settings.State) string {
	var b strings.Builder
	b.WriteString(r.title.Render("Accounts"))
	b.WriteString("\n")

	if s.Err != "" {
		b.WriteString(r.errText.Render(s.Err))
		b.WriteString("\n")
	}

	if s.Phase == settings.PhaseLoading {
		b.WriteString(r.muted.Render("Loading…"))
	} else {
		b.WriteString(r.rows(s.Entries, true))
	}
	b.WriteString("\n")

	label := "Add"
	if s.Submitting {
		label = "Adding..."
	}
	b.WriteString(r.button.Render(label))
	return b.String()
}

func (r Renderer) rows(entries []settings.Entry, withDelete bool) string {
	if len(entries) == 0 {
		return r.muted.Render("No accounts yet.")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, r.row(e, withDelete))
	}
	return strings.Join(lines, "\n")
}

func (r Renderer) row(e settings.Entry, withDelete bool) string {
	d := e.Data()
	line := fmt.Sprintf("%s · %s", d.Name, d.Type)
	if !settings.CanDelete(e) {
		return r.pending.Render(line + " (saving)")
	}
	if withDelete {
		line += "  " + r.muted.Render("[delete "+e.Key()+"]")
	}
	return line
}
