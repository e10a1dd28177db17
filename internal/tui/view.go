package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/inventar/internal/ui"
	"github.com/Makepad-fr/inventar/internal/view"
)

func (m Model) View() string {
	t := ui.Current()
	var b strings.Builder

	if active, ok := m.inv.Active(); ok {
		b.WriteString(t.Muted.Render(view.Eyebrow) + "\n")
		b.WriteString(t.Muted.Render(view.DetailHint) + "\n\n")
		if len(active.Items) == 0 {
			b.WriteString(t.Muted.Render(view.EmptyTitle) + "\n")
			b.WriteString(view.EmptyHint + "\n\n")
		}
		b.WriteString(m.detail.View())
	} else {
		b.WriteString(t.Muted.Render(view.Eyebrow) + "\n")
		b.WriteString(t.Muted.Render(view.OverviewHint) + "\n\n")
		b.WriteString(m.overview.View())
	}

	if m.modal.open() {
		b.WriteString("\n" + m.modalView())
	}
	return ui.PanelString(b.String())
}

func (m Model) modalView() string {
	t := ui.Current()
	d := m.modal
	box := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)

	lines := []string{t.Title.Render(d.question)}
	switch d.kind {
	case modalDelete:
		lines = append(lines, t.Muted.Render("j = löschen · n = abbrechen"))
	case modalAddItem:
		lines = append(lines,
			view.ItemNameLabel+" "+d.inputs[0].View(),
			view.ItemCountLabel+" "+d.inputs[1].View(),
			t.Muted.Render("tab wechselt das Feld · enter fügt hinzu · esc abbrechen"),
		)
	default:
		lines = append(lines, d.inputs[0].View(), t.Muted.Render("enter ok · esc abbrechen"))
	}
	if d.err != "" {
		lines = append(lines, t.Error.Render(d.err))
	}
	return box.Render(strings.Join(lines, "\n"))
}
