package tui

import "github.com/charmbracelet/bubbles/key"

type overviewKeys struct {
	Open, New, Rename, Delete, Quit key.Binding
}

type detailKeys struct {
	Take, Edit, Add, Rename, Delete, New, Back, Quit key.Binding
}

type modalKeys struct {
	Accept, Cancel, Yes, No, Next, Prev key.Binding
}

var (
	overviewKeyMap = overviewKeys{
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "öffnen")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "neuer Bereich")),
		Rename: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "umbenennen")),
		Delete: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "löschen")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "beenden")),
	}

	detailKeyMap = detailKeys{
		Take:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "eins weniger")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "manuell")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "hinzufügen")),
		Rename: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "umbenennen")),
		Delete: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "löschen")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "neuer Bereich")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "übersicht")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "beenden")),
	}

	modalKeyMap = modalKeys{
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ok")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "abbrechen")),
		Yes:    key.NewBinding(key.WithKeys("y", "j"), key.WithHelp("j", "ja")),
		No:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nein")),
		Next:   key.NewBinding(key.WithKeys("tab", "down")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	}
)

func (k overviewKeys) bindings() []key.Binding {
	return []key.Binding{k.Open, k.New, k.Rename, k.Delete, k.Quit}
}

func (k detailKeys) bindings() []key.Binding {
	return []key.Binding{k.Take, k.Edit, k.Add, k.Rename, k.Delete, k.Back, k.Quit}
}
