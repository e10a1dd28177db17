package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalNewList
	modalRename
	modalDelete
	modalAddItem
	modalEditCount
)

// modal is a blocking question. While one is open it receives every key.
type modal struct {
	kind     modalKind
	targetID string
	question string
	inputs   []textinput.Model
	focus    int
	err      string
}

func (d modal) open() bool { return d.kind != modalNone }

func newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.SetValue(value)
	ti.CursorEnd()
	return ti
}

// textModal asks for a single line of text.
func textModal(kind modalKind, targetID, question, initial string) (modal, tea.Cmd) {
	ti := newInput("", initial)
	cmd := ti.Focus()
	return modal{
		kind:     kind,
		targetID: targetID,
		question: question,
		inputs:   []textinput.Model{ti},
	}, cmd
}

// confirmModal asks yes or no.
func confirmModal(targetID, question string) modal {
	return modal{kind: modalDelete, targetID: targetID, question: question}
}

// value returns the content of input i.
func (d modal) value(i int) string {
	if i >= len(d.inputs) {
		return ""
	}
	return d.inputs[i].Value()
}

// cycle moves focus between inputs.
func (d modal) cycle(delta int) (modal, tea.Cmd) {
	if len(d.inputs) < 2 {
		return d, nil
	}
	d.inputs[d.focus].Blur()
	d.focus = (d.focus + delta + len(d.inputs)) % len(d.inputs)
	return d, d.inputs[d.focus].Focus()
}

// updateInput forwards msg to the focused input.
func (d modal) updateInput(msg tea.Msg) (modal, tea.Cmd) {
	if len(d.inputs) == 0 {
		return d, nil
	}
	var cmd tea.Cmd
	d.inputs[d.focus], cmd = d.inputs[d.focus].Update(msg)
	return d, cmd
}

// confirmAnswer classifies a key for a confirm modal.
func confirmAnswer(msg tea.KeyMsg) (answered, yes bool) {
	switch {
	case key.Matches(msg, modalKeyMap.Yes), key.Matches(msg, modalKeyMap.Accept):
		return true, true
	case key.Matches(msg, modalKeyMap.No), key.Matches(msg, modalKeyMap.Cancel):
		return true, false
	}
	return false, false
}
