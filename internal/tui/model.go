// Package tui is the interactive terminal front end: an overview of all
// lists and a detail screen for the active one.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/inventar/internal/inventory"
	"github.com/Makepad-fr/inventar/internal/model"
	"github.com/Makepad-fr/inventar/internal/ui"
	"github.com/Makepad-fr/inventar/internal/view"
)

const formIncomplete = "Gegenstand und Anzahl sind Pflichtfelder"

// Model implements tea.Model over an inventory. Every transition goes
// through the inventory, which persists it; the model only keeps cursors,
// the open modal and the add-item form buffers.
type Model struct {
	inv *inventory.Inventory

	overview list.Model
	detail   list.Model

	modal modal

	form       view.Form
	formListID string

	width, height int
}

// New builds the model and derives the first screen.
func New(inv *inventory.Inventory) Model {
	ov := list.New(nil, cardDelegate{}, 0, 0)
	ov.Title = view.OverviewTitle
	configureList(&ov, overviewKeyMap.bindings)

	dt := list.New(nil, tileDelegate{}, 0, 0)
	configureList(&dt, detailKeyMap.bindings)

	m := Model{
		inv:      inv,
		overview: ov,
		detail:   dt,
		form:     view.NewForm(),
		width:    80,
		height:   24,
	}
	m.resize()
	m.refresh()
	return m
}

func configureList(l *list.Model, keys func() []key.Binding) {
	t := ui.Current()
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	// q and ctrl+c are handled by the screen key maps; esc must not quit
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.AdditionalShortHelpKeys = keys
	l.AdditionalFullHelpKeys = keys
}

// refresh re-derives list items from the inventory. A change of active list
// resets the add-item form.
func (m *Model) refresh() {
	if m.inv.ActiveID() != m.formListID {
		m.form = view.NewForm()
		m.formListID = m.inv.ActiveID()
	}
	screen := view.Render(m.inv)
	if screen.Detail != nil {
		d := *screen.Detail
		m.detail.Title = d.Name + "  " + ui.Current().Muted.Render(d.Summary())
		m.detail.SetItems(tileItems(d))
		clampCursor(&m.detail)
		return
	}
	m.overview.SetItems(cardItems(*screen.Overview))
	clampCursor(&m.overview)
}

func clampCursor(l *list.Model) {
	n := len(l.Items())
	if n > 0 && l.Index() >= n {
		l.Select(n - 1)
	}
}

func (m *Model) resize() {
	w := max(m.width-4, 20)
	h := max(m.height-6, 5)
	m.overview.SetSize(w, h)
	m.detail.SetSize(w, h)
}

// Inventory exposes the backing state, mainly for tests and the caller of Run.
func (m Model) Inventory() *inventory.Inventory { return m.inv }

// InDetail reports whether the detail screen is showing.
func (m Model) InDetail() bool {
	_, ok := m.inv.Active()
	return ok
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if m.modal.open() {
			return m.updateModal(msg)
		}
		if m.InDetail() {
			return m.updateDetail(msg)
		}
		return m.updateOverview(msg)
	}

	if m.modal.open() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.updateInput(msg)
		return m, cmd
	}
	return m.forward(msg)
}

// forward hands msg to the list of the current screen.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.InDetail() {
		m.detail, cmd = m.detail.Update(msg)
	} else {
		m.overview, cmd = m.overview.Update(msg)
	}
	return m, cmd
}

func (m Model) selectedCard() (cardItem, bool) {
	c, ok := m.overview.SelectedItem().(cardItem)
	return c, ok
}

func (m Model) selectedTile() (tileItem, bool) {
	t, ok := m.detail.SelectedItem().(tileItem)
	return t, ok
}

func (m Model) updateOverview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := overviewKeyMap
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Open):
		if c, ok := m.selectedCard(); ok {
			m.inv.Activate(c.ID)
			m.detail.Select(0)
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, k.New):
		return m.openNewList()
	case key.Matches(msg, k.Rename):
		if c, ok := m.selectedCard(); ok {
			return m.openRename(c.ID, c.Name)
		}
		return m, nil
	case key.Matches(msg, k.Delete):
		if c, ok := m.selectedCard(); ok {
			m.modal = confirmModal(c.ID, view.DeletePrompt(c.Name))
		}
		return m, nil
	}
	return m.forward(msg)
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := detailKeyMap
	active, _ := m.inv.Active()
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Back):
		m.inv.Deactivate()
		m.refresh()
		return m, nil
	case key.Matches(msg, k.Take):
		if t, ok := m.selectedTile(); ok {
			m.inv.DecrementItem(active.ID, t.ID)
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, k.Edit):
		if t, ok := m.selectedTile(); ok {
			var cmd tea.Cmd
			m.modal, cmd = textModal(modalEditCount, t.ID, view.ManualLabel+": "+t.Name, t.Manual)
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, k.Add):
		return m.openAddItem()
	case key.Matches(msg, k.Rename):
		return m.openRename(active.ID, active.Name)
	case key.Matches(msg, k.Delete):
		m.modal = confirmModal(active.ID, view.DeletePrompt(active.Name))
		return m, nil
	case key.Matches(msg, k.New):
		return m.openNewList()
	}
	return m.forward(msg)
}

func (m Model) openNewList() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.modal, cmd = textModal(modalNewList, "", view.NewListPrompt, "")
	return m, cmd
}

func (m Model) openRename(id, name string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.modal, cmd = textModal(modalRename, id, view.RenamePrompt, name)
	return m, cmd
}

func (m Model) openAddItem() (tea.Model, tea.Cmd) {
	name := newInput(view.ItemNameHint, m.form.Name)
	count := newInput("", m.form.Count)
	cmd := name.Focus()
	m.modal = modal{
		kind:     modalAddItem,
		question: view.ItemNameLabel + " / " + view.ItemCountLabel,
		inputs:   []textinput.Model{name, count},
	}
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.modal
	if d.kind == modalDelete {
		answered, yes := confirmAnswer(msg)
		if !answered {
			return m, nil
		}
		if yes {
			m.inv.DeleteList(d.targetID)
		}
		m.modal = modal{}
		m.refresh()
		return m, nil
	}

	switch {
	case key.Matches(msg, modalKeyMap.Cancel):
		if d.kind == modalAddItem {
			m.form = view.Form{Name: d.value(0), Count: d.value(1)}
		}
		m.modal = modal{}
		return m, nil
	case key.Matches(msg, modalKeyMap.Accept):
		return m.submitModal()
	case key.Matches(msg, modalKeyMap.Next):
		var cmd tea.Cmd
		m.modal, cmd = d.cycle(1)
		return m, cmd
	case key.Matches(msg, modalKeyMap.Prev):
		var cmd tea.Cmd
		m.modal, cmd = d.cycle(-1)
		return m, cmd
	}

	var cmd tea.Cmd
	m.modal, cmd = d.updateInput(msg)
	m.modal.err = ""
	return m, cmd
}

func (m Model) submitModal() (tea.Model, tea.Cmd) {
	d := m.modal
	switch d.kind {
	case modalNewList:
		m.inv.CreateList(d.value(0))
		m.detail.Select(0)
	case modalRename:
		m.inv.RenameList(d.targetID, d.value(0))
	case modalEditCount:
		m.inv.SetItemCount(m.inv.ActiveID(), d.targetID, model.ParseCount(d.value(0)), false)
	case modalAddItem:
		f := view.Form{Name: d.value(0), Count: d.value(1)}
		if !f.Ready() {
			m.modal.err = formIncomplete
			return m, nil
		}
		if _, ok := m.inv.AddItem(m.inv.ActiveID(), f.Name, f.ParsedCount()); ok {
			m.form = view.NewForm()
		}
	}
	m.modal = modal{}
	m.refresh()
	return m, nil
}
