package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/inventar/internal/inventory"
	"github.com/Makepad-fr/inventar/internal/logging"
	"github.com/Makepad-fr/inventar/internal/model"
	"github.com/Makepad-fr/inventar/internal/view"
)

func newTestModel() Model {
	inv := inventory.New(model.Starter(),
		inventory.WithIDGenerator(&inventory.SequenceGenerator{Prefix: "id"}),
		inventory.WithLogger(logging.Discard()),
	)
	return New(inv)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	bksp  = tea.KeyMsg{Type: tea.KeyBackspace}
)

// press feeds keys through Update in order.
func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestOpenAndLeaveList(t *testing.T) {
	m := newTestModel()
	assert.False(t, m.InDetail())

	m = press(t, m, down, enter)
	require.True(t, m.InDetail())
	assert.Equal(t, "kitchen", m.Inventory().ActiveID())

	m = press(t, m, esc)
	assert.False(t, m.InDetail())

	m = press(t, m, enter, bksp)
	assert.False(t, m.InDetail())
}

func TestCreateListThroughModal(t *testing.T) {
	m := newTestModel()

	m = press(t, m, runes("n"), runes("Garage"), enter)

	lists := m.Inventory().Lists()
	require.Len(t, lists, 4)
	assert.Equal(t, "Garage", lists[3].Name)
	assert.True(t, m.InDetail(), "a new list becomes active")
	assert.False(t, m.modal.open())
}

func TestCreateListCancelledOrBlank(t *testing.T) {
	m := newTestModel()

	m = press(t, m, runes("n"), runes("Garage"), esc)
	m = press(t, m, runes("n"), runes("   "), enter)

	assert.Len(t, m.Inventory().Lists(), 3)
	assert.False(t, m.InDetail())
}

func TestModalBlocksOtherKeys(t *testing.T) {
	m := newTestModel()

	// q and x are typed into the input instead of quitting or deleting
	m = press(t, m, runes("n"), runes("q"), runes("x"))
	require.True(t, m.modal.open())
	assert.Equal(t, "qx", m.modal.value(0))
	assert.Len(t, m.Inventory().Lists(), 3)
}

func TestRenameFromOverview(t *testing.T) {
	m := newTestModel()

	m = press(t, m, runes("r"))
	require.True(t, m.modal.open())
	assert.Equal(t, "Badezimmer", m.modal.value(0), "prefilled with the current name")

	m = press(t, m, bksp, bksp, bksp, bksp, bksp, bksp, runes("2"), enter)
	l, _ := m.Inventory().List("bath")
	assert.Equal(t, "Bade2", l.Name)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m := newTestModel()

	m = press(t, m, runes("x"))
	require.Equal(t, modalDelete, m.modal.kind)
	m = press(t, m, runes("n"))
	assert.Len(t, m.Inventory().Lists(), 3)

	m = press(t, m, runes("x"), runes("z"))
	assert.True(t, m.modal.open(), "other keys leave the question open")
	m = press(t, m, runes("j"))
	lists := m.Inventory().Lists()
	require.Len(t, lists, 2)
	assert.Equal(t, "kitchen", lists[0].ID)
}

func TestDeleteActiveListReturnsToOverview(t *testing.T) {
	m := newTestModel()

	m = press(t, m, enter, runes("x"), enter)

	assert.False(t, m.InDetail())
	assert.Empty(t, m.Inventory().ActiveID())
	assert.Len(t, m.Inventory().Lists(), 2)
}

func TestTapDecrementsAndRemovesAtZero(t *testing.T) {
	m := newTestModel()
	m = press(t, m, down, down, enter) // Wohnzimmer, Kerzen has 2

	m = press(t, m, space)
	l, _ := m.Inventory().Active()
	assert.Equal(t, 1, l.Items[0].Count)

	m = press(t, m, enter)
	l, _ = m.Inventory().Active()
	require.Len(t, l.Items, 2)
	assert.Equal(t, "batteries", l.Items[0].ID)
}

func TestManualEditKeepsZero(t *testing.T) {
	m := newTestModel()
	m = press(t, m, enter) // Badezimmer

	m = press(t, m, runes("e"))
	require.Equal(t, modalEditCount, m.modal.kind)
	assert.Equal(t, "2", m.modal.value(0))

	m = press(t, m, bksp, runes("0"), enter)
	l, _ := m.Inventory().Active()
	require.Len(t, l.Items, 3, "manual zero keeps the item")
	assert.Equal(t, 0, l.Items[0].Count)

	m = press(t, m, runes("e"))
	assert.Equal(t, "", m.modal.value(0), "zero shows an empty field")
	m = press(t, m, runes("7abc"), enter)
	l, _ = m.Inventory().Active()
	assert.Equal(t, 7, l.Items[0].Count)

	m = press(t, m, runes("e"), bksp, runes("x"), enter)
	l, _ = m.Inventory().Active()
	assert.Equal(t, 0, l.Items[0].Count, "non-numeric input becomes zero")
	assert.Len(t, l.Items, 3)
}

func TestAddItemForm(t *testing.T) {
	m := newTestModel()
	m = press(t, m, enter)

	m = press(t, m, runes("a"), runes("Zahnpasta"), tab, bksp, runes("-5"), enter)

	l, _ := m.Inventory().Active()
	require.Len(t, l.Items, 4)
	assert.Equal(t, "Zahnpasta", l.Items[3].Name)
	assert.Equal(t, 1, l.Items[3].Count, "negative counts are raised to one")
	assert.Equal(t, "1", m.form.Count, "form resets after adding")
	assert.Equal(t, "", m.form.Name)
}

func TestAddItemRequiresFields(t *testing.T) {
	m := newTestModel()
	m = press(t, m, enter)

	m = press(t, m, runes("a"), enter)
	assert.True(t, m.modal.open())
	assert.Equal(t, formIncomplete, m.modal.err)

	m = press(t, m, runes("Seife"), tab, bksp, enter)
	assert.True(t, m.modal.open(), "count is required too")

	l, _ := m.Inventory().Active()
	assert.Len(t, l.Items, 3)
}

func TestFormBuffersSurviveCancelButResetOnListChange(t *testing.T) {
	m := newTestModel()
	m = press(t, m, enter, runes("a"), runes("Tabs"), esc)
	assert.Equal(t, "Tabs", m.form.Name)

	m = press(t, m, runes("a"))
	assert.Equal(t, "Tabs", m.modal.value(0))
	m = press(t, m, esc, esc) // close modal, back to overview

	m = press(t, m, down, enter)
	assert.Equal(t, "", m.form.Name)
	assert.Equal(t, "1", m.form.Count)
}

func TestQuit(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEscOnOverviewKeepsRunning(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(esc)
	if cmd != nil {
		assert.NotEqual(t, tea.QuitMsg{}, cmd())
	}
	m = next.(Model)
	assert.False(t, m.InDetail())
	assert.Contains(t, m.View(), "Badezimmer")
}

func TestViewShowsScreens(t *testing.T) {
	m := newTestModel()
	out := m.View()
	assert.Contains(t, out, "Badezimmer")
	assert.Contains(t, out, "3 Gegenstände · 11 Stück")

	m = press(t, m, enter)
	out = m.View()
	assert.Contains(t, out, "Handtücher")
	assert.Contains(t, out, "Manuell")
	assert.Contains(t, out, view.TileHint)

	m = press(t, m, runes("x"))
	assert.Contains(t, m.View(), "wirklich löschen")
}

func TestWindowResize(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	assert.Equal(t, 116, m.overview.Width())
	assert.Equal(t, 34, m.overview.Height())
}
