package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/inventar/internal/ui"
	"github.com/Makepad-fr/inventar/internal/view"
)

// cardItem adapts a view.Card to bubbles/list.Item
type cardItem struct{ view.Card }

func (c cardItem) FilterValue() string { return c.Name }

// tileItem adapts a view.Tile to bubbles/list.Item
type tileItem struct{ view.Tile }

func (t tileItem) FilterValue() string { return t.Name }

// cardDelegate draws a card as name + summary + preview chips.
type cardDelegate struct{}

func (d cardDelegate) Height() int                               { return 3 }
func (d cardDelegate) Spacing() int                              { return 1 }
func (d cardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	c, ok := item.(cardItem)
	if !ok {
		return
	}
	t := ui.Current()
	prefix := "  "
	name := t.Title.Render(c.Name)
	if index == m.Index() {
		prefix = t.Selected.Render(t.SymCursor) + " "
		name = t.Selected.Render(c.Name)
	}
	fmt.Fprintf(w, "%s%s  %s\n", prefix, name, t.Count.Render(fmt.Sprint(c.Pieces)))
	fmt.Fprintf(w, "  %s\n", t.Muted.Render(c.Summary()))
	fmt.Fprintf(w, "  %s", ui.Chips(c.Card))
}

// tileDelegate draws a tile as count, name and manual field, with the
// tap hint underneath.
type tileDelegate struct{}

func (d tileDelegate) Height() int                               { return 2 }
func (d tileDelegate) Spacing() int                              { return 0 }
func (d tileDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d tileDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(tileItem)
	if !ok {
		return
	}
	t := ui.Current()
	prefix := "  "
	name := it.Name
	if index == m.Index() {
		prefix = t.Selected.Render(t.SymCursor) + " "
		name = t.Selected.Render(it.Name)
	}
	fmt.Fprintf(w, "%s%s  %s  %s\n",
		prefix,
		t.Count.Render(fmt.Sprintf("%4d", it.Count)),
		name,
		t.Muted.Render(fmt.Sprintf("[%s: %s]", view.ManualLabel, it.Manual)),
	)
	fmt.Fprintf(w, "        %s", t.Muted.Render(view.TileHint))
}

func cardItems(o view.OverviewScreen) []list.Item {
	out := make([]list.Item, 0, len(o.Cards))
	for _, c := range o.Cards {
		out = append(out, cardItem{c})
	}
	return out
}

func tileItems(d view.DetailScreen) []list.Item {
	out := make([]list.Item, 0, len(d.Tiles))
	for _, t := range d.Tiles {
		out = append(out, tileItem{t})
	}
	return out
}
