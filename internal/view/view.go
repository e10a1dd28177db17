// Package view derives the two screens of the tracker from state.
// Everything here is a pure function; no screen keeps state of its own.
package view

import (
	"fmt"
	"strconv"

	"github.com/Makepad-fr/inventar/internal/model"
)

// PreviewLimit is how many item names a card shows before "+N mehr".
const PreviewLimit = 4

// Card summarizes one list on the overview.
type Card struct {
	ID        string
	Name      string
	ItemCount int
	Pieces    int
	Preview   []string
	More      int
}

// OverviewScreen shows every list.
type OverviewScreen struct {
	Cards []Card
}

// Tile is one item on the detail screen.
type Tile struct {
	ID    string
	Name  string
	Count int
	// Manual is the text of the direct-edit field; empty for a zero count.
	Manual string
}

// DetailScreen shows the active list.
type DetailScreen struct {
	ListID    string
	Name      string
	ItemCount int
	Pieces    int
	Tiles     []Tile
	Empty     bool
}

// Screen is exactly one of Overview or Detail.
type Screen struct {
	Overview *OverviewScreen
	Detail   *DetailScreen
}

// State is what the renderer needs from the inventory.
type State interface {
	Lists() model.Collection
	Active() (model.List, bool)
}

// Render picks the detail screen when a list is active, the overview otherwise.
func Render(s State) Screen {
	if l, ok := s.Active(); ok {
		d := Detail(l)
		return Screen{Detail: &d}
	}
	o := Overview(s.Lists())
	return Screen{Overview: &o}
}

func Overview(lists model.Collection) OverviewScreen {
	cards := make([]Card, 0, len(lists))
	for _, l := range lists {
		c := Card{
			ID:        l.ID,
			Name:      l.Name,
			ItemCount: len(l.Items),
			Pieces:    model.TotalPieces(l),
		}
		for i, it := range l.Items {
			if i == PreviewLimit {
				break
			}
			c.Preview = append(c.Preview, it.Name)
		}
		c.More = max(0, len(l.Items)-PreviewLimit)
		cards = append(cards, c)
	}
	return OverviewScreen{Cards: cards}
}

func Detail(l model.List) DetailScreen {
	d := DetailScreen{
		ListID:    l.ID,
		Name:      l.Name,
		ItemCount: len(l.Items),
		Pieces:    model.TotalPieces(l),
		Tiles:     make([]Tile, 0, len(l.Items)),
		Empty:     len(l.Items) == 0,
	}
	for _, it := range l.Items {
		d.Tiles = append(d.Tiles, Tile{
			ID:     it.ID,
			Name:   it.Name,
			Count:  it.Count,
			Manual: ManualText(it.Count),
		})
	}
	return d
}

// ManualText is the direct-edit field content for a count.
func ManualText(count int) string {
	if count == 0 {
		return ""
	}
	return strconv.Itoa(count)
}

// Summary is the "N Gegenstände · M Stück" line.
func Summary(items, pieces int) string {
	return fmt.Sprintf("%d Gegenstände · %d Stück", items, pieces)
}

func (c Card) Summary() string { return Summary(c.ItemCount, c.Pieces) }

func (d DetailScreen) Summary() string { return Summary(d.ItemCount, d.Pieces) }

// MoreLabel is the chip shown for hidden items, or "" when nothing is hidden.
func (c Card) MoreLabel() string {
	if c.More == 0 {
		return ""
	}
	return fmt.Sprintf("+%d mehr", c.More)
}
