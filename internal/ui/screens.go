package ui

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/inventar/internal/view"
)

// CardLines renders one overview card; index is its 1-based position.
func CardLines(index int, c view.Card) []string {
	t := Current()
	head := fmt.Sprintf("%s %s  %s",
		t.Muted.Render(fmt.Sprintf("%2d.", index)),
		t.Title.Render(c.Name),
		t.Count.Render(fmt.Sprint(c.Pieces)),
	)
	lines := []string{head, "    " + t.Muted.Render(c.Summary())}
	if chips := Chips(c); chips != "" {
		lines = append(lines, "    "+chips)
	}
	return lines
}

// Chips renders the preview names plus the "+N mehr" marker.
func Chips(c view.Card) string {
	t := Current()
	parts := make([]string, 0, len(c.Preview)+1)
	for _, name := range c.Preview {
		parts = append(parts, t.Chip.Render(name))
	}
	if more := c.MoreLabel(); more != "" {
		parts = append(parts, t.Muted.Render(more))
	}
	return strings.Join(parts, " ")
}

// OverviewLines renders the whole overview screen for a panel.
func OverviewLines(o view.OverviewScreen) []string {
	t := Current()
	lines := []string{
		t.Muted.Render(view.Eyebrow),
		t.Title.Render(view.OverviewTitle),
		t.Muted.Render(view.OverviewHint),
		"",
	}
	if len(o.Cards) == 0 {
		lines = append(lines, t.Muted.Render("(keine Bereiche)"))
	}
	for i, c := range o.Cards {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, CardLines(i+1, c)...)
	}
	return lines
}

// TileLine renders one detail tile; index is its 1-based position.
func TileLine(index int, tile view.Tile) string {
	t := Current()
	return fmt.Sprintf("%s %s  %s",
		t.Muted.Render(fmt.Sprintf("%2d.", index)),
		t.Count.Render(fmt.Sprintf("%4d", tile.Count)),
		tile.Name,
	)
}

// DetailLines renders the detail screen for a panel.
func DetailLines(d view.DetailScreen) []string {
	t := Current()
	lines := []string{
		t.Muted.Render(view.Eyebrow + " " + t.SymDot + " " + d.Summary()),
		t.Title.Render(d.Name),
		"",
	}
	if d.Empty {
		lines = append(lines, t.Muted.Render(view.EmptyTitle), view.EmptyHint)
		return lines
	}
	for i, tile := range d.Tiles {
		lines = append(lines, TileLine(i+1, tile))
	}
	return lines
}
