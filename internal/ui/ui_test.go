package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/inventar/internal/model"
	"github.com/Makepad-fr/inventar/internal/view"
)

func TestOverviewLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	out := strings.Join(OverviewLines(view.Overview(model.Starter())), "\n")
	assert.Contains(t, out, "Deine Bereiche")
	assert.Contains(t, out, " 1. Badezimmer")
	assert.Contains(t, out, "3 Gegenstände · 12 Stück")
	assert.Contains(t, out, "Kerzen")

	empty := strings.Join(OverviewLines(view.OverviewScreen{}), "\n")
	assert.Contains(t, empty, "keine Bereiche")
}

func TestChipsShowMore(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	c := view.Card{Preview: []string{"A", "B", "C", "D"}, More: 3}
	assert.Equal(t, "A B C D +3 mehr", Chips(c))
}

func TestDetailLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	out := strings.Join(DetailLines(view.Detail(model.Starter()[2])), "\n")
	assert.Contains(t, out, "Wohnzimmer")
	assert.Contains(t, out, "   8  Batterien")

	empty := strings.Join(DetailLines(view.Detail(model.List{Name: "Garage"})), "\n")
	assert.Contains(t, empty, view.EmptyTitle)
}

func TestPanelAndMessages(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"hallo"})
	assert.Contains(t, buf.String(), "+")
	assert.Contains(t, buf.String(), "| hallo |")

	buf.Reset()
	OK(&buf, "saved")
	Fail(&buf, "broken")
	assert.Equal(t, "ok saved\nx broken\n", buf.String())
}

func TestSetThemeFallsBackToClassic(t *testing.T) {
	SetTheme("does-not-exist")
	assert.Equal(t, ">", Current().SymCursor)
	assert.Equal(t, "✔", Current().SymOK)
}
