package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/inventar/internal/inventory"
)

// Run starts the interactive program and blocks until the user quits.
// State is persisted by the inventory on every change, so nothing is
// written here on exit.
func Run(inv *inventory.Inventory) error {
	p := tea.NewProgram(New(inv), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
