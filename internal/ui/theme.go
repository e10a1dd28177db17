package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Success, Error, Count, Chip, Selected lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	SymOK, SymFail, SymCursor, SymDot string
}

var current = classic()

// SetTheme switches the palette: classic (default), neon or mono.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:    lipgloss.NewStyle().Faint(true),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Count:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
			Chip:     lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("13")).Padding(0, 1),
			Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),

			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),

			SymOK: "✔", SymFail: "✖", SymCursor: "▶", SymDot: "·",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain.Bold(true), Muted: plain,
			Success: plain, Error: plain, Count: plain.Bold(true),
			Chip: plain, Selected: plain.Bold(true),

			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},

			SymOK: "ok", SymFail: "x", SymCursor: ">", SymDot: "-",
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Count:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Chip:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),

		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),

		SymOK: "✔", SymFail: "✖", SymCursor: ">", SymDot: "·",
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
