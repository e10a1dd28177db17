package view

// User-facing copy shared by the terminal front ends.
const (
	Eyebrow        = "Inventar"
	OverviewTitle  = "Deine Bereiche"
	OverviewHint   = "Wähle einen Raum oder lege einen neuen Bereich an, um die Gegenstände dahinter zu pflegen."
	DetailHint     = "Tippe auf eine Kachel, um den Bestand zu verringern. Den Zähler kannst du auch direkt anpassen."
	TileHint       = "Tippen verringert den Bestand um eins"
	EmptyTitle     = "Noch leer"
	EmptyHint      = "Lege unten einen Gegenstand an, um loszulegen."
	NewListPrompt  = "Wie soll die neue Liste heißen?"
	RenamePrompt   = "Wie soll die Liste heißen?"
	ItemNameLabel  = "Gegenstand"
	ItemCountLabel = "Anzahl"
	ItemNameHint   = "z. B. Spülmaschinentabs"
	ManualLabel    = "Manuell"
)

// DeletePrompt is the confirmation asked before a list is deleted.
func DeletePrompt(name string) string {
	return `Bereich "` + name + `" wirklich löschen? Die enthaltenen Gegenstände gehen verloren.`
}
