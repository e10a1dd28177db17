package view

import (
	"strings"

	"github.com/Makepad-fr/inventar/internal/model"
)

// DefaultCount is the initial content of the count field.
const DefaultCount = "1"

// Form holds the transient add-item buffers. It is never persisted and is
// reset whenever the active list changes.
type Form struct {
	Name  string
	Count string
}

func NewForm() Form { return Form{Count: DefaultCount} }

// Ready reports whether both required fields are filled in.
func (f Form) Ready() bool {
	return strings.TrimSpace(f.Name) != "" && strings.TrimSpace(f.Count) != ""
}

// ParsedCount reads the count field the way the add operation expects it.
func (f Form) ParsedCount() float64 { return model.ParseCount(f.Count) }
