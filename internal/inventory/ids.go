package inventory

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator hands out unique opaque identifiers for lists and items.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator produces random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator produces prefix-1, prefix-2, ... and is meant for tests.
type SequenceGenerator struct {
	Prefix string
	n      int
}

func (g *SequenceGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.Prefix, g.n)
}
