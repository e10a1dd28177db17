package model

// Item is a named, countable thing kept in a List.
// Identity survives count edits; only the count ever changes.
type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// List is a named area ("Bereich") holding items in display order.
type List struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Collection is the whole persisted document: every list, in order.
type Collection []List

// Find returns the index of the list with the given id, or -1.
func (c Collection) Find(id string) int {
	for i, l := range c {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// FindItem returns the index of the item with the given id, or -1.
func (l List) FindItem(id string) int {
	for i, it := range l.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// TotalPieces sums the counts of every item in the list.
func TotalPieces(l List) int {
	sum := 0
	for _, it := range l.Items {
		sum += it.Count
	}
	return sum
}

// Clone deep-copies the collection so no item slice is shared.
func Clone(c Collection) Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, l := range c {
		out[i] = CloneList(l)
	}
	return out
}

// CloneList copies a single list, items included. A nil item slice becomes empty.
func CloneList(l List) List {
	items := make([]Item, len(l.Items))
	copy(items, l.Items)
	l.Items = items
	return l
}
