// Package inventory holds the in-memory state of the tracker: the ordered
// lists and the currently active one.
package inventory

import (
	"strings"

	"github.com/Makepad-fr/inventar/internal/logging"
	"github.com/Makepad-fr/inventar/internal/model"
)

// Persister receives the full collection after every mutation.
type Persister interface {
	Save(lists model.Collection)
}

type nopPersister struct{}

func (nopPersister) Save(model.Collection) {}

// Inventory is the single source of truth for a session.
// Operations never fail: invalid input is normalized or ignored.
// It is not safe for concurrent use.
type Inventory struct {
	lists    model.Collection
	activeID string

	ids       IDGenerator
	persister Persister
	logger    *logging.Logger
}

// Option configures an Inventory.
type Option func(*Inventory)

func WithIDGenerator(g IDGenerator) Option { return func(i *Inventory) { i.ids = g } }

func WithPersister(p Persister) Option { return func(i *Inventory) { i.persister = p } }

func WithLogger(l *logging.Logger) Option { return func(i *Inventory) { i.logger = l } }

// New builds an inventory over lists, typically the result of Persistence.Load.
// Nothing is saved until the first mutation.
func New(lists model.Collection, opts ...Option) *Inventory {
	inv := &Inventory{
		lists:     model.Clone(lists),
		ids:       UUIDGenerator{},
		persister: nopPersister{},
	}
	if inv.lists == nil {
		inv.lists = model.Collection{}
	}
	for _, opt := range opts {
		opt(inv)
	}
	if inv.logger == nil {
		inv.logger = logging.Default()
	}
	inv.logger = inv.logger.WithComponent("inventory")
	return inv
}

// Lists returns a snapshot of every list. Callers may modify it freely.
func (inv *Inventory) Lists() model.Collection {
	return model.Clone(inv.lists)
}

// List returns a copy of the list with the given id.
func (inv *Inventory) List(id string) (model.List, bool) {
	i := inv.lists.Find(id)
	if i < 0 {
		return model.List{}, false
	}
	return model.CloneList(inv.lists[i]), true
}

// ActiveID returns the selected list id, which may no longer exist.
func (inv *Inventory) ActiveID() string { return inv.activeID }

// Active resolves the active id against the current lists.
// A dangling or empty id means no active list.
func (inv *Inventory) Active() (model.List, bool) {
	if inv.activeID == "" {
		return model.List{}, false
	}
	return inv.List(inv.activeID)
}

// Activate selects a list for the detail view. Unknown ids are ignored.
func (inv *Inventory) Activate(id string) {
	if inv.lists.Find(id) < 0 {
		return
	}
	inv.activeID = id
}

// Deactivate returns to the overview.
func (inv *Inventory) Deactivate() { inv.activeID = "" }

// CreateList appends a new empty list and makes it active.
// A name that is blank after trimming creates nothing.
func (inv *Inventory) CreateList(name string) (model.List, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.List{}, false
	}
	l := model.List{ID: inv.ids.NewID(), Name: name, Items: []model.Item{}}

	next := make(model.Collection, 0, len(inv.lists)+1)
	next = append(next, inv.lists...)
	next = append(next, l)
	inv.commit("createList", next, "list", l.ID)
	inv.activeID = l.ID
	return model.CloneList(l), true
}

// RenameList replaces a list's name, keeping its id, items and position.
func (inv *Inventory) RenameList(id, name string) {
	name = strings.TrimSpace(name)
	i := inv.lists.Find(id)
	if i < 0 || name == "" {
		return
	}
	next := inv.replace(i, func(l *model.List) { l.Name = name })
	inv.commit("renameList", next, "list", id)
}

// DeleteList removes a list and its items. Deleting the active list clears
// the selection.
func (inv *Inventory) DeleteList(id string) {
	i := inv.lists.Find(id)
	if i < 0 {
		return
	}
	next := make(model.Collection, 0, len(inv.lists)-1)
	next = append(next, inv.lists[:i]...)
	next = append(next, inv.lists[i+1:]...)
	inv.commit("deleteList", next, "list", id)
	if inv.activeID == id {
		inv.activeID = ""
	}
}

// AddItem appends a new item. The count is clamped to at least 1.
func (inv *Inventory) AddItem(listID, name string, count float64) (model.Item, bool) {
	name = strings.TrimSpace(name)
	i := inv.lists.Find(listID)
	if i < 0 || name == "" {
		return model.Item{}, false
	}
	it := model.Item{ID: inv.ids.NewID(), Name: name, Count: model.NormalizeNewCount(count)}
	next := inv.replace(i, func(l *model.List) { l.Items = append(l.Items, it) })
	inv.commit("addItem", next, "list", listID, "item", it.ID, "count", it.Count)
	return it, true
}

// SetItemCount assigns a clamped count. With removeIfZero a resulting zero
// drops the item; otherwise it stays at zero.
func (inv *Inventory) SetItemCount(listID, itemID string, raw float64, removeIfZero bool) {
	i := inv.lists.Find(listID)
	if i < 0 {
		return
	}
	j := inv.lists[i].FindItem(itemID)
	if j < 0 {
		return
	}
	count := model.NormalizeCount(raw)
	next := inv.replace(i, func(l *model.List) {
		if removeIfZero && count == 0 {
			l.Items = append(l.Items[:j], l.Items[j+1:]...)
			return
		}
		l.Items[j].Count = count
	})
	inv.commit("setItemCount", next, "list", listID, "item", itemID, "count", count, "remove_if_zero", removeIfZero)
}

// DecrementItem takes one piece away; an item that reaches zero is removed.
func (inv *Inventory) DecrementItem(listID, itemID string) {
	i := inv.lists.Find(listID)
	if i < 0 {
		return
	}
	j := inv.lists[i].FindItem(itemID)
	if j < 0 {
		return
	}
	current := inv.lists[i].Items[j].Count
	inv.SetItemCount(listID, itemID, float64(max(0, current-1)), true)
}

// replace copies the list at i, applies fn to the copy and returns a new
// collection sharing every other list.
func (inv *Inventory) replace(i int, fn func(*model.List)) model.Collection {
	next := make(model.Collection, len(inv.lists))
	copy(next, inv.lists)
	l := model.CloneList(inv.lists[i])
	fn(&l)
	next[i] = l
	return next
}

func (inv *Inventory) commit(op string, next model.Collection, args ...any) {
	inv.lists = next
	inv.logger.Mutation(op, args...)
	inv.persister.Save(model.Clone(next))
}
