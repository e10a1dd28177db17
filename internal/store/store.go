// Package store persists the inventory as one document in a key/value backend.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Makepad-fr/inventar/internal/logging"
	"github.com/Makepad-fr/inventar/internal/model"
	"github.com/Makepad-fr/inventar/internal/store/jsonstore"
	"github.com/Makepad-fr/inventar/internal/store/memstore"
	"github.com/Makepad-fr/inventar/internal/store/sqlitestore"
)

// StorageKey is the single key the whole inventory lives under.
const StorageKey = "inventory_lists"

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend is a durable key/value store holding opaque documents.
type Backend interface {
	// Get returns the value under key; ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	Close() error
}

// Config selects and locates a backend.
type Config struct {
	Kind string // json, sqlite or memory
	Dir  string
}

// Open creates the backend described by cfg.
func Open(cfg Config) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case "json", "":
		return jsonstore.New(cfg.Dir), nil
	case "sqlite":
		b, err := sqlitestore.Open(filepath.Join(cfg.Dir, sqlitestore.DefaultFileName))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return b, nil
	case "memory":
		return memstore.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Kind)
}

// Persistence loads and saves the inventory document.
// It never returns errors: failures are logged and masked.
type Persistence struct {
	backend Backend
	logger  *logging.Logger
}

// NewPersistence wraps a backend. A nil logger falls back to logging.Default.
func NewPersistence(b Backend, logger *logging.Logger) *Persistence {
	if logger == nil {
		logger = logging.Default()
	}
	return &Persistence{backend: b, logger: logger.WithComponent("store")}
}

// Load returns the stored collection, or the starter data when the document
// is absent, unreadable or not a JSON array.
func (p *Persistence) Load() model.Collection {
	raw, ok, err := p.backend.Get(StorageKey)
	if err != nil {
		p.logger.Storage("inventory could not be loaded from storage", "key", StorageKey, "error", err)
		return model.Starter()
	}
	if !ok || len(bytes.TrimSpace(raw)) == 0 {
		return model.Starter()
	}
	lists, err := Decode(raw)
	if err != nil {
		p.logger.Storage("inventory could not be loaded from storage", "key", StorageKey, "error", err)
		return model.Starter()
	}
	return lists
}

// Save writes the full collection. Write failures are logged and dropped;
// the caller's in-memory state stays authoritative.
func (p *Persistence) Save(lists model.Collection) {
	b, err := Encode(lists)
	if err != nil {
		p.logger.Storage("inventory could not be saved", "key", StorageKey, "error", err)
		return
	}
	if err := p.backend.Put(StorageKey, b); err != nil {
		p.logger.Storage("inventory could not be saved", "key", StorageKey, "error", err)
	}
}

// Close releases the backend.
func (p *Persistence) Close() error {
	return p.backend.Close()
}

// errNotArray marks a document that parsed but is not a list of lists.
var errNotArray = errors.New("stored inventory is not an array")

// Encode serializes a collection as an indented JSON array. A nil collection
// encodes as [].
func Encode(lists model.Collection) ([]byte, error) {
	if lists == nil {
		lists = model.Collection{}
	}
	b, err := json.MarshalIndent(lists, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// storedList and storedItem mirror the document shape. Counts are read as
// numbers of any kind and normalized afterwards.
type storedList struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Items []*storedItem `json:"items"`
}

type storedItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Count float64 `json:"count"`
}

// Decode parses a stored document. Anything but a JSON array of lists fails
// as a whole; there is no partial recovery. Counts are clamped to valid
// values and null entries are skipped.
func Decode(raw []byte) (model.Collection, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errNotArray
	}
	var stored []*storedList
	if err := json.Unmarshal(trimmed, &stored); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	lists := make(model.Collection, 0, len(stored))
	for _, sl := range stored {
		if sl == nil {
			continue
		}
		l := model.List{ID: sl.ID, Name: sl.Name, Items: make([]model.Item, 0, len(sl.Items))}
		for _, si := range sl.Items {
			if si == nil {
				continue
			}
			l.Items = append(l.Items, model.Item{
				ID:    si.ID,
				Name:  si.Name,
				Count: model.NormalizeCount(si.Count),
			})
		}
		lists = append(lists, l)
	}
	return lists, nil
}
