// Package bookmarks keeps the user's shortlist of firm ids and mirrors it to a key-value store.
package bookmarks

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/umputun/vcaggregate/pkg/domain"
)

// DefaultKey is the storage key bookmarks are kept under
const DefaultKey = "vc-aggregate-bookmarks"

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is a key-value storage for the persisted bookmark list
type Store interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Manager owns the bookmark set. Every toggle is flushed to the store before it returns,
// mutation and flush happen under one lock so concurrent toggles persist in order.
type Manager struct {
	store Store
	key   string

	mu  sync.Mutex
	ids domain.StringSet
}

// NewManager makes a manager with the set loaded from store. An empty key means DefaultKey.
func NewManager(ctx context.Context, store Store, key string) *Manager {
	if key == "" {
		key = DefaultKey
	}
	ids := Load(ctx, store, key)
	log.Printf("[DEBUG] loaded %d bookmarks from %q", len(ids), key)
	return &Manager{store: store, key: key, ids: ids}
}

// Toggle adds id if absent or removes it if present, then persists the set.
// Returns true if id is bookmarked after the call.
func (m *Manager) Toggle(ctx context.Context, id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	bookmarked := !m.ids.Has(id)
	if bookmarked {
		m.ids.Add(id)
	} else {
		m.ids.Remove(id)
	}
	Persist(ctx, m.store, m.key, m.ids)
	return bookmarked
}

// IsBookmarked reports whether id is in the set
func (m *Manager) IsBookmarked(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids.Has(id)
}

// IDs returns bookmarked ids sorted
func (m *Manager) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids.Sorted()
}

// Set returns a copy of the bookmark set
func (m *Manager) Set() domain.StringSet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ids.Clone()
}

// Load reads the persisted JSON array of ids. Any failure, including a missing key,
// results in an empty set; nothing is reported to the caller.
func Load(ctx context.Context, store Store, key string) domain.StringSet {
	raw, err := store.GetSetting(ctx, key)
	if err != nil {
		log.Printf("[WARN] can't read bookmarks %q, starting empty: %v", key, err)
		return domain.NewStringSet()
	}
	if raw == "" {
		return domain.NewStringSet()
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		log.Printf("[WARN] can't parse bookmarks %q, starting empty: %v", key, err)
		return domain.NewStringSet()
	}
	return domain.NewStringSet(ids...)
}

// Persist writes the set as a JSON array of sorted ids. Write failures are logged and dropped,
// the in-memory set stays authoritative for the session.
func Persist(ctx context.Context, store Store, key string, ids domain.StringSet) {
	data, err := json.Marshal(ids.Sorted())
	if err != nil {
		log.Printf("[WARN] can't encode bookmarks: %v", err)
		return
	}
	if err := store.SetSetting(ctx, key, string(data)); err != nil {
		log.Printf("[WARN] can't save bookmarks %q: %v", key, err)
	}
}
