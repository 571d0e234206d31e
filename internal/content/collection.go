package content

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

// schemaVersion is the version written into every persisted document
// envelope. Bump it together with a Migrate func when an entity's stored
// shape changes.
const schemaVersion = 2

// envelope wraps a stored collection so hydration can tell old shapes apart
// without guessing from the items themselves.
type envelope struct {
	Version int             `json:"version"`
	Items   json.RawMessage `json:"items"`
}

// Entity is anything a Collection can hold.
type Entity interface {
	EntityID() string
}

// Config describes one repository.
type Config[T Entity] struct {
	Binding   Binding
	Key       string
	LegacyKey string                              // pre-envelope key, read once for migration
	Defaults  func() []T                          // seed used when nothing valid is stored
	Migrate   func(raw json.RawMessage) ([]T, error) // legacy document -> current shape
	SetID     func(*T, string)
}

// Collection is an ordered, id-keyed set of entities persisted as a single
// JSON document. Hydration never fails: anything unreadable falls back to
// the configured defaults. Writes go through the binding synchronously; a
// failed write keeps the in-memory state and returns the error for the
// caller to surface.
type Collection[T Entity] struct {
	mu     sync.Mutex
	cfg    Config[T]
	items  []T
	loaded bool
	seeded bool // hydrated from defaults rather than storage
}

func NewCollection[T Entity](cfg Config[T]) *Collection[T] {
	return &Collection[T]{cfg: cfg}
}

// load hydrates the collection on first use. Callers hold c.mu.
func (c *Collection[T]) load() {
	if c.loaded {
		return
	}
	c.loaded = true

	raw, err := c.cfg.Binding.Read(c.cfg.Key)
	if err == nil {
		if items, ok := c.decode(raw); ok {
			c.items = items
			return
		}
		slog.Warn("Stored document unreadable, using defaults", "key", c.cfg.Key)
	} else if err != ErrNotFound {
		slog.Warn("Reading document failed, using defaults", "key", c.cfg.Key, "error", err)
	}

	// Nothing usable under the current key; try migrating the legacy one.
	if c.cfg.LegacyKey != "" && c.cfg.Migrate != nil {
		if legacy, err := c.cfg.Binding.Read(c.cfg.LegacyKey); err == nil {
			if items, err := c.cfg.Migrate(legacy); err == nil {
				slog.Info("Migrated legacy document", "from", c.cfg.LegacyKey, "to", c.cfg.Key)
				c.items = items
				return
			} else {
				slog.Warn("Legacy document migration failed, using defaults", "key", c.cfg.LegacyKey, "error", err)
			}
		}
	}

	c.items = c.cfg.Defaults()
	c.seeded = true
}

// decode accepts either the current envelope or a bare array, which is how
// pre-envelope deployments stored the v2 media-list shape.
func (c *Collection[T]) decode(raw []byte) ([]T, bool) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Version >= 1 && env.Items != nil {
		var items []T
		if err := json.Unmarshal(env.Items, &items); err == nil {
			return items, true
		}
		return nil, false
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil && items != nil {
		return items, true
	}
	return nil, false
}

func (c *Collection[T]) persist() error {
	items, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.cfg.Key, err)
	}
	doc, err := json.Marshal(envelope{Version: schemaVersion, Items: items})
	if err != nil {
		return fmt.Errorf("encoding %s envelope: %w", c.cfg.Key, err)
	}
	if err := c.cfg.Binding.Write(c.cfg.Key, doc); err != nil {
		return fmt.Errorf("writing %s: %w", c.cfg.Key, err)
	}
	c.seeded = false
	return nil
}

// List returns the collection in stored order.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the entity with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Save replaces an existing entity in place (position preserved) or assigns
// a fresh id and appends. The returned entity carries the assigned id. When
// persistence fails the in-memory state keeps the change and the error is
// returned for the caller to report.
func (c *Collection[T]) Save(entity T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	replaced := false
	if id := entity.EntityID(); id != "" {
		for i, item := range c.items {
			if item.EntityID() == id {
				c.items[i] = entity
				replaced = true
				break
			}
		}
	}
	if !replaced {
		c.cfg.SetID(&entity, NewID())
		c.items = append(c.items, entity)
	}
	return entity, c.persist()
}

// Delete removes the entity with the given id. Unknown ids are a no-op.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	for i, item := range c.items {
		if item.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist()
		}
	}
	return nil
}

// EnsureSeeded persists the defaults when nothing was stored yet, so the
// public pages survive a wiped database without waiting for an admin save.
func (c *Collection[T]) EnsureSeeded() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	if !c.seeded {
		return nil
	}
	return c.persist()
}

// NewID builds an entity id from the current time plus a random suffix.
// Not globally unique, but collisions are negligible for one operator.
func NewID() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + hex.EncodeToString(suffix)
}
