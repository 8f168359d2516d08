// Package cache persists resolved toolchain paths across invocations.
//
// The store is a single JSON file in the shared temporary directory mapping
// "<ndk_root>:<host_tag>" keys to entries. It holds at most MaxEntries
// entries and entries expire after TTL. There is no file locking: parallel
// build steps may overwrite each other's writes, which at worst costs a
// recomputation on the next run.
package cache

import (
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"time"
)

const (
	// TTL is how long an entry stays valid after creation
	TTL = 24 * time.Hour

	// MaxEntries bounds the persisted store size
	MaxEntries = 10
)

// Config controls cache behaviour; built once at the entry boundary
type Config struct {
	// Enabled turns the cache off entirely when false
	Enabled bool

	// Path is the persisted store file
	Path string
}

// Cache is a bounded, expiring store of resolved toolchain paths
type Cache struct {
	cfg Config
	log *slog.Logger

	now func() time.Time
}

// New creates a cache over the configured store file
func New(cfg Config, log *slog.Logger) *Cache {
	return &Cache{
		cfg: cfg,
		log: log,
		now: time.Now,
	}
}

// Get returns the cached path for key if the entry is younger than TTL and
// the path still exists on disk. Stale entries are left in place; the next
// Put overwrites them.
func (c *Cache) Get(key string) (string, bool) {
	if !c.cfg.Enabled {
		return "", false
	}

	store, err := c.read()
	if err != nil {
		c.log.Warn("cache read failed", "file", c.cfg.Path, "error", err)
		return "", false
	}

	entry, ok := store[key]
	if !ok {
		return "", false
	}

	if c.now().Unix()-entry.Timestamp >= int64(TTL.Seconds()) {
		c.log.Debug("cache entry expired", "key", key)
		return "", false
	}

	if _, err := os.Stat(entry.Path); err != nil {
		c.log.Debug("cached path no longer exists", "path", entry.Path)
		return "", false
	}

	return entry.Path, true
}

// Put records a resolved path under key, evicting the oldest entries once
// the store exceeds MaxEntries. Failures are logged and swallowed; the
// cache is best-effort.
func (c *Cache) Put(key, path, ndkVersion, hostTag string) {
	if !c.cfg.Enabled {
		return
	}

	store, err := c.read()
	if err != nil {
		c.log.Warn("cache read failed, starting empty", "file", c.cfg.Path, "error", err)
		store = map[string]Entry{}
	}

	store[key] = Entry{
		Path:       path,
		Timestamp:  c.now().Unix(),
		NdkVersion: ndkVersion,
		HostTag:    hostTag,
	}

	if len(store) > MaxEntries {
		store = trim(store)
	}

	if err := c.write(store); err != nil {
		c.log.Warn("cache write failed", "file", c.cfg.Path, "error", err)
	}
}

// read loads the persisted store. A missing file is an empty store; a
// malformed one is an error for the caller to degrade on.
func (c *Cache) read() (map[string]Entry, error) {
	data, err := os.ReadFile(c.cfg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Entry{}, nil
		}

		return nil, err
	}

	store := map[string]Entry{}
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, err
	}

	return store, nil
}

// write replaces the persisted store in full
func (c *Cache) write(store map[string]Entry) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.cfg.Path, data, 0o644)
}

// trim keeps the MaxEntries newest entries by creation timestamp
func trim(store map[string]Entry) map[string]Entry {
	type keyed struct {
		key   string
		entry Entry
	}

	entries := make([]keyed, 0, len(store))
	for k, e := range store {
		entries = append(entries, keyed{key: k, entry: e})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].entry.Timestamp < entries[j].entry.Timestamp
	})

	trimmed := make(map[string]Entry, MaxEntries)
	for _, ke := range entries[len(entries)-MaxEntries:] {
		trimmed[ke.key] = ke.entry
	}

	return trimmed
}
