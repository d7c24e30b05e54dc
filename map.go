package setonce

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sjtug/setonce/internal/shard"
	"go.uber.org/zap"
)

const MaxShards = 1 << 16

// Config configures a Map.
type Config struct {
	// Shards is the number of independently locked partitions of the key space.
	// Defaults to 16 per GOMAXPROCS.
	Shards int `json:"shards,omitempty"`
}

func (c *Config) Provision() {
	if c.Shards == 0 {
		c.Shards = shard.DefaultCount()
	}
}

func ValidateConfig(cfg Config) error {
	if cfg.Shards < 1 || cfg.Shards > MaxShards {
		return fmt.Errorf("shards must be between 1 and %d, got %d", MaxShards, cfg.Shards)
	}
	return nil
}

type mapShard[K comparable, V any] struct {
	mu    sync.Mutex
	store map[K]*Cell[V]
}

// Map is a set of write-once slots addressed by key. Each key can be bound
// exactly once; there is no delete.
type Map[K comparable, V any] struct {
	shards []*mapShard[K, V]
	hash   func(K) uint32
	logger *zap.Logger
}

// NewMap creates a Map that spreads keys over shards using hash.
// Zero fields in cfg are filled with defaults. User can pass in an optional
// logger; rejected writes are logged at debug level.
func NewMap[K comparable, V any](hash func(K) uint32, cfg Config, logger *zap.Logger) (*Map[K, V], error) {
	if hash == nil {
		return nil, errors.New("hash function must not be nil")
	}
	cfg.Provision()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	shards := make([]*mapShard[K, V], cfg.Shards)
	for i := range shards {
		shards[i] = &mapShard[K, V]{store: make(map[K]*Cell[V])}
	}
	logger.Info("setonce map initialized", zap.Int("shards", cfg.Shards))

	return &Map[K, V]{shards: shards, hash: hash, logger: logger}, nil
}

func (m *Map[K, V]) shardFor(key K) *mapShard[K, V] {
	return m.shards[shard.Index(m.hash(key), len(m.shards))]
}

// Cell returns the cell backing key, creating an empty one if key has never
// been seen. The same cell is returned for a given key for the lifetime of m.
func (m *Map[K, V]) Cell(key K) *Cell[V] {
	s := m.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.store[key]
	if !ok {
		c = New[V]()
		s.store[key] = c
	}
	return c
}

// TrySet binds key to value. If key is already bound, the returned error
// wraps ErrAlreadySet and the existing binding is kept.
func (m *Map[K, V]) TrySet(key K, value V) error {
	if err := m.Cell(key).TrySet(value); err != nil {
		m.logger.Debug("key already set", zap.Any("key", key))
		return fmt.Errorf("key %v: %w", key, err)
	}
	return nil
}

// Get returns the value bound to key and whether there is one.
func (m *Map[K, V]) Get(key K) (V, bool) {
	s := m.shardFor(key)

	s.mu.Lock()
	c, ok := s.store[key]
	s.mu.Unlock()

	if !ok {
		var zero V
		return zero, false
	}
	return c.Load()
}

// Len returns the number of bound keys.
func (m *Map[K, V]) Len() int {
	n := 0
	for _, s := range m.shards {
		s.mu.Lock()
		for _, c := range s.store {
			if c.IsSet() {
				n++
			}
		}
		s.mu.Unlock()
	}
	return n
}

// Range calls f for every bound key until f returns false. Keys bound while
// Range is running may or may not be visited.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	for _, s := range m.shards {
		for _, e := range s.snapshot() {
			if !f(e.key, e.value) {
				return
			}
		}
	}
}

type binding[K comparable, V any] struct {
	key   K
	value V
}

func (s *mapShard[K, V]) snapshot() []binding[K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]binding[K, V], 0, len(s.store))
	for key, c := range s.store {
		if v, ok := c.Load(); ok {
			out = append(out, binding[K, V]{key: key, value: v})
		}
	}
	return out
}
