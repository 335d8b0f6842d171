// Package pathcache memoizes values computed from path strings.
//
// The resolver parses every distinct path expression exactly once per cache
// and reuses the parsed form on every later call. Keys are the raw path
// strings as supplied by callers, without trimming or normalization.
package pathcache

import (
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Stats reports cache activity counters.
type Stats struct {
	// Parses counts invocations of the compute function.
	Parses uint64
	// Hits counts lookups answered from the cache.
	Hits uint64
	// Entries counts values currently cached.
	Entries int
}

// Cache memoizes values computed from path strings. Implementations are safe
// for concurrent use. Racing first lookups of the same key may compute the
// value redundantly, but every caller observes one complete value.
type Cache[V any] interface {
	GetOrCompute(key string, compute func(string) V) V
	Stats() Stats
}

// New returns a cache that grows without bound and never evicts. Path
// universes are expected to be small and static (authored in markup or
// configuration, not user-controlled).
func New[V any]() Cache[V] {
	return &unbounded[V]{}
}

// NewBounded returns a cache that keeps at most size entries, evicting the
// least recently used. A non-positive size falls back to an unbounded cache.
func NewBounded[V any](size int) Cache[V] {
	if size <= 0 {
		return New[V]()
	}

	entries, err := lru.New[string, V](size)
	if err != nil {
		return New[V]()
	}

	return &bounded[V]{entries: entries}
}

type unbounded[V any] struct {
	values  sync.Map
	parses  atomic.Uint64
	hits    atomic.Uint64
	entries atomic.Int64
}

func (c *unbounded[V]) GetOrCompute(key string, compute func(string) V) V {
	if v, ok := c.values.Load(key); ok {
		c.hits.Add(1)
		return v.(V)
	}

	v := compute(key)
	c.parses.Add(1)

	// First writer wins; a racing caller returns the stored value so every
	// caller shares one sequence per key.
	actual, loaded := c.values.LoadOrStore(key, v)
	if !loaded {
		c.entries.Add(1)
	}

	return actual.(V)
}

func (c *unbounded[V]) Stats() Stats {
	return Stats{
		Parses:  c.parses.Load(),
		Hits:    c.hits.Load(),
		Entries: int(c.entries.Load()),
	}
}

type bounded[V any] struct {
	entries *lru.Cache[string, V]
	parses  atomic.Uint64
	hits    atomic.Uint64
}

func (c *bounded[V]) GetOrCompute(key string, compute func(string) V) V {
	if v, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return v
	}

	v := compute(key)
	c.parses.Add(1)
	c.entries.Add(key, v)

	return v
}

func (c *bounded[V]) Stats() Stats {
	return Stats{
		Parses:  c.parses.Load(),
		Hits:    c.hits.Load(),
		Entries: c.entries.Len(),
	}
}
