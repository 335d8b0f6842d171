package objpath

import (
	"strings"

	"github.com/go-objpath/objpath/internal/pathcache"
	"github.com/go-objpath/objpath/internal/token"
)

// Resolver resolves path expressions against object graphs. Every distinct
// path string it sees is tokenized once and cached; resolution itself is
// read-only and safe for concurrent use.
type Resolver struct {
	cache pathcache.Cache[[]token.Token]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCacheSize bounds the path cache to at most size entries, evicting
// the least recently used. Useful when paths are generated dynamically
// instead of authored. A non-positive size keeps the unbounded default.
func WithCacheSize(size int) Option {
	return func(r *Resolver) {
		r.cache = pathcache.NewBounded[[]token.Token](size)
	}
}

// New returns a Resolver with its own path cache.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		cache: pathcache.New[[]token.Token](),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Lookup resolves path against root. ok reports whether the path matched
// the graph's shape: a nil root, a blank path, a member the current value
// does not expose, a non-sequence under an indexer, and an out-of-range
// index all report false. ok with a nil value means the path was valid but
// reached nil part-way through.
func (r *Resolver) Lookup(root any, path string) (any, bool) {
	if isNil(root) || strings.TrimSpace(path) == "" {
		return nil, false
	}

	return walk(root, r.cache.GetOrCompute(path, token.Tokenize))
}

// Resolve is Lookup with the distinction collapsed: both "no such path"
// and "path reached nil" return nil.
func (r *Resolver) Resolve(root any, path string) any {
	v, _ := r.Lookup(root, path)
	return v
}

// CacheStats reports path cache activity.
type CacheStats struct {
	// Parses counts tokenizer runs, one per distinct path in the steady
	// state; racing first lookups of one path may add a few more.
	Parses uint64
	// Hits counts lookups answered from the cache.
	Hits uint64
	// Entries counts paths currently cached.
	Entries int
}

// CacheStats reports the resolver's path cache activity. It is a
// diagnostics surface: tests assert on it, and long-running processes can
// watch Entries when feeding generated paths through a bounded cache.
func (r *Resolver) CacheStats() CacheStats {
	return CacheStats(r.cache.Stats())
}
