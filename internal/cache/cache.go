// Package cache stores computed portfolio aggregates between writes.
package cache

import "context"

// Keys used by the insight service.
const (
	KeyInsights       = "insights"
	KeyPortfolioValue = "portfolio_value"
)

// Keys lists every key Invalidate must clear.
var Keys = []string{KeyInsights, KeyPortfolioValue}

// Store is a read-through cache for aggregate results.
//
// Every Invalidate starts a new generation. A reader takes the generation
// before it queries and hands it to Set, so a value computed before a write
// and stored after it is never served.
type Store interface {
	// Generation returns the current invalidation generation.
	Generation(ctx context.Context) (int64, error)
	// Get decodes the cached value for key into dest and reports whether it
	// was found. Values stored under an older generation are misses.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set stores value under key for generation gen.
	Set(ctx context.Context, key string, gen int64, value interface{}) error
	// Invalidate drops every cached aggregate and advances the generation.
	Invalidate(ctx context.Context) error
}

type noopStore struct{}

// NewNoopStore returns a Store that never holds anything.
func NewNoopStore() Store { return noopStore{} }

func (noopStore) Generation(context.Context) (int64, error)              { return 0, nil }
func (noopStore) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noopStore) Set(context.Context, string, int64, interface{}) error  { return nil }
func (noopStore) Invalidate(context.Context) error                       { return nil }
