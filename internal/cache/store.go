// Package cache provides the server-side list cache: a key-value store keyed
// by query identity, with invalidation as a first-class operation. Handlers
// read serialized list responses through it; mutations and realtime change
// events invalidate, so the next read re-fetches from the database.
package cache

import (
	"context"
	"time"
)

// DefaultTTL bounds staleness for entries that never see an invalidation,
// e.g. when a table is changed by a process without the notify triggers.
const DefaultTTL = 5 * time.Minute

// Store is the injectable cache dependency shared by the list handlers.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Invalidate(ctx context.Context, keys ...string)
}

// Cached list views per table. Every mutation and change event for a table
// invalidates all of its views.
var tableViews = map[string][]string{
	"categories":  {"public", "admin"},
	"panchayaths": {"admin", "grouped"},
}

// ListKey names the cached serialized response for one list view of a table.
func ListKey(table, view string) string {
	return "list:" + table + ":" + view
}

// AllKeys returns every registered list cache key.
func AllKeys() []string {
	var keys []string
	for table := range tableViews {
		keys = append(keys, TableKeys(table)...)
	}
	return keys
}

// TableKeys returns every cache key that depends on rows of the given table.
func TableKeys(table string) []string {
	views, ok := tableViews[table]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(views))
	for _, v := range views {
		keys = append(keys, ListKey(table, v))
	}
	return keys
}
