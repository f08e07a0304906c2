package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok := store.Get(ctx, ListKey("categories", "public"))
	assert.False(t, ok, "empty store should miss")

	store.Set(ctx, ListKey("categories", "public"), []byte(`[{"id":1}]`), time.Minute)
	got, ok := store.Get(ctx, ListKey("categories", "public"))
	require.True(t, ok)
	assert.Equal(t, []byte(`[{"id":1}]`), got)
}

func TestInvalidateTableClearsEveryView(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, key := range TableKeys("categories") {
		store.Set(ctx, key, []byte("stale"), time.Minute)
	}
	store.Set(ctx, ListKey("panchayaths", "grouped"), []byte("kept"), time.Minute)

	store.Invalidate(ctx, TableKeys("categories")...)

	for _, key := range TableKeys("categories") {
		_, ok := store.Get(ctx, key)
		assert.False(t, ok, "key %s should be gone", key)
	}
	_, ok := store.Get(ctx, ListKey("panchayaths", "grouped"))
	assert.True(t, ok, "other tables keep their entries")
}

func TestTableKeys(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"list:categories:public", "list:categories:admin"},
		TableKeys("categories"))
	assert.Empty(t, TableKeys("unknown_table"))
}
