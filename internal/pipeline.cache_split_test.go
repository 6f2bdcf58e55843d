package internal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCachedSplit_HitOnSecondCall(t *testing.T) {
	parts1, hit1 := cachedSplit(context.Background(), "a,b,cache-split-unique-1", ",")
	assert.False(t, hit1)
	assert.Equal(t, []string{"a", "b", "cache-split-unique-1"}, parts1)

	parts2, hit2 := cachedSplit(context.Background(), "a,b,cache-split-unique-1", ",")
	assert.True(t, hit2)
	assert.Equal(t, parts1, parts2)
}

type fakeSplitStore struct {
	gets map[splitCacheKey][]string
	puts int
}

func (f *fakeSplitStore) Get(ctx context.Context, haystack, sep string) ([]string, bool, error) {
	v, ok := f.gets[splitCacheKey{haystack: haystack, sep: sep}]
	return v, ok, nil
}

func (f *fakeSplitStore) Put(ctx context.Context, haystack, sep string, parts []string) error {
	f.puts++
	return nil
}

func TestCachedSplit_PersistentStoreWarmStart(t *testing.T) {
	store := &fakeSplitStore{gets: map[splitCacheKey][]string{
		{haystack: "x|y|cache-split-unique-2", sep: "|"}: {"x", "y", "cache-split-unique-2"},
	}}
	SetSplitCacheStore(store)
	defer SetSplitCacheStore(nil)

	parts, hit := cachedSplit(context.Background(), "x|y|cache-split-unique-2", "|")
	assert.True(t, hit)
	assert.Equal(t, []string{"x", "y", "cache-split-unique-2"}, parts)
}

func TestCachedSplit_MissPopulatesStore(t *testing.T) {
	store := &fakeSplitStore{gets: map[splitCacheKey][]string{}}
	SetSplitCacheStore(store)
	defer SetSplitCacheStore(nil)

	_, hit := cachedSplit(context.Background(), "new,value,cache-split-unique-3", ",")
	assert.False(t, hit)
	assert.Equal(t, 1, store.puts)
}
