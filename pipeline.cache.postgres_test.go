package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCacheKeyHash_StableAndSeparatorSensitive(t *testing.T) {
	a := splitCacheKeyHash("a,b,c", ",")
	b := splitCacheKeyHash("a,b,c", ",")
	assert.Equal(t, a, b)

	c := splitCacheKeyHash("a,b,c", "|")
	assert.NotEqual(t, a, c)
}

func TestNewPostgresSplitCacheStore_NilDBErrors(t *testing.T) {
	_, err := NewPostgresSplitCacheStore(nil)
	require.Error(t, err)
}
