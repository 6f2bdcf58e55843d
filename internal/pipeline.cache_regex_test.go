package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileCached_HitOnSecondCall(t *testing.T) {
	_, hit1, err := compileCached(`foo\d+`, false, false, false)
	require.NoError(t, err)
	assert.False(t, hit1)

	_, hit2, err := compileCached(`foo\d+`, false, false, false)
	require.NoError(t, err)
	assert.True(t, hit2)
}

func TestCompileCached_FlagsParticipateInKey(t *testing.T) {
	re, _, err := compileCached("abc", false, false, false)
	require.NoError(t, err)
	assert.False(t, re.MatchString("ABC"))

	reCI, hit, err := compileCached("abc", true, false, false)
	require.NoError(t, err)
	assert.False(t, hit, "case-insensitive variant is a distinct cache key")
	assert.True(t, reCI.MatchString("ABC"))
}

func TestCompileCached_InvalidPatternErrors(t *testing.T) {
	_, _, err := compileCached("(unclosed", false, false, false)
	assert.Error(t, err)
}
