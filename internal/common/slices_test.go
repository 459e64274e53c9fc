package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"r", "w"}, Dedupe([]string{"r", "w", "r"}))
	assert.Equal(t, []string{"m"}, Dedupe([]string{"m", "m", "m"}))
	assert.Empty(t, Dedupe([]string{}))
	assert.Nil(t, Dedupe[[]string](nil))
}

func TestDedupe_DoesNotAliasInput(t *testing.T) {
	in := []int{1, 2, 1}
	out := Dedupe(in)
	out[0] = 9

	assert.Equal(t, []int{1, 2, 1}, in)
}

func TestFirst(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string{})
	assert.False(t, ok)
}

func TestIsSingle(t *testing.T) {
	assert.True(t, IsSingle([]int{1}))
	assert.False(t, IsSingle([]int{1, 2}))
	assert.True(t, IsEmpty([]int{}))
}
