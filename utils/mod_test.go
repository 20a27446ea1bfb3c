package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	t.Run("returns the first match", func(t *testing.T) {
		require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	})

	t.Run("returns -1 when absent", func(t *testing.T) {
		require.Equal(t, -1, FindIndex([]int{1, 2, 3}, 4))
		require.Equal(t, -1, FindIndex[int](nil, 4))
	})
}

func TestCount(t *testing.T) {
	require.Equal(t, 2, Count([]string{"a", "b", "a"}, "a"))
	require.Equal(t, 0, Count([]string{"a"}, "z"))
}

func TestAppendUnique(t *testing.T) {
	t.Run("appends a new item", func(t *testing.T) {
		got, grew := AppendUnique([]int{1}, 2)
		require.True(t, grew)
		require.Equal(t, []int{1, 2}, got)
	})

	t.Run("keeps the slice when the item is present", func(t *testing.T) {
		got, grew := AppendUnique([]int{1, 2}, 2)
		require.False(t, grew)
		require.Equal(t, []int{1, 2}, got)
	})
}

func TestClone(t *testing.T) {
	original := []int{1, 2}
	cloned := Clone(original)
	cloned[0] = 9

	require.Equal(t, []int{1, 2}, original, "Clone should not share the backing array")
	require.Nil(t, Clone[int](nil))
}
