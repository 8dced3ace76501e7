package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-collection-utils/collections"
)

func TestIsEmpty(t *testing.T) {
	t.Run("nil slice is empty", func(t *testing.T) {
		assert.True(t, collections.IsEmpty[[]int](nil))
		assert.False(t, collections.IsNotEmpty[[]int](nil))
	})

	t.Run("zero-length slice is empty", func(t *testing.T) {
		assert.True(t, collections.IsEmpty([]string{}))
	})

	t.Run("non-empty slice", func(t *testing.T) {
		assert.False(t, collections.IsEmpty([]int{0}))
		assert.True(t, collections.IsNotEmpty([]int{0}))
	})
}

func TestIsEmptyMap(t *testing.T) {
	t.Run("nil map is empty", func(t *testing.T) {
		var m map[string]int
		assert.True(t, collections.IsEmptyMap(m))
		assert.False(t, collections.IsNotEmptyMap(m))
	})

	t.Run("non-empty map", func(t *testing.T) {
		m := map[string]int{"a": 1}
		assert.False(t, collections.IsEmptyMap(m))
		assert.True(t, collections.IsNotEmptyMap(m))
	})
}

func TestIsEmptyArray(t *testing.T) {
	var nilSlice []int
	var nilArrayPtr *[2]int

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"nil slice", nilSlice, true},
		{"nil array pointer", nilArrayPtr, true},
		{"zero-length array", [0]int{}, true},
		{"array", [3]int{1, 2, 3}, false},
		{"byte slice", []byte("x"), false},
		{"array pointer", &[1]string{"a"}, false},
		{"not an array", 42, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, collections.IsEmptyArray(tc.value))
			assert.Equal(t, !tc.want, collections.IsNotEmptyArray(tc.value))
		})
	}
}
