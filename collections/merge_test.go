package collections_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection-utils/collections"
)

func TestMergeIntoMap(t *testing.T) {
	t.Run("copies pairs and keeps other keys", func(t *testing.T) {
		target := map[string]int{"keep": 1, "shared": 2}
		err := collections.MergeIntoMap(map[string]int{"shared": 20, "new": 3}, target)

		require.NoError(t, err)
		assert.Equal(t, map[string]int{"keep": 1, "shared": 20, "new": 3}, target)
	})

	t.Run("nil source is a no-op", func(t *testing.T) {
		target := map[string]int{"a": 1}
		err := collections.MergeIntoMap(nil, target)

		require.NoError(t, err)
		assert.Equal(t, map[string]int{"a": 1}, target)
	})

	t.Run("nil target is an illegal argument", func(t *testing.T) {
		err := collections.MergeIntoMap(map[string]int{"a": 1}, nil)

		require.ErrorIs(t, err, collections.ErrIllegalArgument)
	})
}

func TestProperties(t *testing.T) {
	defaults := collections.NewProperties(nil)
	defaults.Set("host", "localhost")
	defaults.Set("port", "80")

	props := collections.NewProperties(defaults)
	props.Set("port", "8080")
	props.Set("user", "admin")

	t.Run("own value shadows default", func(t *testing.T) {
		v, ok := props.Get("port")
		assert.True(t, ok)
		assert.Equal(t, "8080", v)
	})

	t.Run("lookup falls through to defaults", func(t *testing.T) {
		v, ok := props.Get("host")
		assert.True(t, ok)
		assert.Equal(t, "localhost", v)
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := props.Get("password")
		assert.False(t, ok)
	})

	t.Run("names include defaults once", func(t *testing.T) {
		assert.Equal(t, []string{"host", "port", "user"}, slices.Collect(props.PropertyNames()))
		assert.Equal(t, 3, props.Len())
	})

	t.Run("nil and zero value are empty", func(t *testing.T) {
		var nilProps *collections.Properties
		assert.Zero(t, nilProps.Len())
		_, ok := nilProps.Get("x")
		assert.False(t, ok)

		var zero collections.Properties
		zero.Set("x", "1")
		assert.Equal(t, 1, zero.Len())
	})
}

func TestMergePropertiesIntoMap(t *testing.T) {
	t.Run("merges own and default properties", func(t *testing.T) {
		defaults := collections.NewProperties(nil)
		defaults.Set("host", "localhost")
		defaults.Set("port", "80")
		props := collections.NewProperties(defaults)
		props.Set("port", "8080")

		target := map[string]string{"other": "x"}
		require.NoError(t, collections.MergePropertiesIntoMap(props, target))

		assert.Equal(t, map[string]string{
			"other": "x",
			"host":  "localhost",
			"port":  "8080",
		}, target)
	})

	t.Run("nil props is a no-op", func(t *testing.T) {
		target := map[string]string{"a": "1"}
		require.NoError(t, collections.MergePropertiesIntoMap(nil, target))
		assert.Equal(t, map[string]string{"a": "1"}, target)
	})

	t.Run("nil target is an illegal argument", func(t *testing.T) {
		err := collections.MergePropertiesIntoMap(collections.NewProperties(nil), nil)
		require.ErrorIs(t, err, collections.ErrIllegalArgument)
	})
}
