package delimset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anfomin/helperscore/delimset"
)

func TestSet_Construction(t *testing.T) {
	t.Run("new set is empty", func(t *testing.T) {
		s := delimset.New(delimset.Integer[int]())
		assert.True(t, s.IsEmpty())
		assert.Equal(t, 0, s.Len())

		encoded, ok := s.Encode()
		assert.False(t, ok)
		assert.Equal(t, "", encoded)
	})

	t.Run("duplicates collapse and items sort ascending", func(t *testing.T) {
		s := delimset.Of(delimset.Integer[int](), 3, 1, 3, 2, 1)
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []int{1, 2, 3}, s.Items())

		encoded, ok := s.Encode()
		require.True(t, ok)
		assert.Equal(t, "1_2_3", encoded)
	})

	t.Run("construction order does not affect encoding", func(t *testing.T) {
		a := delimset.Of(delimset.Integer[int](), 9, 2, 5)
		b := delimset.Of(delimset.Integer[int](), 5, 9, 2, 2)

		ea, _ := a.Encode()
		eb, _ := b.Encode()
		assert.Equal(t, ea, eb)
	})

	t.Run("items returns a copy", func(t *testing.T) {
		s := delimset.Of(delimset.Integer[int](), 1, 2)
		items := s.Items()
		items[0] = 99
		assert.Equal(t, []int{1, 2}, s.Items())
	})
}

func TestSet_Parse(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		s, err := delimset.Parse(delimset.Integer[int](), "5_2_2_9")
		require.NoError(t, err)
		assert.Equal(t, []int{2, 5, 9}, s.Items())

		encoded, ok := s.Encode()
		require.True(t, ok)
		assert.Equal(t, "2_5_9", encoded)
	})

	t.Run("empty input parses to empty set", func(t *testing.T) {
		s, err := delimset.Parse(delimset.Integer[int](), "")
		require.NoError(t, err)
		assert.True(t, s.IsEmpty())
	})

	t.Run("whitespace input parses to empty set", func(t *testing.T) {
		s, err := delimset.Parse(delimset.Integer[int](), "   ")
		require.NoError(t, err)
		assert.True(t, s.IsEmpty())
	})

	t.Run("blank segments are skipped", func(t *testing.T) {
		s, err := delimset.Parse(delimset.Integer[int](), "1__ _3")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, s.Items())
	})

	t.Run("bad token aborts with token context", func(t *testing.T) {
		_, err := delimset.Parse(delimset.Integer[int](), "1_garbage_3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"garbage"`)
	})
}

func TestSet_ParseLenient(t *testing.T) {
	t.Run("bad tokens are dropped", func(t *testing.T) {
		s, err := delimset.ParseLenient(delimset.Integer[int](), "1_garbage_3")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, s.Items())
	})

	t.Run("empty and whitespace input yield empty set", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\t"} {
			s, err := delimset.ParseLenient(delimset.Integer[int](), input)
			require.NoError(t, err)
			assert.True(t, s.IsEmpty())
		}
	})

	t.Run("wholly garbled input is rejected", func(t *testing.T) {
		_, err := delimset.ParseLenient(delimset.Integer[int](), "garbage")
		require.ErrorIs(t, err, delimset.ErrNoValidTokens)

		_, err = delimset.ParseLenient(delimset.Integer[int](), "foo_bar")
		require.ErrorIs(t, err, delimset.ErrNoValidTokens)
	})

	t.Run("single good token among garbage survives", func(t *testing.T) {
		s, err := delimset.ParseLenient(delimset.Integer[int](), "foo_7_bar")
		require.NoError(t, err)
		assert.Equal(t, []int{7}, s.Items())
	})
}

func TestSet_RoundTrip(t *testing.T) {
	t.Run("encode then parse restores the set", func(t *testing.T) {
		original := delimset.Of(delimset.Integer[int](), 10, -3, 7, 0)

		encoded, ok := original.Encode()
		require.True(t, ok)

		restored, err := delimset.Parse(delimset.Integer[int](), encoded)
		require.NoError(t, err)
		assert.True(t, original.Equal(restored))
	})

	t.Run("empty set round-trips through the absent form", func(t *testing.T) {
		original := delimset.New(delimset.Integer[int]())

		encoded, ok := original.Encode()
		assert.False(t, ok)

		restored, err := delimset.Parse(delimset.Integer[int](), encoded)
		require.NoError(t, err)
		assert.True(t, original.Equal(restored))
	})
}

func TestSet_Algebra(t *testing.T) {
	codec := delimset.Integer[int]()
	a := delimset.Of(codec, 1, 2, 3)
	b := delimset.Of(codec, 2, 3)
	empty := delimset.New(codec)

	t.Run("contains", func(t *testing.T) {
		assert.True(t, a.Contains(2))
		assert.False(t, a.Contains(4))
		assert.False(t, empty.Contains(1))
	})

	t.Run("subset and superset", func(t *testing.T) {
		assert.True(t, a.SupersetOf(b))
		assert.True(t, a.ProperSupersetOf(b))
		assert.False(t, b.SupersetOf(a))
		assert.True(t, b.SubsetOf(a))
		assert.True(t, b.ProperSubsetOf(a))
		assert.False(t, a.ProperSubsetOf(a))
		assert.True(t, a.SubsetOf(a))
		assert.True(t, empty.SubsetOf(b))
	})

	t.Run("overlaps", func(t *testing.T) {
		assert.True(t, a.Overlaps(b))
		assert.False(t, a.Overlaps(delimset.Of(codec, 7, 8)))
		assert.False(t, a.Overlaps(empty))
	})

	t.Run("equality ignores construction order", func(t *testing.T) {
		assert.True(t, a.Equal(delimset.Of(codec, 3, 2, 1)))
		assert.False(t, a.Equal(b))
	})

	t.Run("equal sets hash equal", func(t *testing.T) {
		assert.Equal(t, a.Hash(), delimset.Of(codec, 3, 1, 2).Hash())
		assert.NotEqual(t, a.Hash(), b.Hash())
	})
}

func TestEncodeSlice(t *testing.T) {
	t.Run("matches encoding of a constructed set", func(t *testing.T) {
		codec := delimset.Integer[int]()
		items := []int{5, 2, 2, 9}

		direct, ok := delimset.EncodeSlice(codec, items)
		require.True(t, ok)
		assert.Equal(t, "2_5_9", direct)

		viaSet, ok := delimset.FromSlice(codec, items).Encode()
		require.True(t, ok)
		assert.Equal(t, viaSet, direct)
	})

	t.Run("empty input is absent", func(t *testing.T) {
		encoded, ok := delimset.EncodeSlice(delimset.Integer[int](), nil)
		assert.False(t, ok)
		assert.Equal(t, "", encoded)
	})
}

func TestSet_CustomDelimiter(t *testing.T) {
	codec := delimset.Integer[int]()

	s, err := delimset.Parse(codec, "4,1,4", delimset.WithDelimiter(','))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, s.Items())

	encoded, ok := s.Encode()
	require.True(t, ok)
	assert.Equal(t, "1,4", encoded)
}
