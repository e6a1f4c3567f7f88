package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vkolor/chromab/bitset"
)

func TestAddHasRemove(t *testing.T) {
	var s bitset.Set
	for _, c := range []int{0, 5, 62} {
		s = s.Add(c)
	}
	for _, c := range []int{0, 5, 62} {
		require.True(t, s.Has(c), "expected color %d to be present", c)
	}
	require.False(t, s.Has(1), "color 1 should not be present")

	s = s.Remove(5)
	require.False(t, s.Has(5), "color 5 should have been removed")
	require.True(t, s.Has(0) && s.Has(62), "removing 5 should not disturb other members")
}

func TestCount(t *testing.T) {
	var s bitset.Set
	require.Equal(t, 0, s.Count())
	for i := 0; i < 10; i++ {
		s = s.Add(i)
	}
	require.Equal(t, 10, s.Count())
}

func TestLowest(t *testing.T) {
	var s bitset.Set
	_, ok := s.Lowest()
	require.False(t, ok, "empty set should report no lowest bit")

	s = s.Add(7).Add(3).Add(40)
	got, ok := s.Lowest()
	require.True(t, ok)
	require.Equal(t, 3, got)
}

func TestMask(t *testing.T) {
	cases := []struct {
		k    int
		want bitset.Set
	}{
		{0, 0},
		{1, 1},
		{3, 0b111},
		{63, bitset.Set((uint64(1) << 63) - 1)},
	}
	for _, c := range cases {
		require.Equal(t, c.want, bitset.Mask(c.k), "Mask(%d)", c.k)
	}

	// Saturation beyond the representable range.
	require.Equal(t, ^bitset.Set(0), bitset.Mask(64))
}

func TestMaskPrefixContainment(t *testing.T) {
	// Mask(k) must contain exactly colors 0..k-1.
	for k := 0; k <= 20; k++ {
		m := bitset.Mask(k)
		for c := 0; c < 20; c++ {
			require.Equal(t, c < k, m.Has(c), "Mask(%d).Has(%d)", k, c)
		}
	}
}
