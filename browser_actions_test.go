package aldicrawler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleHeightStops(t *testing.T) {
	heights := []int64{1000, 2000, 3000, 3000}
	i := 0
	readHeight := func() (int64, error) {
		h := heights[i]
		if i < len(heights)-1 {
			i++
		}
		return h, nil
	}
	scrolls := 0
	scroll := func() error {
		scrolls++
		return nil
	}

	rounds, settled, err := settleHeight(readHeight, scroll, 0, 30)
	require.NoError(t, err)
	// Three scrolls: two that grew the page and one that confirmed the
	// height settled.
	assert.Equal(t, 3, rounds)
	assert.Equal(t, 3, scrolls)
	assert.True(t, settled)
}

func TestSettleHeightImmediatelyStable(t *testing.T) {
	readHeight := func() (int64, error) { return 500, nil }
	rounds, settled, err := settleHeight(readHeight, func() error { return nil }, 0, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, rounds)
	assert.True(t, settled)
}

func TestSettleHeightCapped(t *testing.T) {
	var h int64
	readHeight := func() (int64, error) {
		h += 100 // never stabilizes
		return h, nil
	}
	rounds, settled, err := settleHeight(readHeight, func() error { return nil }, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, rounds)
	assert.False(t, settled)
}

func TestSettleHeightPropagatesErrors(t *testing.T) {
	boom := errors.New("page gone")
	_, _, err := settleHeight(func() (int64, error) { return 0, boom }, func() error { return nil }, 0, 5)
	assert.ErrorIs(t, err, boom)
}

func TestToInt64(t *testing.T) {
	for _, v := range []interface{}{int(42), int64(42), float64(42), float32(42)} {
		got, err := toInt64(v)
		require.NoError(t, err)
		assert.Equal(t, int64(42), got)
	}

	_, err := toInt64("42")
	assert.Error(t, err)
}
