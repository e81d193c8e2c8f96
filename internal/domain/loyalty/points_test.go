//go:build unit

package loyalty_test

import (
	"testing"

	"kartly-api/internal/domain/loyalty"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsEarned(t *testing.T) {
	cases := []struct {
		name       string
		finalTotal int64
		want       int64
	}{
		{name: "zero total", finalTotal: 0, want: 0},
		{name: "negative total", finalTotal: -100, want: 0},
		{name: "below one slab", finalTotal: 99, want: 0},
		{name: "exactly one slab", finalTotal: 100, want: 5},
		{name: "partial slab discarded", finalTotal: 950, want: 45},
		{name: "post discount total", finalTotal: 4998, want: 245},
		{name: "large total", finalTotal: 123456, want: 6170},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, loyalty.PointsEarned(tc.finalTotal))
		})
	}
}

func TestDiscountForPoints(t *testing.T) {
	cases := []struct {
		name   string
		points int64
		want   int64
	}{
		{name: "zero points", points: 0, want: 0},
		{name: "negative points", points: -100, want: 0},
		{name: "below one block", points: 99, want: 0},
		{name: "one block", points: 100, want: 10},
		{name: "partial block discarded", points: 250, want: 20},
		{name: "many blocks", points: 1000, want: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, loyalty.DiscountForPoints(tc.points))
		})
	}
}

func TestPointsForDiscount(t *testing.T) {
	assert.Equal(t, int64(0), loyalty.PointsForDiscount(0))
	assert.Equal(t, int64(100), loyalty.PointsForDiscount(10))
	assert.Equal(t, int64(100), loyalty.PointsForDiscount(1))
	assert.Equal(t, int64(500), loyalty.PointsForDiscount(50))
	assert.Equal(t, int64(600), loyalty.PointsForDiscount(51))
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		name   string
		points int64
		want   loyalty.Tier
	}{
		{name: "zero is Bronze", points: 0, want: loyalty.TierBronze},
		{name: "just below Silver", points: 499, want: loyalty.TierBronze},
		{name: "Silver threshold", points: 500, want: loyalty.TierSilver},
		{name: "just below Gold", points: 999, want: loyalty.TierSilver},
		{name: "Gold threshold", points: 1000, want: loyalty.TierGold},
		{name: "far past Gold", points: 100000, want: loyalty.TierGold},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, loyalty.TierFor(tc.points))
		})
	}
}

func TestNextTierThreshold(t *testing.T) {
	t.Run("Bronze targets Silver", func(t *testing.T) {
		got := loyalty.NextTierThreshold(120)
		require.NotNil(t, got)
		assert.Equal(t, int64(500), *got)
	})

	t.Run("Silver targets Gold", func(t *testing.T) {
		got := loyalty.NextTierThreshold(740)
		require.NotNil(t, got)
		assert.Equal(t, int64(1000), *got)
	})

	t.Run("Gold has no next tier", func(t *testing.T) {
		assert.Nil(t, loyalty.NextTierThreshold(1000))
	})
}

func TestTierProgress(t *testing.T) {
	assert.InDelta(t, 0, loyalty.TierProgress(0), 0.001)
	assert.InDelta(t, 50, loyalty.TierProgress(250), 0.001)
	assert.InDelta(t, 0, loyalty.TierProgress(500), 0.001)
	assert.InDelta(t, 80, loyalty.TierProgress(900), 0.001)
	assert.InDelta(t, 100, loyalty.TierProgress(1000), 0.001)
	assert.InDelta(t, 100, loyalty.TierProgress(5000), 0.001)
}
