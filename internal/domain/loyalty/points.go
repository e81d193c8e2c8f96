package loyalty

// Points business rules:
// - 5 points earned for every ₹100 spent (post-discount total)
// - 100 points redeem for a ₹10 discount
// - Tiers: Bronze [0,500), Silver [500,1000), Gold [1000,∞)

const (
	EarnPerSlab      = 5   // points per earn slab
	EarnSlabAmount   = 100 // ₹ per earn slab
	RedeemUnitPoints = 100 // minimum redeemable block
	RedeemUnitValue  = 10  // ₹ discount per redeem block
)

type Tier string

const (
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

const (
	silverThreshold = 500
	goldThreshold   = 1000
)

// TierFor derives the tier from a points balance. Tier is never stored;
// it is recomputed from total_points on every read.
func TierFor(points int64) Tier {
	switch {
	case points >= goldThreshold:
		return TierGold
	case points >= silverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// NextTierThreshold returns the points needed for the next tier,
// or nil when already Gold.
func NextTierThreshold(points int64) *int64 {
	var threshold int64
	switch {
	case points >= goldThreshold:
		return nil
	case points >= silverThreshold:
		threshold = goldThreshold
	default:
		threshold = silverThreshold
	}
	return &threshold
}

// TierProgress returns progress towards the next tier as a percentage in [0,100].
func TierProgress(points int64) float64 {
	switch {
	case points >= goldThreshold:
		return 100
	case points >= silverThreshold:
		return float64(points-silverThreshold) / float64(goldThreshold-silverThreshold) * 100
	default:
		return float64(points) / float64(silverThreshold) * 100
	}
}

// PointsEarned computes the points earned for a charged order amount.
// The amount must be the post-discount total: redeeming points lowers the
// figure points are earned on, which is the intended behavior.
func PointsEarned(finalTotal int64) int64 {
	if finalTotal <= 0 {
		return 0
	}
	return finalTotal / EarnSlabAmount * EarnPerSlab
}

// DiscountForPoints returns the ₹ discount a number of points is worth.
// Partial blocks below 100 points are worth nothing.
func DiscountForPoints(points int64) int64 {
	if points <= 0 {
		return 0
	}
	return points / RedeemUnitPoints * RedeemUnitValue
}

// PointsForDiscount returns the points needed to cover a ₹ discount.
func PointsForDiscount(discount int64) int64 {
	if discount <= 0 {
		return 0
	}
	blocks := (discount + RedeemUnitValue - 1) / RedeemUnitValue
	return blocks * RedeemUnitPoints
}
