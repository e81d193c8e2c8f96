package loyalty

import "errors"

var (
	ErrNegativePoints         = errors.New("points cannot be negative")
	ErrInsufficientBalance    = errors.New("insufficient points available")
	ErrBelowMinimumRedemption = errors.New("minimum 100 points required for redemption")
)

// Redemption is the outcome of validating a redemption request against an
// order total. Points is the points actually consumed, Discount its ₹ value.
type Redemption struct {
	Points   int64
	Discount int64
}

// PreviewRedemption validates pointsToRedeem against the available balance and
// the pre-discount order total. Zero points is valid and means "no redemption".
// When the requested discount would exceed the order total, the redemption is
// silently clamped to the largest 100-point block whose discount fits; the
// request itself was valid, so the clamp is a financial safety net rather than
// a user error.
func PreviewRedemption(pointsToRedeem, availableBalance, orderTotal int64) (Redemption, error) {
	if pointsToRedeem < 0 {
		return Redemption{}, ErrNegativePoints
	}
	if pointsToRedeem == 0 {
		return Redemption{}, nil
	}
	if pointsToRedeem > availableBalance {
		return Redemption{}, ErrInsufficientBalance
	}
	if pointsToRedeem < RedeemUnitPoints {
		return Redemption{}, ErrBelowMinimumRedemption
	}

	points := pointsToRedeem
	discount := DiscountForPoints(points)
	if discount > orderTotal {
		points = orderTotal / RedeemUnitValue * RedeemUnitPoints
		discount = points / RedeemUnitPoints * RedeemUnitValue
	}

	return Redemption{Points: points, Discount: discount}, nil
}

// NetDelta is the single balance delta a settlement applies.
func NetDelta(pointsEarned, pointsRedeemed int64) int64 {
	return pointsEarned - pointsRedeemed
}
