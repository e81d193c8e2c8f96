package response

import (
	"kartly-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitOrderResponse struct {
	Success        bool      `json:"success"`
	OrderID        uuid.UUID `json:"order_id"`
	TotalAmount    int64     `json:"total_amount"`
	PointsEarned   int64     `json:"points_earned"`
	PointsRedeemed int64     `json:"points_redeemed"`
}

func FromSubmitOrderResult(result *commands.SubmitOrderResult) SubmitOrderResponse {
	return SubmitOrderResponse{
		Success:        true,
		OrderID:        result.OrderID,
		TotalAmount:    result.TotalAmount,
		PointsEarned:   result.PointsEarned,
		PointsRedeemed: result.PointsRedeemed,
	}
}
