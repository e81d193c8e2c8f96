package request

import (
	"kartly-api/internal/domain/catalog"
	"kartly-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type OrderProductRequest struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
}

// SubmitOrderRequest deliberately carries no binding tags on the contact and
// cart fields: field-level validation lives in the usecase so failures come
// back in a fixed order with field-specific messages.
type SubmitOrderRequest struct {
	CustomerName   string                `json:"customer_name"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone"`
	Address        string                `json:"address"`
	Products       []OrderProductRequest `json:"products"`
	PointsToRedeem int64                 `json:"points_to_redeem"`
	TransactionID  *string               `json:"transaction_id,omitempty"`
	ScreenshotPath *string               `json:"screenshot_path,omitempty"`
}

func (r SubmitOrderRequest) ToParams(userID uuid.UUID) commands.SubmitOrderParams {
	lines := make([]catalog.CartLine, len(r.Products))
	for i, p := range r.Products {
		lines[i] = catalog.CartLine{ProductID: p.ID, Quantity: p.Quantity}
	}

	return commands.SubmitOrderParams{
		UserID:         userID,
		CustomerName:   r.CustomerName,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		Lines:          lines,
		PointsToRedeem: r.PointsToRedeem,
		TransactionID:  r.TransactionID,
		ScreenshotPath: r.ScreenshotPath,
	}
}
