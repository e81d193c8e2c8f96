//go:build unit || e2e

package builder

import (
	"time"

	"kartly-api/internal/domain/catalog"
	reqdto "kartly-api/internal/handler/dto/request"
	"kartly-api/internal/usecase/commands"
	"kartly-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	UserID         uuid.UUID
	CustomerName   string
	Email          string
	Phone          string
	Address        string
	Products       []reqdto.OrderProductRequest
	PointsToRedeem int64
	TransactionID  *string
	ScreenshotPath *string
	TotalAmount    int64
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		UserID:       uuid.New(),
		CustomerName: "Priya Sharma",
		Email:        "priya@example.com",
		Phone:        "9876543210",
		Address:      "12 MG Road, Bengaluru 560001",
		Products: []reqdto.OrderProductRequest{
			{ID: "cozycup-premium", Quantity: 2},
		},
		PointsToRedeem: 0,
		TotalAmount:    4998,
		Status:         "Pending Verification",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildSubmitRequestDTO() reqdto.SubmitOrderRequest {
	return reqdto.SubmitOrderRequest{
		CustomerName:   b.CustomerName,
		Email:          b.Email,
		Phone:          b.Phone,
		Address:        b.Address,
		Products:       b.Products,
		PointsToRedeem: b.PointsToRedeem,
		TransactionID:  b.TransactionID,
		ScreenshotPath: b.ScreenshotPath,
	}
}

func (b *OrderBuilder) BuildParams() commands.SubmitOrderParams {
	lines := make([]catalog.CartLine, len(b.Products))
	for i, p := range b.Products {
		lines[i] = catalog.CartLine{ProductID: p.ID, Quantity: p.Quantity}
	}
	return commands.SubmitOrderParams{
		UserID:         b.UserID,
		CustomerName:   b.CustomerName,
		Email:          b.Email,
		Phone:          b.Phone,
		Address:        b.Address,
		Lines:          lines,
		PointsToRedeem: b.PointsToRedeem,
		TransactionID:  b.TransactionID,
		ScreenshotPath: b.ScreenshotPath,
	}
}

func (b *OrderBuilder) BuildResult() *commands.SubmitOrderResult {
	return &commands.SubmitOrderResult{
		OrderID:        uuid.New(),
		TotalAmount:    b.TotalAmount,
		PointsEarned:   b.TotalAmount / 100 * 5,
		PointsRedeemed: b.PointsToRedeem,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	lines := make([]queries.OrderLineView, len(b.Products))
	for i, p := range b.Products {
		lines[i] = queries.OrderLineView{
			ProductID: p.ID,
			Name:      "CozyCup Premium",
			UnitPrice: 2499,
			Quantity:  p.Quantity,
		}
	}
	return &queries.OrderView{
		ID:           uuid.New(),
		UserID:       b.UserID,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		Address:      b.Address,
		Lines:        lines,
		TotalAmount:  b.TotalAmount,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *OrderBuilder) BuildListItem() *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:          uuid.New(),
		TotalAmount: b.TotalAmount,
		Status:      b.Status,
		ItemCount:   int64(len(b.Products)),
		CreatedAt:   b.CreatedAt,
	}
}
