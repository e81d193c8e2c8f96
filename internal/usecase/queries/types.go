package queries

import (
	"time"

	"kartly-api/internal/domain/loyalty"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ProductView struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Price            int64     `json:"price"`
	ShortDescription string    `json:"short_description"`
	Category         string    `json:"category"`
	InStock          bool      `json:"in_stock"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type OrderLineView struct {
	ProductID string `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	CustomerName  string          `json:"customer_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Lines         []OrderLineView `json:"products"`
	TotalAmount   int64           `json:"total_amount"`
	ScreenshotURL *string         `json:"payment_screenshot_url,omitempty"`
	TransactionID *string         `json:"transaction_id,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type OrderListItem struct {
	ID          uuid.UUID `json:"id"`
	TotalAmount int64     `json:"total_amount"`
	Status      string    `json:"status"`
	ItemCount   int64     `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// PointsView carries the stored balance plus the derived tier fields; tier is
// recomputed from the balance on every read, never persisted.
type PointsView struct {
	UserID            uuid.UUID    `json:"user_id"`
	TotalPoints       int64        `json:"total_points"`
	Tier              loyalty.Tier `json:"tier"`
	NextTierThreshold *int64       `json:"next_tier_threshold,omitempty"`
	TierProgress      float64      `json:"tier_progress"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

type PointsTransactionView struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	OrderID         *uuid.UUID `json:"order_id,omitempty"`
	PointsChange    int64      `json:"points_change"`
	TransactionType string     `json:"transaction_type"`
	Description     string     `json:"description"`
	CreatedAt       time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
