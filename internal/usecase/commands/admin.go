package commands

import (
	"context"
	"log/slog"

	"kartly-api/internal/domain/order"
	"kartly-api/internal/infra"
	"kartly-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound    = errs.New("order not found")
	ErrStatusTransition = errs.New("invalid status transition")
)

type OrderReviewRepository interface {
	StatusByID(ctx context.Context, id uuid.UUID) (order.Status, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to order.Status) error
}

type AdminOrderCommands interface {
	UpdateOrderStatus(ctx context.Context, reviewer uuid.UUID, orderID uuid.UUID, newStatus string) error
}

type adminOrderCommandsImpl struct {
	reviewRepo OrderReviewRepository
}

func NewAdminOrderCommands(reviewRepo OrderReviewRepository) AdminOrderCommands {
	return &adminOrderCommandsImpl{reviewRepo: reviewRepo}
}

// UpdateOrderStatus applies a back-office review transition. The settlement
// core never changes status; review is the only mutation path.
func (c *adminOrderCommandsImpl) UpdateOrderStatus(ctx context.Context, reviewer uuid.UUID, orderID uuid.UUID, newStatus string) error {
	next, err := order.NewStatus(newStatus)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	current, err := c.reviewRepo.StatusByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, err := current.Transition(next); err != nil {
		return errs.Mark(err, ErrStatusTransition)
	}

	if err := c.reviewRepo.UpdateStatus(ctx, orderID, current, next); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Another reviewer moved the order between our read and write.
			return errs.Mark(order.ErrInvalidStatusTransition, ErrStatusTransition)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("order status updated",
		"order_id", orderID,
		"reviewer", reviewer,
		"from", current.String(),
		"to", next.String())

	return nil
}
