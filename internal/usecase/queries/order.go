package queries

import (
	"context"

	"kartly-api/internal/infra"
	"kartly-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
	ListAll(ctx context.Context) ([]*OrderView, error)
}

type OrderQueries interface {
	// GetOrder enforces ownership: callers only see their own orders.
	GetOrder(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*OrderView, error)
	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error)
	// ListAllOrders is the back-office view; role enforcement happens at the boundary.
	ListAllOrders(ctx context.Context) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}

	// Non-owners get the same answer as a missing order.
	if view.UserID != actor {
		return nil, ErrOrderNotFound
	}

	return view, nil
}

func (q *orderQueriesImpl) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*OrderListItem, error) {
	orders, err := q.readStore.ListByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list orders")
	}
	return orders, nil
}

func (q *orderQueriesImpl) ListAllOrders(ctx context.Context) ([]*OrderView, error) {
	orders, err := q.readStore.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list all orders")
	}
	return orders, nil
}
