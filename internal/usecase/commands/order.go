package commands

import (
	"context"
	"errors"
	"log/slog"

	"kartly-api/internal/domain/catalog"
	"kartly-api/internal/domain/loyalty"
	"kartly-api/internal/domain/order"
	"kartly-api/internal/infra"
	"kartly-api/internal/infra/db"
	"kartly-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrProductNotFound         = errs.New("product not found")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type SubmitOrderParams struct {
	UserID         uuid.UUID
	CustomerName   string
	Email          string
	Phone          string
	Address        string
	Lines          []catalog.CartLine
	PointsToRedeem int64
	TransactionID  *string
	ScreenshotPath *string
}

type SubmitOrderResult struct {
	OrderID        uuid.UUID
	TotalAmount    int64
	PointsEarned   int64
	PointsRedeemed int64
}

// PointsSettlement is the atomic unit the points repository applies: one
// balance delta plus its ledger rows, inside the caller's transaction.
// BalanceAtPreview is the balance the redemption was validated against; a
// redeeming settlement only applies while that balance is unchanged, so a
// concurrent settlement in the preview-to-write window surfaces as a
// conflict instead of spending points twice.
type PointsSettlement struct {
	UserID           uuid.UUID
	OrderID          uuid.UUID
	PointsEarned     int64
	PointsRedeemed   int64
	BalanceAtPreview int64
}

type CatalogRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]catalog.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
}

type PointsRepository interface {
	BalanceByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Settle(ctx context.Context, tx db.DBTX, settlement PointsSettlement) error
}

type OrderCommands interface {
	SubmitOrder(ctx context.Context, params SubmitOrderParams) (*SubmitOrderResult, error)
}

type orderCommandsImpl struct {
	catalogRepo CatalogRepository
	orderRepo   OrderRepository
	pointsRepo  PointsRepository
	pool        *pgxpool.Pool
}

func NewOrderCommands(
	catalogRepo CatalogRepository,
	orderRepo OrderRepository,
	pointsRepo PointsRepository,
	pool *pgxpool.Pool,
) OrderCommands {
	return &orderCommandsImpl{
		catalogRepo: catalogRepo,
		orderRepo:   orderRepo,
		pointsRepo:  pointsRepo,
		pool:        pool,
	}
}

// SubmitOrder re-prices the cart from the catalog, validates any points
// redemption against the caller's balance, and persists the order together
// with the balance delta and ledger rows in one transaction. Validation is
// fail-fast; nothing is persisted before all checks pass.
func (c *orderCommandsImpl) SubmitOrder(ctx context.Context, params SubmitOrderParams) (*SubmitOrderResult, error) {
	contact, err := validateContact(params)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := validateCartShape(params.Lines); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if params.PointsToRedeem < 0 {
		return nil, errs.Mark(loyalty.ErrNegativePoints, ErrDomainValidation)
	}

	resolved, err := c.resolveCart(ctx, params.Lines)
	if err != nil {
		return nil, err
	}

	redemption, balanceAtPreview, err := c.previewRedemption(ctx, params.UserID, params.PointsToRedeem, resolved.Subtotal)
	if err != nil {
		return nil, err
	}

	finalTotal := resolved.Subtotal - redemption.Discount

	orderEntity, err := order.NewOrder(
		params.UserID,
		contact.name,
		contact.email,
		contact.phone,
		contact.address,
		resolved.Lines,
		finalTotal,
		order.PaymentEvidence{
			ScreenshotPath: params.ScreenshotPath,
			TransactionID:  params.TransactionID,
		},
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	pointsEarned := loyalty.PointsEarned(finalTotal)

	orderID, err := c.executeSettlementTransaction(ctx, orderEntity, PointsSettlement{
		UserID:           params.UserID,
		OrderID:          orderEntity.ID(),
		PointsEarned:     pointsEarned,
		PointsRedeemed:   redemption.Points,
		BalanceAtPreview: balanceAtPreview,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order settled",
		"order_id", orderID,
		"user_id", params.UserID,
		"total_amount", finalTotal,
		"points_earned", pointsEarned,
		"points_redeemed", redemption.Points)

	return &SubmitOrderResult{
		OrderID:        orderID,
		TotalAmount:    finalTotal,
		PointsEarned:   pointsEarned,
		PointsRedeemed: redemption.Points,
	}, nil
}

type contactFields struct {
	name    order.CustomerName
	email   order.Email
	phone   order.Phone
	address order.Address
}

// validateContact checks fields in a fixed order so the first failure is
// deterministic: name, email, phone, address.
func validateContact(params SubmitOrderParams) (contactFields, error) {
	name, err := order.NewCustomerName(params.CustomerName)
	if err != nil {
		return contactFields{}, err
	}
	email, err := order.NewEmail(params.Email)
	if err != nil {
		return contactFields{}, err
	}
	phone, err := order.NewPhone(params.Phone)
	if err != nil {
		return contactFields{}, err
	}
	address, err := order.NewAddress(params.Address)
	if err != nil {
		return contactFields{}, err
	}
	return contactFields{name: name, email: email, phone: phone, address: address}, nil
}

func validateCartShape(lines []catalog.CartLine) error {
	if len(lines) == 0 {
		return catalog.ErrEmptyCart
	}
	for _, line := range lines {
		if line.ProductID == "" {
			return catalog.ErrEmptyProductID
		}
		if line.Quantity <= 0 {
			return catalog.ErrInvalidQuantity
		}
	}
	return nil
}

func (c *orderCommandsImpl) resolveCart(ctx context.Context, lines []catalog.CartLine) (*catalog.ResolvedCart, error) {
	products, err := c.catalogRepo.FindByIDs(ctx, catalog.DistinctIDs(lines))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	resolved, err := catalog.ResolveCart(lines, products)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return nil, errs.Mark(err, ErrProductNotFound)
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return resolved, nil
}

func (c *orderCommandsImpl) previewRedemption(ctx context.Context, userID uuid.UUID, pointsToRedeem, subtotal int64) (loyalty.Redemption, int64, error) {
	if pointsToRedeem == 0 {
		return loyalty.Redemption{}, 0, nil
	}

	balance, err := c.pointsRepo.BalanceByUserID(ctx, userID)
	if err != nil {
		return loyalty.Redemption{}, 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	redemption, err := loyalty.PreviewRedemption(pointsToRedeem, balance, subtotal)
	if err != nil {
		return loyalty.Redemption{}, 0, err
	}

	return redemption, balance, nil
}

// executeSettlementTransaction persists the order and applies the points
// settlement as one unit: a ledger failure rolls the order back.
func (c *orderCommandsImpl) executeSettlementTransaction(ctx context.Context, orderEntity *order.Order, settlement PointsSettlement) (uuid.UUID, error) {
	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	orderID, err := c.orderRepo.Create(ctx, tx, orderEntity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	settlement.OrderID = orderID
	if err := c.pointsRepo.Settle(ctx, tx, settlement); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// A concurrent settlement moved the balance between preview and write.
			return uuid.Nil, loyalty.ErrInsufficientBalance
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return orderID, nil
}
